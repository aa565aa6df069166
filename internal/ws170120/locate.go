package ws170120

import (
	"fmt"

	"github.com/seagrayinc/wsbright/internal/hid"
)

// Locate opens the WS170120's HID interface. The whole device list is
// walked so that "not attached" and "attached but not openable" stay
// distinguishable. When several identical displays are attached the
// first one in enumeration order wins.
func Locate(mgr hid.Manager) (hid.Device, error) {
	infos, err := mgr.List()
	if err != nil {
		return nil, fmt.Errorf("hid enumerate: %w", err)
	}

	for _, info := range infos {
		if info.VendorID != VendorID || info.ProductID != ProductID {
			continue
		}

		dev, err := mgr.Open(info)
		if err != nil {
			if isPermissionError(err) {
				return nil, fmt.Errorf("%w: %v", ErrAccessDenied, err)
			}
			return nil, fmt.Errorf("opening device failed: %w", err)
		}
		return dev, nil
	}

	return nil, ErrNotFound
}
