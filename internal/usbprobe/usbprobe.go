// Package usbprobe takes a raw-USB snapshot of the bus. HID-only
// enumeration can come up empty when the display is attached but bound
// to another driver; the raw view tells those cases apart.
package usbprobe

import (
	"github.com/karalabe/usb"
)

type Entry struct {
	Path      string
	VendorID  uint16
	ProductID uint16
	Product   string
}

// Snapshot enumerates every USB device the host will admit to.
func Snapshot() ([]Entry, error) {
	infos, err := usb.Enumerate(0, 0)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(infos))
	for _, info := range infos {
		out = append(out, Entry{
			Path:      info.Path,
			VendorID:  info.VendorID,
			ProductID: info.ProductID,
			Product:   info.Product,
		})
	}
	return out, nil
}
