package ws170120

import (
	"log/slog"

	"github.com/seagrayinc/wsbright/internal/hid"
)

// Set builds the brightness report, locates the display and delivers
// the report. The device handle is scoped to this call and released on
// every path.
func Set(logger *slog.Logger, mgr hid.Manager, brightness byte) error {
	report := BuildReport(brightness)

	dev, err := Locate(mgr)
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := Deliver(logger, dev, report); err != nil {
		return err
	}

	logger.Info("brightness set", slog.Int("percent", int(brightness)))
	return nil
}
