package ws170120

import (
	"fmt"
	"log/slog"

	"github.com/seagrayinc/wsbright/internal/hid"
)

// Deliver pushes a built report to an open device. The feature report
// (control transfer) goes first; if the host stack rejects it, the same
// bytes are retried once as an output report on the interrupt pipe.
// Which of the two a given platform supports varies, hence the pair.
func Deliver(logger *slog.Logger, dev hid.Device, report []byte) error {
	// report[0] is the HID report ID, the rest is payload.
	rid, payload := report[0], report[1:]

	ferr := dev.WriteFeature(rid, payload)
	if ferr == nil {
		logger.Debug("report delivered", slog.String("transfer", "feature"))
		return nil
	}
	logger.Debug("feature report rejected, retrying on the interrupt pipe",
		slog.Any("error", ferr))

	oerr := dev.WriteOutput(rid, payload)
	if oerr == nil {
		logger.Debug("report delivered", slog.String("transfer", "output"))
		return nil
	}

	return fmt.Errorf("%w: feature report: %v, output report: %v", ErrTransfer, ferr, oerr)
}
