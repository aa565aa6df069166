// Package ws170120 speaks the reverse-engineered HID control protocol
// of the Waveshare WS170120 display. The protocol is write-only: a
// single fixed-size report carries the brightness, and the display
// never answers.
package ws170120

const (
	VendorID  uint16 = 0x0EEF
	ProductID uint16 = 0x0005
)

const (
	// ReportLength is the exact size the firmware expects; shorter or
	// longer reports are ignored by the display.
	ReportLength = 38

	brightnessOffset = 6
)

// controlMagic prefixes every brightness report. Byte 0 doubles as the
// HID report ID on report-oriented transports.
var controlMagic = [4]byte{0x04, 0xAA, 0x01, 0x00}
