package hid

// Device represents an opened HID device capable of report output.
// The WS170120 never reports anything back, so there is no read side.
type Device interface {
	WriteOutput(reportID byte, data []byte) error  // interrupt OUT pipe
	WriteFeature(reportID byte, data []byte) error // control endpoint
	Close() error
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
}

// NewManager returns the OS-specific HID manager.
func NewManager() (Manager, error) {
	return newManager()
}
