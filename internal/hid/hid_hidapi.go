//go:build hidapi

package hid

import (
	"github.com/sstallion/go-hid"
)

// hidapi-backed manager, selected with the "hidapi" build tag for hosts
// where the pure Go backends cannot claim the device.

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := hid.Init(); err != nil {
		return nil, err
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) List() ([]Info, error) {
	var out []Info
	err := hid.Enumerate(hid.VendorIDAny, hid.ProductIDAny, func(info *hid.DeviceInfo) error {
		out = append(out, Info{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Product:      info.ProductStr,
			Manufacturer: info.MfrStr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *hidapiManager) Open(info Info) (Device, error) {
	d, err := hid.OpenPath(info.Path)
	if err != nil {
		return nil, err
	}
	return &hidapiDevice{d}, nil
}

type hidapiDevice struct{ d *hid.Device }

func (d *hidapiDevice) WriteOutput(reportID byte, data []byte) error {
	buf := make([]byte, len(data)+1)
	buf[0] = reportID
	copy(buf[1:], data)
	_, err := d.d.Write(buf)
	return err
}

func (d *hidapiDevice) WriteFeature(reportID byte, data []byte) error {
	buf := make([]byte, len(data)+1)
	buf[0] = reportID
	copy(buf[1:], data)
	_, err := d.d.SendFeatureReport(buf)
	return err
}

func (d *hidapiDevice) Close() error { return d.d.Close() }
