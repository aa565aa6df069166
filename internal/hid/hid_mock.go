package hid

// MockDevice records report writes for tests. Every attempt is
// recorded, even the ones that fail with an injected error.
type MockDevice struct {
	FeatureErr error
	OutputErr  error

	FeatureWrites [][]byte // reportID followed by payload
	OutputWrites  [][]byte
	CloseCount    int
}

func (d *MockDevice) WriteFeature(reportID byte, data []byte) error {
	d.FeatureWrites = append(d.FeatureWrites, record(reportID, data))
	return d.FeatureErr
}

func (d *MockDevice) WriteOutput(reportID byte, data []byte) error {
	d.OutputWrites = append(d.OutputWrites, record(reportID, data))
	return d.OutputErr
}

func (d *MockDevice) Close() error {
	d.CloseCount++
	return nil
}

func record(reportID byte, data []byte) []byte {
	buf := make([]byte, len(data)+1)
	buf[0] = reportID
	copy(buf[1:], data)
	return buf
}

// MockManager serves a fixed descriptor list and hands out MockDevices.
type MockManager struct {
	Devices  []Info
	ListErr  error
	OpenErrs map[string]error // path -> error returned by Open
	Device   *MockDevice      // device returned by a successful Open

	Opened []string // paths passed to Open, in order
}

func NewMockManager(devices ...Info) *MockManager {
	return &MockManager{
		Devices: devices,
		Device:  &MockDevice{},
	}
}

func (m *MockManager) List() ([]Info, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Devices, nil
}

func (m *MockManager) Open(info Info) (Device, error) {
	m.Opened = append(m.Opened, info.Path)
	if err := m.OpenErrs[info.Path]; err != nil {
		return nil, err
	}
	if m.Device == nil {
		m.Device = &MockDevice{}
	}
	return m.Device, nil
}
