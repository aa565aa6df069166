//go:build windows && !hidapi

package hid

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Windows HID implementation using pure Go syscalls (no CGO)
// This directly calls SetupAPI, HID API, and file I/O functions

var (
	hid      = windows.NewLazySystemDLL("hid.dll")
	setupapi = windows.NewLazySystemDLL("setupapi.dll")

	procHidD_GetHidGuid                  = hid.NewProc("HidD_GetHidGuid")
	procHidD_GetAttributes               = hid.NewProc("HidD_GetAttributes")
	procHidD_GetProductString            = hid.NewProc("HidD_GetProductString")
	procHidD_GetManufacturerString       = hid.NewProc("HidD_GetManufacturerString")
	procHidD_GetPreparsedData            = hid.NewProc("HidD_GetPreparsedData")
	procHidD_FreePreparsedData           = hid.NewProc("HidD_FreePreparsedData")
	procHidP_GetCaps                     = hid.NewProc("HidP_GetCaps")
	procHidD_SetFeature                  = hid.NewProc("HidD_SetFeature")
	procSetupDiGetClassDevsW             = setupapi.NewProc("SetupDiGetClassDevsW")
	procSetupDiEnumDeviceInterfaces      = setupapi.NewProc("SetupDiEnumDeviceInterfaces")
	procSetupDiGetDeviceInterfaceDetailW = setupapi.NewProc("SetupDiGetDeviceInterfaceDetailW")
	procSetupDiDestroyDeviceInfoList     = setupapi.NewProc("SetupDiDestroyDeviceInfoList")
)

const (
	DIGCF_PRESENT         = 0x00000002
	DIGCF_DEVICEINTERFACE = 0x00000010
	INVALID_HANDLE_VALUE  = ^uintptr(0)
)

type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

type HIDD_ATTRIBUTES struct {
	Size          uint32
	VendorID      uint16
	ProductID     uint16
	VersionNumber uint16
}

type SP_DEVICE_INTERFACE_DATA struct {
	CbSize             uint32
	InterfaceClassGuid GUID
	Flags              uint32
	Reserved           uintptr
}

type SP_DEVICE_INTERFACE_DETAIL_DATA struct {
	CbSize     uint32
	DevicePath [1]uint16 // Variable length
}

type HIDP_CAPS struct {
	Usage                     uint16
	UsagePage                 uint16
	InputReportByteLength     uint16
	OutputReportByteLength    uint16
	FeatureReportByteLength   uint16
	Reserved                  [17]uint16
	NumberLinkCollectionNodes uint16
	NumberInputButtonCaps     uint16
	NumberInputValueCaps      uint16
	NumberInputDataIndices    uint16
	NumberOutputButtonCaps    uint16
	NumberOutputValueCaps     uint16
	NumberOutputDataIndices   uint16
	NumberFeatureButtonCaps   uint16
	NumberFeatureValueCaps    uint16
	NumberFeatureDataIndices  uint16
}

type winManager struct{}

func newManager() (Manager, error) {
	return &winManager{}, nil
}

func (m *winManager) List() ([]Info, error) {
	var hidGuid GUID
	procHidD_GetHidGuid.Call(uintptr(unsafe.Pointer(&hidGuid)))

	devInfo, _, err := procSetupDiGetClassDevsW.Call(
		uintptr(unsafe.Pointer(&hidGuid)),
		0,
		0,
		DIGCF_PRESENT|DIGCF_DEVICEINTERFACE,
	)
	if devInfo == 0 || devInfo == INVALID_HANDLE_VALUE {
		return nil, fmt.Errorf("SetupDiGetClassDevsW failed: %v", err)
	}
	defer procSetupDiDestroyDeviceInfoList.Call(devInfo)

	var devices []Info
	var devInterfaceData SP_DEVICE_INTERFACE_DATA
	devInterfaceData.CbSize = uint32(unsafe.Sizeof(devInterfaceData))

	for i := uint32(0); ; i++ {
		r, _, _ := procSetupDiEnumDeviceInterfaces.Call(
			devInfo,
			0,
			uintptr(unsafe.Pointer(&hidGuid)),
			uintptr(i),
			uintptr(unsafe.Pointer(&devInterfaceData)),
		)
		if r == 0 {
			break
		}

		// Get required size
		var requiredSize uint32
		procSetupDiGetDeviceInterfaceDetailW.Call(
			devInfo,
			uintptr(unsafe.Pointer(&devInterfaceData)),
			0,
			0,
			uintptr(unsafe.Pointer(&requiredSize)),
			0,
		)

		// Allocate detail buffer
		detailData := make([]byte, requiredSize)
		detail := (*SP_DEVICE_INTERFACE_DETAIL_DATA)(unsafe.Pointer(&detailData[0]))
		// CbSize must be sizeof(SP_DEVICE_INTERFACE_DETAIL_DATA) which is different on 32/64 bit
		if unsafe.Sizeof(uintptr(0)) == 8 {
			detail.CbSize = 8
		} else {
			detail.CbSize = 6
		}

		r, _, err = procSetupDiGetDeviceInterfaceDetailW.Call(
			devInfo,
			uintptr(unsafe.Pointer(&devInterfaceData)),
			uintptr(unsafe.Pointer(detail)),
			uintptr(requiredSize),
			0,
			0,
		)
		if r == 0 {
			continue
		}

		// Convert device path
		pathPtr := &detail.DevicePath[0]
		path := windows.UTF16PtrToString(pathPtr)

		// Open device to get attributes
		h, err := windows.CreateFile(
			pathPtr,
			0, // No access needed for attributes
			windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
			nil,
			windows.OPEN_EXISTING,
			0,
			0,
		)
		if err != nil {
			continue
		}

		var attrs HIDD_ATTRIBUTES
		attrs.Size = uint32(unsafe.Sizeof(attrs))
		r, _, _ = procHidD_GetAttributes.Call(uintptr(h), uintptr(unsafe.Pointer(&attrs)))

		var manufacturer, product string
		if r != 0 {
			mfr := make([]uint16, 256)
			procHidD_GetManufacturerString.Call(uintptr(h), uintptr(unsafe.Pointer(&mfr[0])), uintptr(len(mfr)*2))
			manufacturer = windows.UTF16ToString(mfr)

			prod := make([]uint16, 256)
			procHidD_GetProductString.Call(uintptr(h), uintptr(unsafe.Pointer(&prod[0])), uintptr(len(prod)*2))
			product = windows.UTF16ToString(prod)
		}

		windows.CloseHandle(h)

		if r != 0 {
			devices = append(devices, Info{
				Path:         path,
				VendorID:     attrs.VendorID,
				ProductID:    attrs.ProductID,
				Manufacturer: manufacturer,
				Product:      product,
			})
		}
	}

	return devices, nil
}

func (m *winManager) Open(info Info) (Device, error) {
	pathPtr, err := windows.UTF16PtrFromString(info.Path)
	if err != nil {
		return nil, err
	}

	h, err := windows.CreateFile(
		pathPtr,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0, // Synchronous I/O
		0,
	)
	if err != nil {
		return nil, fmt.Errorf("CreateFile failed: %v", err)
	}

	// Report lengths come from the device capabilities; Windows HID I/O
	// rejects buffers that don't match them exactly.
	var preparsedData uintptr
	r, _, _ := procHidD_GetPreparsedData.Call(uintptr(h), uintptr(unsafe.Pointer(&preparsedData)))
	if r == 0 {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("HidD_GetPreparsedData failed")
	}

	var caps HIDP_CAPS
	r, _, _ = procHidP_GetCaps.Call(preparsedData, uintptr(unsafe.Pointer(&caps)))
	procHidD_FreePreparsedData.Call(preparsedData)

	const HIDP_STATUS_SUCCESS = 0x00110000
	if r != HIDP_STATUS_SUCCESS {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("HidP_GetCaps failed: 0x%X", r)
	}

	return &winDevice{
		handle:     h,
		path:       info.Path,
		outputLen:  int(caps.OutputReportByteLength),
		featureLen: int(caps.FeatureReportByteLength),
	}, nil
}

type winDevice struct {
	handle     windows.Handle
	path       string
	outputLen  int
	featureLen int
}

func (d *winDevice) WriteOutput(reportID byte, data []byte) error {
	// WriteFile drives the interrupt OUT pipe. Pad up to the device's
	// output report length when the caps report a larger size.
	n := len(data) + 1
	if d.outputLen > n {
		n = d.outputLen
	}
	report := make([]byte, n)
	report[0] = reportID
	copy(report[1:], data)

	var written uint32
	if err := windows.WriteFile(d.handle, report, &written, nil); err != nil {
		return fmt.Errorf("WriteFile failed: %v", err)
	}
	return nil
}

func (d *winDevice) WriteFeature(reportID byte, data []byte) error {
	n := len(data) + 1
	if d.featureLen > n {
		n = d.featureLen
	}
	report := make([]byte, n)
	report[0] = reportID
	copy(report[1:], data)

	r, _, err := procHidD_SetFeature.Call(
		uintptr(d.handle),
		uintptr(unsafe.Pointer(&report[0])),
		uintptr(len(report)),
	)
	if r == 0 {
		return fmt.Errorf("HidD_SetFeature failed: %v", err)
	}
	return nil
}

func (d *winDevice) Close() error {
	return windows.CloseHandle(d.handle)
}
