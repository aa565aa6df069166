package ws170120

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seagrayinc/wsbright/internal/hid"
)

func display(path string) hid.Info {
	return hid.Info{Path: path, VendorID: VendorID, ProductID: ProductID, Product: "WS170120"}
}

func TestLocateNotFound(t *testing.T) {
	mgr := hid.NewMockManager(
		hid.Info{Path: "kbd0", VendorID: 0x046D, ProductID: 0xC52B},
		hid.Info{Path: "mouse0", VendorID: 0x1532, ProductID: 0x0084},
	)

	_, err := Locate(mgr)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, mgr.Opened, "no open attempt expected without a match")
}

func TestLocateEmptyBus(t *testing.T) {
	_, err := Locate(hid.NewMockManager())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocatePermissionDenied(t *testing.T) {
	tests := []struct {
		name    string
		openErr error
	}{
		{"fs error chain", fs.ErrPermission},
		{"hidraw message", errors.New("open /dev/hidraw3: permission denied")},
		{"windows message", errors.New("CreateFile failed: Access denied")},
		{"exclusive access", errors.New("hidapi: device is in exclusive access mode")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := hid.NewMockManager(display("ws0"))
			mgr.OpenErrs = map[string]error{"ws0": tt.openErr}

			_, err := Locate(mgr)
			assert.ErrorIs(t, err, ErrAccessDenied)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLocateOtherOpenFailure(t *testing.T) {
	mgr := hid.NewMockManager(display("ws0"))
	mgr.OpenErrs = map[string]error{"ws0": errors.New("device disappeared")}

	_, err := Locate(mgr)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccessDenied)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestLocateFirstMatchWins(t *testing.T) {
	mgr := hid.NewMockManager(
		hid.Info{Path: "kbd0", VendorID: 0x046D, ProductID: 0xC52B},
		display("ws0"),
		display("ws1"),
	)

	dev, err := Locate(mgr)
	require.NoError(t, err)
	require.NotNil(t, dev)
	assert.Equal(t, []string{"ws0"}, mgr.Opened)
}

func TestLocateEnumerateFailure(t *testing.T) {
	mgr := hid.NewMockManager()
	mgr.ListErr = errors.New("hid subsystem unavailable")

	_, err := Locate(mgr)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
