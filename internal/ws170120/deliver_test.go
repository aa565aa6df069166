package ws170120

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seagrayinc/wsbright/internal/hid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeliverFeatureFirst(t *testing.T) {
	dev := &hid.MockDevice{}
	report := BuildReport(75)

	err := Deliver(testLogger(), dev, report)
	require.NoError(t, err)

	require.Len(t, dev.FeatureWrites, 1)
	assert.Equal(t, report, dev.FeatureWrites[0])
	assert.Empty(t, dev.OutputWrites, "fallback must not run after a success")
}

func TestDeliverFallbackCarriesIdenticalBytes(t *testing.T) {
	dev := &hid.MockDevice{FeatureErr: errors.New("EPIPE")}
	report := BuildReport(0)

	err := Deliver(testLogger(), dev, report)
	require.NoError(t, err)

	require.Len(t, dev.FeatureWrites, 1)
	require.Len(t, dev.OutputWrites, 1)
	assert.Equal(t, report, dev.OutputWrites[0])
	assert.Equal(t, byte(0x00), dev.OutputWrites[0][6])
}

func TestDeliverBothModesFail(t *testing.T) {
	dev := &hid.MockDevice{
		FeatureErr: errors.New("control transfer rejected"),
		OutputErr:  errors.New("interrupt pipe stalled"),
	}

	err := Deliver(testLogger(), dev, BuildReport(50))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransfer)
	assert.Contains(t, err.Error(), "control transfer rejected")
	assert.Contains(t, err.Error(), "interrupt pipe stalled")

	// One attempt per mode, no retries.
	assert.Len(t, dev.FeatureWrites, 1)
	assert.Len(t, dev.OutputWrites, 1)
}
