package ws170120

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	ErrInvalidInput = errors.New("brightness out of range")
	ErrNotFound     = errors.New("display not connected")
	ErrAccessDenied = errors.New("device access denied")
	ErrTransfer     = errors.New("communication error")
)

// Class buckets every failure the tool can report. Classification is
// purely for diagnostics and the process exit code; nothing is retried.
type Class int

const (
	ClassNone Class = iota
	ClassInvalidInput
	ClassDeviceNotFound
	ClassPermissionDenied
	ClassTransferFailed
)

func Classify(err error) Class {
	switch {
	case err == nil:
		return ClassNone
	case errors.Is(err, ErrInvalidInput):
		return ClassInvalidInput
	case errors.Is(err, ErrNotFound):
		return ClassDeviceNotFound
	case errors.Is(err, ErrAccessDenied):
		return ClassPermissionDenied
	default:
		return ClassTransferFailed
	}
}

func (c Class) ExitCode() int {
	switch c {
	case ClassNone:
		return 0
	case ClassInvalidInput:
		return 2
	default:
		return 1
	}
}

// Message renders the user-facing diagnostic for a classified failure.
func (c Class) Message(err error) string {
	switch c {
	case ClassNone:
		return ""
	case ClassInvalidInput:
		return "Brightness must be an integer between 0 and 100."
	case ClassDeviceNotFound:
		return "Waveshare monitor WS170120 is not connected."
	case ClassPermissionDenied:
		return fmt.Sprintf("Device access denied. Try running with elevated privileges (sudo). Error was: %v", err)
	default:
		return fmt.Sprintf("Failed to set brightness: %v", err)
	}
}

// isPermissionError matches both proper fs.ErrPermission chains and the
// error strings the various HID backends produce for a denied open.
func isPermissionError(err error) bool {
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "access denied") ||
		strings.Contains(msg, "exclusive access")
}
