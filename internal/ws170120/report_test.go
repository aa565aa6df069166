package ws170120

import (
	"bytes"
	"testing"
)

func TestBuildReportLayout(t *testing.T) {
	for b := 0; b <= 100; b++ {
		report := BuildReport(byte(b))
		if len(report) != ReportLength {
			t.Fatalf("unexpected report length: %d", len(report))
		}
		for i, want := range []byte{0x04, 0xAA, 0x01, 0x00} {
			if report[i] != want {
				t.Fatalf("magic byte %d: got 0x%02X, want 0x%02X", i, report[i], want)
			}
		}
		if report[brightnessOffset] != byte(b) {
			t.Fatalf("brightness byte: got 0x%02X, want 0x%02X", report[brightnessOffset], b)
		}
		for i, got := range report {
			if i < len(controlMagic) || i == brightnessOffset {
				continue
			}
			if got != 0 {
				t.Fatalf("byte %d not zero: 0x%02X (brightness %d)", i, got, b)
			}
		}
	}
}

func TestBuildReportBounds(t *testing.T) {
	if BuildReport(0)[brightnessOffset] != 0x00 {
		t.Fatalf("brightness 0 should encode as 0x00")
	}
	if BuildReport(100)[brightnessOffset] != 0x64 {
		t.Fatalf("brightness 100 should encode as 0x64")
	}
}

func TestBuildReportDeterministic(t *testing.T) {
	a := BuildReport(42)
	b := BuildReport(42)
	if !bytes.Equal(a, b) {
		t.Fatalf("reports differ: %x != %x", a, b)
	}
	// Mutating one buffer must not leak into later builds.
	a[brightnessOffset] = 0xFF
	if BuildReport(42)[brightnessOffset] != 42 {
		t.Fatalf("builder shares state across calls")
	}
}
