package ws170120

// BuildReport returns the 38-byte brightness report for the given
// percentage. Brightness must already be in [0,100]; no clamping is
// done here.
func BuildReport(brightness byte) []byte {
	report := make([]byte, ReportLength)
	copy(report, controlMagic[:])
	report[brightnessOffset] = brightness
	return report
}
