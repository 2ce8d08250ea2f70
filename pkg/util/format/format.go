package format

import "fmt"

// FormatBytes renders a byte count in human-readable units, dropping
// the fractional part for whole numbers.
func FormatBytes(b uint64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
		tb = 1 << 40
	)

	val := float64(b)
	var unit string

	switch {
	case b >= tb:
		val /= float64(uint64(tb))
		unit = "TB"
	case b >= gb:
		val /= float64(uint64(gb))
		unit = "GB"
	case b >= mb:
		val /= float64(uint64(mb))
		unit = "MB"
	case b >= kb:
		val /= float64(uint64(kb))
		unit = "KB"
	default:
		return fmt.Sprintf("%dB", b)
	}

	if val == float64(uint64(val)) {
		return fmt.Sprintf("%.0f%s", val, unit)
	}
	return fmt.Sprintf("%.2f%s", val, unit)
}
