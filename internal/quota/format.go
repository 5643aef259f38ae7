package quota

import "fmt"

// FormatQuantity renders a benefit's remaining/total pair with unit-aware
// scaling. Unlimited benefits render as "Unlimited" regardless of their
// numeric fields.
func FormatQuantity(b BenefitEntry) string {
	if b.IsUnlimited {
		return "Unlimited"
	}
	switch {
	case b.DataType == DataTypeData && b.Total > 0:
		return fmt.Sprintf("%s / %s", FormatBytes(b.Remaining), FormatBytes(b.Total))
	case b.DataType == DataTypeVoice && b.Total > 0:
		return fmt.Sprintf("%.2fm / %.2fm", float64(b.Remaining)/60, float64(b.Total)/60)
	case b.DataType == DataTypeText && b.Total > 0:
		return fmt.Sprintf("%d / %d SMS", b.Remaining, b.Total)
	default:
		return fmt.Sprintf("%d / %d", b.Remaining, b.Total)
	}
}

// FormatBytes scales a byte count for display. The thresholds are decimal
// while the displayed value divides by binary powers; this asymmetry matches
// the upstream app exactly (999,999 bytes renders in KB via /1024) and must
// not be "fixed".
func FormatBytes(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.2f GB", float64(n)/(1024*1024*1024))
	case n >= 1_000_000:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n >= 1_000:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
