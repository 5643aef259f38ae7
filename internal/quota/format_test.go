package quota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	t.Run("unlimited wins over numbers", func(t *testing.T) {
		got := FormatQuantity(BenefitEntry{
			DataType: "DATA", Remaining: 123, Total: 456, IsUnlimited: true,
		})
		assert.Equal(t, "Unlimited", got)
	})

	t.Run("data scales in GB", func(t *testing.T) {
		got := FormatQuantity(BenefitEntry{
			DataType: "DATA", Remaining: 2_147_483_648, Total: 4_294_967_296,
		})
		assert.Equal(t, "2.00 GB / 4.00 GB", got)
	})

	t.Run("decimal threshold, binary division", func(t *testing.T) {
		// 999,999 bytes is under the MB threshold so it renders in KB,
		// and the KB value divides by 1024, not 1000.
		got := FormatQuantity(BenefitEntry{
			DataType: "DATA", Remaining: 999_999, Total: 2_000_000,
		})
		assert.Equal(t, "976.56 KB / 1.91 MB", got)
	})

	t.Run("small byte counts stay raw", func(t *testing.T) {
		got := FormatQuantity(BenefitEntry{DataType: "DATA", Remaining: 512, Total: 2048})
		assert.Equal(t, "512 B / 2.00 KB", got)
	})

	t.Run("voice renders minutes with two decimals", func(t *testing.T) {
		got := FormatQuantity(BenefitEntry{DataType: "VOICE", Remaining: 90, Total: 3600})
		assert.Equal(t, "1.50m / 60.00m", got)
	})

	t.Run("text renders raw SMS count", func(t *testing.T) {
		got := FormatQuantity(BenefitEntry{DataType: "TEXT", Remaining: 3, Total: 50})
		assert.Equal(t, "3 / 50 SMS", got)
	})

	t.Run("unknown type has no unit", func(t *testing.T) {
		got := FormatQuantity(BenefitEntry{DataType: "BONUS", Remaining: 7, Total: 9})
		assert.Equal(t, "7 / 9", got)
	})

	t.Run("zero total falls back to raw pair", func(t *testing.T) {
		got := FormatQuantity(BenefitEntry{DataType: "DATA", Remaining: 0, Total: 0})
		assert.Equal(t, "0 / 0", got)
	})
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		name string
		n    int64
		want string
	}{
		{"bytes", 999, "999 B"},
		{"kilobytes at decimal threshold", 1_000, "0.98 KB"},
		{"megabytes", 500_000_000, "476.84 MB"},
		{"gigabytes", 1_000_000_000, "0.93 GB"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatBytes(tc.n))
		})
	}
}
