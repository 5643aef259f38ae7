package quota

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benefitDoc(fields map[string]any) Document {
	return Document{"benefits": []any{fields}}
}

func TestAggregateData(t *testing.T) {
	t.Run("sums DATA benefits", func(t *testing.T) {
		docs := []Document{
			benefitDoc(map[string]any{"data_type": "DATA", "total": float64(1000), "remaining": float64(400)}),
		}
		remaining, total := AggregateData(docs)
		assert.Equal(t, int64(400), remaining)
		assert.Equal(t, int64(1000), total)
	})

	t.Run("missing remaining defaults to total", func(t *testing.T) {
		docs := []Document{
			benefitDoc(map[string]any{"data_type": "DATA", "total": float64(1000)}),
		}
		remaining, total := AggregateData(docs)
		assert.Equal(t, int64(1000), remaining)
		assert.Equal(t, int64(1000), total)
	})

	t.Run("non-DATA benefits are excluded", func(t *testing.T) {
		docs := []Document{
			{"benefits": []any{
				map[string]any{"data_type": "VOICE", "total": float64(600), "remaining": float64(300)},
				map[string]any{"data_type": "DATA", "total": float64(2000), "remaining": float64(500)},
				map[string]any{"data_type": "TEXT", "total": float64(50), "remaining": float64(10)},
			}},
		}
		remaining, total := AggregateData(docs)
		assert.Equal(t, int64(500), remaining)
		assert.Equal(t, int64(2000), total)
	})

	t.Run("malformed entry is skipped, not fatal", func(t *testing.T) {
		docs := []Document{
			{"benefits": []any{
				map[string]any{"data_type": "DATA", "total": "garbage", "remaining": float64(1)},
				map[string]any{"data_type": "DATA", "total": float64(1000), "remaining": "garbage"},
				map[string]any{"data_type": "DATA", "total": float64(1000), "remaining": float64(250)},
				"not even an object",
			}},
		}
		remaining, total := AggregateData(docs)
		assert.Equal(t, int64(250), remaining)
		assert.Equal(t, int64(1000), total)
	})

	t.Run("sums across multiple records", func(t *testing.T) {
		docs := []Document{
			benefitDoc(map[string]any{"data_type": "DATA", "total": float64(1000), "remaining": float64(400)}),
			benefitDoc(map[string]any{"data_type": "DATA", "total": float64(3000), "remaining": float64(600)}),
		}
		remaining, total := AggregateData(docs)
		assert.Equal(t, int64(1000), remaining)
		assert.Equal(t, int64(4000), total)
	})

	t.Run("numeric strings coerce", func(t *testing.T) {
		docs := []Document{
			benefitDoc(map[string]any{"data_type": "DATA", "total": "1000", "remaining": "400"}),
		}
		remaining, total := AggregateData(docs)
		assert.Equal(t, int64(400), remaining)
		assert.Equal(t, int64(1000), total)
	})

	t.Run("empty batch", func(t *testing.T) {
		remaining, total := AggregateData(nil)
		assert.Zero(t, remaining)
		assert.Zero(t, total)
	})
}

func TestParseQuotaRecord(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		doc := Document{
			"quota_code":                "QC-1",
			"name":                      "Data Utama",
			"product_subscription_type": "PREPAID",
			"product_domain":            "default",
			"package_group_code":        "GRP-9",
			"benefits": []any{
				map[string]any{
					"name": "Kuota Utama", "data_type": "DATA",
					"total": float64(5_000_000_000), "remaining": float64(1_000_000_000),
				},
			},
		}
		rec := ParseQuotaRecord(doc)
		want := QuotaRecord{
			QuotaCode:        "QC-1",
			Name:             "Data Utama",
			SubscriptionType: "PREPAID",
			Domain:           "default",
			GroupCode:        "GRP-9",
			Benefits: []BenefitEntry{{
				Name: "Kuota Utama", DataType: "DATA",
				Remaining: 1_000_000_000, Total: 5_000_000_000,
			}},
			Raw: doc,
		}
		if diff := cmp.Diff(want, rec); diff != "" {
			t.Errorf("record mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing remaining defaults to total", func(t *testing.T) {
		rec := ParseQuotaRecord(benefitDoc(map[string]any{
			"data_type": "DATA", "total": float64(1000),
		}))
		require.Len(t, rec.Benefits, 1)
		assert.Equal(t, int64(1000), rec.Benefits[0].Remaining)
	})

	t.Run("unlimited flag survives garbage numbers", func(t *testing.T) {
		rec := ParseQuotaRecord(benefitDoc(map[string]any{
			"name": "Streaming", "data_type": "DATA",
			"is_unlimited": true, "total": "??",
		}))
		require.Len(t, rec.Benefits, 1)
		assert.True(t, rec.Benefits[0].IsUnlimited)
		assert.Zero(t, rec.Benefits[0].Total)
	})

	t.Run("record without benefits", func(t *testing.T) {
		rec := ParseQuotaRecord(Document{"quota_code": "QC-2"})
		assert.Empty(t, rec.Benefits)
	})
}
