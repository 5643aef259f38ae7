package quota

import (
	"fmt"
	"strconv"
	"strings"
)

// Benefit data types as reported by the upstream.
const (
	DataTypeData  = "DATA"
	DataTypeVoice = "VOICE"
	DataTypeText  = "TEXT"
)

// BenefitEntry is one metered resource inside a quota record. Units depend
// on DataType: bytes for DATA, seconds for VOICE, message count for TEXT.
type BenefitEntry struct {
	Name        string
	DataType    string
	Remaining   int64
	Total       int64
	IsUnlimited bool
}

// QuotaRecord is one subscription benefit group from the quota-details
// endpoint. Raw keeps the original document so resolver probes (activation
// and reset timestamps) can run against it.
type QuotaRecord struct {
	QuotaCode        string
	Name             string
	SubscriptionType string
	Domain           string
	GroupCode        string
	Benefits         []BenefitEntry
	Raw              Document
}

// ParseQuotaRecord extracts the displayable fields from a raw quota
// document. Malformed benefit numbers degrade to zero rather than dropping
// the row, so every benefit the API reports still renders.
func ParseQuotaRecord(doc Document) QuotaRecord {
	rec := QuotaRecord{
		QuotaCode:        stringField(doc, "quota_code"),
		Name:             stringField(doc, "name"),
		SubscriptionType: stringField(doc, "product_subscription_type"),
		Domain:           stringField(doc, "product_domain"),
		Raw:              doc,
	}
	if gc, ok := Resolve(doc, GroupCodeCandidates...).(string); ok {
		rec.GroupCode = gc
	}

	benefits, _ := doc["benefits"].([]any)
	for _, raw := range benefits {
		b, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		entry := BenefitEntry{
			Name:     stringField(b, "name"),
			DataType: stringField(b, "data_type"),
		}
		if u, ok := b["is_unlimited"].(bool); ok {
			entry.IsUnlimited = u
		}
		entry.Total, _ = coerceInt(b["total"])
		if b["remaining"] == nil {
			// Upstream omits remaining when a benefit is untouched.
			entry.Remaining = entry.Total
		} else if r, ok := coerceInt(b["remaining"]); ok {
			entry.Remaining = r
		}
		rec.Benefits = append(rec.Benefits, entry)
	}
	return rec
}

// ParseQuotaRecords converts a batch of raw quota documents.
func ParseQuotaRecords(docs []Document) []QuotaRecord {
	records := make([]QuotaRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, ParseQuotaRecord(doc))
	}
	return records
}

// AggregateData sums remaining and total across every DATA benefit in the
// batch. A missing remaining defaults to the benefit's total (absence means
// not yet consumed). Entries whose numbers cannot be coerced are skipped
// individually; one malformed entry never aborts the whole aggregation.
func AggregateData(docs []Document) (remaining, total int64) {
	for _, doc := range docs {
		benefits, _ := doc["benefits"].([]any)
		for _, raw := range benefits {
			b, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if stringField(b, "data_type") != DataTypeData {
				continue
			}
			t, ok := coerceInt(b["total"])
			if !ok {
				continue
			}
			r := t
			if b["remaining"] != nil {
				if r, ok = coerceInt(b["remaining"]); !ok {
					continue
				}
			}
			total += t
			remaining += r
		}
	}
	return remaining, total
}

// coerceInt interprets the value as an integer. Absent values count as zero;
// a present but non-numeric value fails.
func coerceInt(v any) (int64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		return int64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func stringField(doc Document, key string) string {
	switch t := doc[key].(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
