// Package quota normalizes and aggregates the subscription quota documents
// returned by the upstream API. The API has no stable schema: the same
// logical field shows up as an int, a float, or a numeric string, at
// different nesting depths depending on package type and endpoint version.
// Everything in this package works over already-decoded JSON and performs no
// I/O.
package quota

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// millisThreshold separates epoch seconds from epoch milliseconds. Anything
// above it is far beyond a plausible seconds timestamp for this domain and is
// treated as milliseconds.
const millisThreshold = 3_000_000_000

// monthsID is the fixed Indonesian month abbreviation table. Rendering goes
// through this table instead of the platform locale so output is identical on
// every host.
var monthsID = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// NormalizeTimestamp interprets a heterogeneous timestamp value as epoch
// seconds. Accepts ints, floats and purely-numeric strings; millisecond
// values are scaled down. Returns false for anything it cannot interpret.
func NormalizeTimestamp(v any) (int64, bool) {
	var val int64
	switch t := v.(type) {
	case nil:
		return 0, false
	case int:
		val = int64(t)
	case int32:
		val = int64(t)
	case int64:
		val = t
	case float32:
		val = int64(t)
	case float64:
		val = int64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" || !isDigits(s) {
			return 0, false
		}
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		val = parsed
	default:
		return 0, false
	}
	if val > millisThreshold {
		val /= 1000
	}
	return val, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatTimestamp renders a timestamp as "DD Mon YYYY HH:MM:SS" with
// Indonesian month names. Values that do not normalize are returned
// stringified so the caller can still show whatever the API sent.
func FormatTimestamp(v any) string {
	secs, ok := NormalizeTimestamp(v)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	t := time.Unix(secs, 0)
	return fmt.Sprintf("%02d %s %d %02d:%02d:%02d",
		t.Day(), monthsID[t.Month()-1], t.Year(),
		t.Hour(), t.Minute(), t.Second())
}

// DaysUntil reports how many whole calendar days remain until the timestamp.
// Truncates toward zero, so "later today" is 0 days.
func DaysUntil(v any) (int, bool) {
	return daysUntilAt(v, time.Now())
}

func daysUntilAt(v any, now time.Time) (int, bool) {
	secs, ok := NormalizeTimestamp(v)
	if !ok {
		return 0, false
	}
	delta := time.Unix(secs, 0).Sub(now)
	return int(delta.Hours() / 24), true
}
