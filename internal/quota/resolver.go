package quota

import "strings"

// Document is one decoded JSON object from the upstream API. Quota and
// package payloads are kept in this raw form because their shape varies
// between accounts and endpoint versions.
type Document = map[string]any

// Candidate paths for logical fields that the API exposes under different
// keys and nesting depths. Dotted segments descend into sub-objects.
//
// These lists are append-only: when a new key is observed in the wild it is
// added as a new candidate, never as a replacement, because older and newer
// response shapes coexist across accounts.
var (
	ActivationCandidates = []string{
		"activated_at",
		"active_since",
		"package_option.activated_at",
		"package_option.active_since",
		"package.activated_at",
		"package.active_since",
	}

	ResetCandidates = []string{
		"reset_at",
		"reset_quota_at",
		"package_option.reset_at",
		"package_option.reset_quota_at",
		"package.reset_at",
		"package.reset_quota_at",
	}

	GroupCodeCandidates = []string{
		"group_code",
		"package_group_code",
	}
)

// Resolve probes the candidate paths in order and returns the first present,
// truthy value. Returns nil when no candidate matches; the caller omits the
// corresponding display row.
func Resolve(doc Document, candidates ...string) any {
	for _, path := range candidates {
		if v := lookup(doc, path); truthy(v) {
			return v
		}
	}
	return nil
}

func lookup(doc Document, path string) any {
	segments := strings.Split(path, ".")
	var cur any = doc
	for _, seg := range segments {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[seg]
		if !ok {
			return nil
		}
	}
	return cur
}

// truthy mirrors the duck-typed presence test the upstream shapes demand:
// empty strings, zero numbers, false and empty containers all count as
// absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
