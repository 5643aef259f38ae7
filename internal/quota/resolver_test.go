package quota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("first present candidate wins", func(t *testing.T) {
		doc := Document{"activated_at": float64(1700000000), "active_since": float64(1600000000)}
		got := Resolve(doc, ActivationCandidates...)
		assert.Equal(t, float64(1700000000), got)
	})

	t.Run("falls through to later candidate", func(t *testing.T) {
		doc := Document{"c": float64(5)}
		got := Resolve(doc, "a.b", "c")
		assert.Equal(t, float64(5), got)
	})

	t.Run("nested path descends sub-objects", func(t *testing.T) {
		doc := Document{
			"package_option": map[string]any{"reset_at": float64(1710000000)},
		}
		got := Resolve(doc, ResetCandidates...)
		assert.Equal(t, float64(1710000000), got)
	})

	t.Run("empty document resolves to nil", func(t *testing.T) {
		assert.Nil(t, Resolve(Document{}, "a.b", "c"))
	})

	t.Run("falsy values are skipped", func(t *testing.T) {
		doc := Document{
			"reset_at":       "",
			"reset_quota_at": float64(0),
			"package_option": map[string]any{"reset_at": float64(1710000000)},
		}
		got := Resolve(doc, ResetCandidates...)
		assert.Equal(t, float64(1710000000), got)
	})

	t.Run("non-object intermediate segment resolves to nil", func(t *testing.T) {
		doc := Document{"package_option": "oops"}
		assert.Nil(t, Resolve(doc, "package_option.reset_at"))
	})

	t.Run("group code fallback", func(t *testing.T) {
		doc := Document{"package_group_code": "GRP-1"}
		got := Resolve(doc, GroupCodeCandidates...)
		assert.Equal(t, "GRP-1", got)
	})
}
