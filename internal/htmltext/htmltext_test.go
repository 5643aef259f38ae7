package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Run("strips inline tags", func(t *testing.T) {
		got := Extract(`<b>Kuota</b> berlaku <i>30 hari</i>`)
		assert.Equal(t, "Kuota berlaku 30 hari", got)
	})

	t.Run("block elements break lines", func(t *testing.T) {
		got := Extract(`<p>Syarat:</p><ul><li>Item satu</li><li>Item dua</li></ul>`)
		assert.Equal(t, "Syarat:\nItem satu\nItem dua", got)
	})

	t.Run("script and style bodies are dropped", func(t *testing.T) {
		got := Extract(`<p>Teks</p><script>alert(1)</script><style>p{}</style>`)
		assert.Equal(t, "Teks", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Extract("  \n "))
	})

	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "no markup here", Extract("no markup here"))
	})
}
