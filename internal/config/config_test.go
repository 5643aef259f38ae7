package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		t.Setenv("MYXL_API_KEY", "")
		t.Setenv("MYXL_BASE_URL", "")
		t.Setenv("MYXL_STATE_DIR", "")

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "https://api.myxl.xlaxiata.co.id", cfg.API.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.API.TimeoutDuration())
		assert.Equal(t, BarConfig{Min: 12, Max: 48, Reserved: 60}, cfg.UI.PackageBar)
		assert.Equal(t, BarConfig{Min: 12, Max: 60, Reserved: 40}, cfg.UI.ProfileBar)
	})

	t.Run("file values are honored and gaps filled", func(t *testing.T) {
		t.Setenv("MYXL_BASE_URL", "")
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := `
api:
  base_url: https://staging.example.test
decoys:
  balance: OPT-DECOY-1
  qris: OPT-DECOY-2
`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://staging.example.test", cfg.API.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.API.TimeoutDuration(), "timeout default fills in")
		assert.Equal(t, "OPT-DECOY-1", cfg.Decoys["balance"])
		assert.Equal(t, "OPT-DECOY-2", cfg.Decoys["qris"])
	})

	t.Run("env overrides win over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://file.example.test\n  api_key: file-key\n"), 0o644))

		t.Setenv("MYXL_BASE_URL", "https://env.example.test")
		t.Setenv("MYXL_API_KEY", "env-key")
		t.Setenv("MYXL_STATE_DIR", "/tmp/myxl-test-state")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.test", cfg.API.BaseURL)
		assert.Equal(t, "env-key", cfg.API.APIKey)
		assert.Equal(t, "/tmp/myxl-test-state", cfg.State.Dir)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\t this is not yaml"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
