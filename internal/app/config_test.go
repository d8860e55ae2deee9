package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("TELEGRAM_ADMIN_ID", "777")

	path := writeConfig(t, `
telegram:
  run_mode: longpoll
complaint:
  batches:
    - "batch a"
    - "batch b"
  subjects:
    - "Quant"
`)

	carrier, err := LoadConfig(path)
	require.NoError(t, err)

	cfg, ok := carrier.(*Config)
	require.True(t, ok)

	core := cfg.CoreConfig()
	require.NotNil(t, core)
	assert.Equal(t, "test-token", core.Telegram.Token)
	assert.Equal(t, int64(777), core.Telegram.AdminID)
	assert.Equal(t, "longpoll", core.Telegram.RunMode)

	assert.Equal(t, []string{"batch a", "batch b"}, cfg.Complaint.Batches)
	assert.Equal(t, []string{"Quant"}, cfg.Complaint.Subjects)
}

func TestLoadConfigDefaultsCatalog(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")

	path := writeConfig(t, `
telegram:
  run_mode: longpoll
`)

	carrier, err := LoadConfig(path)
	require.NoError(t, err)

	cfg := carrier.(*Config)
	assert.Equal(t, defaultBatches(), cfg.Complaint.Batches)
	assert.Equal(t, defaultSubjects(), cfg.Complaint.Subjects)
}

func TestLoadConfigRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	path := writeConfig(t, `
telegram:
  run_mode: longpoll
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
