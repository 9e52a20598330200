package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://graph.facebook.com", cfg.BaseURL)
	assert.Equal(t, "WHATSAPP_BUSINESS_API_KEY", cfg.TokenEnv)
	assert.Empty(t, cfg.APIVersion)
	assert.False(t, cfg.ReadOnly)
	assert.True(t, cfg.Allows("create_qr_code", "POST"))
}

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
base_url: https://graph.example.test
api_version: v16.0
token_env: WABA_TOKEN
disabled_tools:
  - delete_qr_code
disabled_methods:
  - DELETE
`))
	require.NoError(t, err)

	assert.Equal(t, "https://graph.example.test", cfg.BaseURL)
	assert.Equal(t, "v16.0", cfg.APIVersion)
	assert.Equal(t, "WABA_TOKEN", cfg.TokenEnv)
	assert.True(t, cfg.IsToolDisabled("delete_qr_code"))
	assert.True(t, cfg.IsMethodDisabled("delete"))
	assert.False(t, cfg.IsMethodDisabled("GET"))
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader(`api_version: v17.0`))
	require.NoError(t, err)

	assert.Equal(t, "v17.0", cfg.APIVersion)
	assert.Equal(t, "https://graph.facebook.com", cfg.BaseURL)
	assert.Equal(t, "WHATSAPP_BUSINESS_API_KEY", cfg.TokenEnv)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("base_url: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFileMissingYieldsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestReadOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReadOnly = true

	assert.True(t, cfg.IsMethodDisabled("POST"))
	assert.True(t, cfg.IsMethodDisabled("DELETE"))
	assert.False(t, cfg.IsMethodDisabled("GET"))
	assert.False(t, cfg.Allows("create_qr_code", "POST"))
	assert.True(t, cfg.Allows("get_qr_code", "GET"))
}
