package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl  string `json:"base_url"`
	MaxItems int    `json:"max_items"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "app.json5")

	err := os.WriteFile(name, []byte(`{base_url: "https://a.example", max_items: 100}`), 0644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "app.local.json5"), []byte(`{max_items: 5}`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://a.example", cfg.BaseUrl)
	require.Equal(t, 5, cfg.MaxItems)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "app.json5")

	err := os.WriteFile(filepath.Join(dir, "app.local.json5"), []byte(`{base_url: "https://b.example"}`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://b.example", cfg.BaseUrl)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "nope.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
