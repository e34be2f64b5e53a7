package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Web.Port)
	assert.Equal(t, "/api", cfg.Web.ApiPrefix)
	assert.Equal(t, "halimou", cfg.Database.Name)
	assert.Equal(t, "0 3 * * *", cfg.Jobs.RevenueAudit)
}

func TestLoadConfigFileOverrides(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "patisserie.yml")
	data := []byte("web:\n  port: 9001\ndatabase:\n  type: sqlite\n  name: test\n")
	require.NoError(t, os.WriteFile(cfile, data, 0o644))

	cfg, err := LoadConfig(cfile)
	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.Web.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "test", cfg.Database.Name)
	assert.Equal(t, "0.0.0.0", cfg.Web.Host, "unset keys keep their defaults")
}

func TestLoadConfigEnvWinsOverFile(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "patisserie.yml")
	require.NoError(t, os.WriteFile(cfile, []byte("database:\n  host: from-file\n"), 0o644))
	t.Setenv("PATISSERIE_DB_HOST", "from-env")

	cfg, err := LoadConfig(cfile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Host)
}

func TestLoadConfigBadYaml(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "patisserie.yml")
	require.NoError(t, os.WriteFile(cfile, []byte(":\n  - not yaml {"), 0o644))

	_, err := LoadConfig(cfile)
	assert.Error(t, err)
}
