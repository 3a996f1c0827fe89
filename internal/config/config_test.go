package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influence-nexus/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Chdir(t.TempDir())
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.Equal(t, 60*time.Second, cfg.OpenAI.Timeout)
	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.False(t, cfg.Psql.Seed)
}

func TestLoadDotenvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"SUPABASE_URL=https://file.supabase.co\n"+
			"SUPABASE_ANON_KEY=file-anon\n"+
			"SUPABASE_SERVICE_KEY=file-service\n"+
			"STORE_DRIVER=Supabase\n"+
			"OPENAI_API_KEY=sk-file\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	// Process environment wins over the file.
	t.Setenv("SUPABASE_ANON_KEY", "env-anon")
	t.Cleanup(func() {
		for _, k := range []string{"SUPABASE_URL", "SUPABASE_SERVICE_KEY", "STORE_DRIVER", "OPENAI_API_KEY"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://file.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "env-anon", cfg.Supabase.AnonKey)
	assert.Equal(t, configs.StoreDriverSupabase, cfg.Store.Driver)
	assert.Equal(t, "sk-file", cfg.OpenAI.APIKey)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Store:    configs.Store{Driver: "supabase"},
		Supabase: configs.Supabase{URL: "https://x.supabase.co", AnonKey: "anon"},
	}
	require.Error(t, cfg.Validate())

	cfg.Supabase.ServiceKey = "service"
	require.NoError(t, cfg.Validate())

	cfg.Store.Driver = "mysql"
	require.Error(t, cfg.Validate())
}
