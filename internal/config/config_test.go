package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnoswap-labs/tour/internal/types"
)

func TestLoadDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, "missing.yaml")
	require.NoError(t, err)

	assert.Equal(t, "tour", cfg.Name)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, "memory", cfg.Memo.Backend)
	assert.Equal(t, 128, cfg.Memo.MaxEntries)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Demos)
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `name: demo-project
seed: 7
timeout: 30s
demos:
  stdlib/subprocess:
    state: off
  fileio:
    state: off
  fileio/json:
    state: on
memo:
  backend: file
  dir: /cache
  max_age: 24h
`
	require.NoError(t, afero.WriteFile(fs, "/p/.tour.yaml", []byte(content), 0o644))

	cfg, err := Load(fs, "/p/.tour.yaml")
	require.NoError(t, err)

	assert.Equal(t, "demo-project", cfg.Name)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "/cache", cfg.Memo.Dir)
	assert.Equal(t, 24*time.Hour, cfg.Memo.MaxAge)

	assert.Equal(t, tt.StateOff, cfg.State("stdlib/subprocess"))
	assert.Equal(t, tt.StateOn, cfg.State("stdlib/math"))
	assert.Equal(t, tt.StateOff, cfg.State("fileio/csv"))
	assert.Equal(t, tt.StateOn, cfg.State("fileio/json"))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TOUR_SEED", "99")
	t.Setenv("TOUR_MEMO_BACKEND", "redis")
	t.Setenv("TOUR_MEMO_REDIS_ADDR", "localhost:6379")

	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, "redis", cfg.Memo.Backend)
	assert.Equal(t, "localhost:6379", cfg.Memo.RedisAddr)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown backend", "memo:\n  backend: etcd\n"},
		{"redis without address", "memo:\n  backend: redis\n"},
		{"zero timeout", "timeout: 0s\n"},
		{"bad state", "demos:\n  basics:\n    state: maybe\n"},
		{"nested demo name", "demos:\n  a/b/c:\n    state: off\n"},
		{"broken yaml", "name: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, DefaultPath, []byte(tc.content), 0o644))

			_, err := Load(fs, DefaultPath)
			assert.Error(t, err)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := Default()
	cfg.Demos["stdlib/subprocess"] = tt.DemoConfig{State: tt.StateOff}

	require.NoError(t, Write(fs, "", cfg))

	raw, err := afero.ReadFile(fs, DefaultPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "stdlib/subprocess:")

	loaded, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
