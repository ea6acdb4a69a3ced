package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreJSON, cfg.Store)
	assert.Equal(t, "classic", cfg.Theme)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TICK_STORE", "badger")
	t.Setenv("TICK_DIR", "/tmp/somewhere")
	t.Setenv("TICK_THEME", "mono")
	t.Setenv("TICK_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreBadger, cfg.Store)
	assert.Equal(t, "/tmp/somewhere", cfg.Dir)
	assert.Equal(t, "mono", cfg.Theme)
	assert.True(t, cfg.Debug)
}

func TestOpenStoreRejectsUnknownBackend(t *testing.T) {
	cfg := Config{Dir: t.TempDir(), Store: "postgres"}
	_, err := cfg.OpenStore(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}

func TestOpenStoreBuildsEachBackend(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []string{StoreJSON, StoreSQLite} {
		cfg := Config{Dir: t.TempDir(), Store: backend}
		st, err := cfg.OpenStore(ctx, nil)
		require.NoError(t, err, backend)
		require.NoError(t, st.Close())
	}
}
