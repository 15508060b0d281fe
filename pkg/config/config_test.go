package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"EVENT_STORE_HOSTNAME", "EVENT_STORE_PORTNR", "EVENT_STORE_LISTEN_PORT",
		"EVENT_STORE_REDIS_HOST", "EVENT_STORE_REDIS_PORT", "EVENT_STORE_MAX_WORKERS",
	}
	for _, k := range keys {
		old, had := os.LookupEnv(k)
		_ = os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, old)
			}
		})
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "localhost", cfg.Hostname)
	require.Equal(t, 50051, cfg.PortNr)
	require.Equal(t, 50051, cfg.ListenPort)
	require.Equal(t, "localhost", cfg.RedisHost)
	require.Equal(t, 6379, cfg.RedisPort)
	require.Equal(t, 10, cfg.MaxWorkers)
	require.Equal(t, "localhost:50051", cfg.ServerAddr())
	require.Equal(t, ":50051", cfg.ListenAddr())
	require.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVENT_STORE_HOSTNAME", "store.internal")
	t.Setenv("EVENT_STORE_REDIS_PORT", "7000")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "store.internal", cfg.Hostname)
	require.Equal(t, 7000, cfg.RedisPort)
}

func TestFromEnvRejectsNonInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVENT_STORE_MAX_WORKERS", "not-a-number")

	_, err := FromEnv()
	require.Error(t, err)
}
