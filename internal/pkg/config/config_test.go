package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	configs, err := InitConfig("")
	require.NoError(t, err)

	assert.Equal(t, "redis", configs.Messaging.Driver)
	assert.Equal(t, "trip_updates", configs.Redis.Channel)
	assert.Equal(t, 4, configs.Ingest.Workers)
	assert.Equal(t, 16, configs.Ingest.QueueSize)
	assert.Equal(t, 5000, configs.Query.TimeoutMs)
	assert.Equal(t, 4567, configs.Server.Port)
	assert.Zero(t, configs.Server.RateLimit)
	assert.Equal(t, 60, configs.Server.RateLimitWindow)
	assert.Equal(t, "info", configs.Logger.Level)
	assert.False(t, configs.NewRelic.Enabled)
}

func TestInitConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("MESSAGING_DRIVER", "NSQ")
	t.Setenv("INGEST_WORKERS", "8")
	t.Setenv("NSQ_LOOKUPD_ADDRESSES", "lookupd-1:4161, lookupd-2:4161,")
	t.Setenv("DB_MIGRATE", "true")

	configs, err := InitConfig("")
	require.NoError(t, err)

	assert.Equal(t, "nsq", configs.Messaging.Driver)
	assert.Equal(t, 8, configs.Ingest.Workers)
	assert.Equal(t, []string{"lookupd-1:4161", "lookupd-2:4161"}, configs.NSQ.LookupdAddresses)
	assert.True(t, configs.Database.Migrate)
}

func TestInitConfig_LoadsEnvFileLocally(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	// register cleanup for a variable the file will set
	t.Setenv("HARNESS_PUBLISHERS", "")
	require.NoError(t, os.Unsetenv("HARNESS_PUBLISHERS"))

	path := filepath.Join(t.TempDir(), "subscriber.env")
	require.NoError(t, os.WriteFile(path, []byte("HARNESS_PUBLISHERS=9\n"), 0o600))

	configs, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9, configs.Harness.Publishers)
}

func TestInitConfig_InvalidDriver(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("MESSAGING_DRIVER", "kafka")

	configs, err := InitConfig("")
	assert.Error(t, err)
	assert.Nil(t, configs)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestInitConfig_InvalidWorkerCount(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("INGEST_WORKERS", "0")

	_, err := InitConfig("")
	assert.Error(t, err)
}
