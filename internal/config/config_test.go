package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file selecting server mode with redis
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "mode: server\nhttp-port: \"8080\"\nsession-ttl: 1h\nredis:\n  host: redis\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: file values win and the rest are defaulted
		assert.Equal(t, ModeServer, conf.Mode)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, time.Hour, conf.SessionTTL)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Panics when the file is missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yml")

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	t.Run("Empty host means no redis", func(t *testing.T) {
		redis := Redis{Port: "6379"}

		assert.Empty(t, redis.GetRedisAddr())
	})
}
