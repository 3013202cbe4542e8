package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "cfg.json", `{
			"store_driver": "s3",
			"s3": {"bucket": "volunteers", "region": "ap-south-1", "base_endpoint": "http://127.0.0.1:9000", "prefix": "nss/"},
			"log": {"level": "warn", "format": "json"}
		}`)

		cfg := defaults()
		require.NoError(t, parseFile(cfg, []string{"-config", path}))

		assert.Equal(t, DriverS3, cfg.StoreDriver)
		assert.Equal(t, "volunteers", cfg.S3Bucket)
		assert.Equal(t, "ap-south-1", cfg.S3Region)
		assert.Equal(t, "http://127.0.0.1:9000", cfg.S3BaseEndpoint)
		assert.Equal(t, "nss/", cfg.S3Prefix)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "nss.db", cfg.StoreDSN, "unset keys keep defaults")
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "cfg.yaml", "store_driver: postgres\nstore_dsn: postgres://nss@localhost/nss\nadmin_name: po\n")

		cfg := defaults()
		require.NoError(t, parseFile(cfg, []string{"-c", path}))

		assert.Equal(t, DriverPostgres, cfg.StoreDriver)
		assert.Equal(t, "postgres://nss@localhost/nss", cfg.StoreDSN)
		assert.Equal(t, "po", cfg.AdminName)
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseFile(cfg, []string{"-s", "memory"}))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		err := parseFile(defaults(), []string{"-c", filepath.Join(t.TempDir(), "absent.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{ not json`)
		err := parseFile(defaults(), []string{"-c", path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}
