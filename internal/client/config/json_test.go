package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("full file", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"storage_backend":  "s3",
			"naming_backend":   "memory",
			"kubo_api_addr":    "10.0.0.1:5001",
			"gateway_url":      "https://dweb.link",
			"publish_lifetime": "48h",
			"s3_endpoint":      "http://minio:9000",
			"s3_region":        "eu-central-1",
			"s3_bucket":        "uploads",
			"s3_access_key":    "ak",
			"s3_secret_key":    "sk",
			"log_file":         "up.log",
			"debug":            true,
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, &Config{
			StorageBackend:  "s3",
			NamingBackend:   "memory",
			KuboAPIAddr:     "10.0.0.1:5001",
			GatewayURL:      "https://dweb.link",
			PublishLifetime: 48 * time.Hour,
			S3Endpoint:      "http://minio:9000",
			S3Region:        "eu-central-1",
			S3Bucket:        "uploads",
			S3AccessKey:     "ak",
			S3SecretKey:     "sk",
			LogFile:         "up.log",
			Debug:           true,
		}, cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"s3_bucket": "only-bucket"})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "only-bucket", cfg.S3Bucket)
		assert.Equal(t, BackendKubo, cfg.StorageBackend)
		assert.Equal(t, 24*time.Hour, cfg.PublishLifetime)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{GatewayURL: "https://keep.me"}
		parseJson(cfg)

		assert.Equal(t, "https://keep.me", cfg.GatewayURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "missing.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
