package config

import (
	"time"

	"github.com/dmitrijs2005/ipfsuploader/internal/common"
)

// Backend names accepted for StorageBackend and NamingBackend.
const (
	BackendKubo   = "kubo"
	BackendS3     = "s3"
	BackendMemory = "memory"
)

// Config holds runtime settings for the uploader.
//
// StorageBackend accepts kubo, s3 or memory; NamingBackend accepts kubo or
// memory. The S3 fields are used only by the s3 storage backend.
type Config struct {
	StorageBackend  string
	NamingBackend   string
	KuboAPIAddr     string
	GatewayURL      string
	PublishLifetime time.Duration

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string

	LogFile string
	Debug   bool
}

// LoadDefaults populates c with defaults suitable for a local Kubo node.
// The S3 credentials are placeholders the operator must replace.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendKubo
	c.NamingBackend = BackendKubo
	c.KuboAPIAddr = "http://127.0.0.1:5001"
	c.GatewayURL = common.DefaultGatewayURL
	c.PublishLifetime = 24 * time.Hour
	c.S3Endpoint = "https://s3.filebase.com"
	c.S3Region = "us-east-1"
	c.S3AccessKey = "<your-access-key>"
	c.S3SecretKey = "<your-secret-key>"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
