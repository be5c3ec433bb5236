package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ipfsuploader/internal/flagx"
	"github.com/dmitrijs2005/ipfsuploader/internal/timex"
)

// JsonConfig is the on-disk DTO. Pointer fields distinguish "absent" from
// zero values so a partial file only overrides what it names.
type JsonConfig struct {
	StorageBackend  *string         `json:"storage_backend"`
	NamingBackend   *string         `json:"naming_backend"`
	KuboAPIAddr     *string         `json:"kubo_api_addr"`
	GatewayURL      *string         `json:"gateway_url"`
	PublishLifetime *timex.Duration `json:"publish_lifetime"`
	S3Endpoint      *string         `json:"s3_endpoint"`
	S3Region        *string         `json:"s3_region"`
	S3Bucket        *string         `json:"s3_bucket"`
	S3AccessKey     *string         `json:"s3_access_key"`
	S3SecretKey     *string         `json:"s3_secret_key"`
	LogFile         *string         `json:"log_file"`
	Debug           *bool           `json:"debug"`
}

// parseJson overlays cfg with the JSON file named by -c/-config.
// It panics on read or decode errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.NamingBackend, jc.NamingBackend)
	setString(&cfg.KuboAPIAddr, jc.KuboAPIAddr)
	setString(&cfg.GatewayURL, jc.GatewayURL)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.LogFile, jc.LogFile)

	if jc.PublishLifetime != nil {
		cfg.PublishLifetime = jc.PublishLifetime.Duration
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
