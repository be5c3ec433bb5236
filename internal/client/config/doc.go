// Package config loads runtime configuration for the uploader.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-storage string   storage backend: kubo, s3, memory
//	-naming string    naming backend: kubo, memory
//	-a string         Kubo RPC API address
//	-g string         public gateway base URL for summary links
//	-l duration       lifetime requested for published IPNS records
//	-log string       diagnostic log file (JSON lines)
//	-debug            enable debug-level logging
//
// # JSON schema
//
// Durations may be strings like "24h" or integer nanoseconds:
//
//	{
//	  "storage_backend": "s3",
//	  "naming_backend": "kubo",
//	  "kubo_api_addr": "http://127.0.0.1:5001",
//	  "gateway_url": "https://ipfs.io",
//	  "publish_lifetime": "24h",
//	  "s3_endpoint": "https://s3.filebase.com",
//	  "s3_region": "us-east-1",
//	  "s3_bucket": "uploads",
//	  "s3_access_key": "...",
//	  "s3_secret_key": "...",
//	  "log_file": "uploader.log",
//	  "debug": false
//	}
//
// S3 credentials are accepted from JSON only, so they never show up in the
// process list. Environment variables are not read.
package config
