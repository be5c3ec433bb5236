package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/ipfsuploader/internal/flagx"
)

var (
	valueFlags = []string{"storage", "naming", "a", "g", "l", "log"}
	boolFlags  = []string{"debug"}
)

// parseFlags overlays cfg with command-line flags. Only the flags listed in
// valueFlags and boolFlags are considered (see flagx.FilterArgs), so -c and
// anything else on the command line are left alone.
//
// It panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], valueFlags, boolFlags...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "storage backend: kubo, s3, memory")
	fs.StringVar(&cfg.NamingBackend, "naming", cfg.NamingBackend, "naming backend: kubo, memory")
	fs.StringVar(&cfg.KuboAPIAddr, "a", cfg.KuboAPIAddr, "Kubo RPC API address")
	fs.StringVar(&cfg.GatewayURL, "g", cfg.GatewayURL, "gateway base URL used in summary links")
	fs.DurationVar(&cfg.PublishLifetime, "l", cfg.PublishLifetime, "lifetime of published IPNS records")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "diagnostic log file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
