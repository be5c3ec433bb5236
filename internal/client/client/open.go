package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/config"
	"github.com/dmitrijs2005/ipfsuploader/internal/common"
)

// Open builds the Client described by cfg. When both concerns use the same
// backend kind they share one instance, so a memory backend sees its own
// uploads when publishing.
func Open(ctx context.Context, cfg *config.Config) (Client, error) {
	var (
		kubo *KuboClient
		mem  *MemoryClient
	)
	kuboClient := func() *KuboClient {
		if kubo == nil {
			kubo = NewKuboClient(cfg.KuboAPIAddr, cfg.PublishLifetime)
		}
		return kubo
	}
	memoryClient := func() *MemoryClient {
		if mem == nil {
			mem = NewMemoryClient()
		}
		return mem
	}

	var storage Storage
	switch cfg.StorageBackend {
	case config.BackendKubo:
		storage = kuboClient()
	case config.BackendMemory:
		storage = memoryClient()
	case config.BackendS3:
		s, err := NewS3Storage(ctx, S3Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		storage = s
	default:
		return nil, fmt.Errorf("storage %q: %w", cfg.StorageBackend, common.ErrUnknownBackend)
	}

	var naming Naming
	switch cfg.NamingBackend {
	case config.BackendKubo:
		naming = kuboClient()
	case config.BackendMemory:
		naming = memoryClient()
	default:
		return nil, fmt.Errorf("naming %q: %w", cfg.NamingBackend, common.ErrUnknownBackend)
	}

	return Compose(storage, naming), nil
}
