package client

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/models"
)

// Storage ingests content and returns its content identifier.
type Storage interface {
	Add(ctx context.Context, file models.IPFSFile) (*models.UploadResult, error)
}

// Naming manages mutable IPNS records.
type Naming interface {
	CreateRecord(ctx context.Context) (*models.NamingRecord, error)
	ListRecords(ctx context.Context) ([]models.NamingRecord, error)
	PublishRecord(ctx context.Context, id string, hash string) (*models.PublishResult, error)
}

type Client interface {
	Storage
	Naming
	Close() error
}

type composite struct {
	Storage
	Naming
}

// Compose pairs independent storage and naming backends into one Client.
func Compose(s Storage, n Naming) Client {
	return &composite{Storage: s, Naming: n}
}

// Close closes each backend that holds resources. A backend serving both
// roles is closed once.
func (c *composite) Close() error {
	var errs []error
	sc, sok := c.Storage.(io.Closer)
	if sok {
		errs = append(errs, sc.Close())
	}
	if nc, ok := c.Naming.(io.Closer); ok && (!sok || any(nc) != any(sc)) {
		errs = append(errs, nc.Close())
	}
	return errors.Join(errs...)
}
