// Package services holds the uploader's use cases on top of the client
// adapters: reading and uploading a file, and managing IPNS records.
package services

import (
	"context"
	"fmt"

	"github.com/ipfs/go-cid"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/client"
	"github.com/dmitrijs2005/ipfsuploader/internal/client/models"
	"github.com/dmitrijs2005/ipfsuploader/internal/common"
	"github.com/dmitrijs2005/ipfsuploader/internal/filex"
	"github.com/dmitrijs2005/ipfsuploader/internal/logging"
)

type UploadService interface {
	// Load reads the whole file at path into memory.
	Load(path string) (models.IPFSFile, error)
	// Upload submits the file to the storage service.
	Upload(ctx context.Context, file models.IPFSFile) (*models.UploadResult, error)
}

type uploadService struct {
	storage client.Storage
	logger  logging.Logger
}

func NewUploadService(storage client.Storage, logger logging.Logger) UploadService {
	return &uploadService{storage: storage, logger: logger}
}

func (s *uploadService) Load(path string) (models.IPFSFile, error) {
	content, err := filex.ReadAll(path)
	if err != nil {
		return models.IPFSFile{}, err
	}
	return models.IPFSFile{Path: path, Content: content}, nil
}

// Upload returns whatever identifier the service reports. Only an empty
// answer is rejected; identifiers go-cid cannot parse are logged, not refused.
func (s *uploadService) Upload(ctx context.Context, file models.IPFSFile) (*models.UploadResult, error) {
	s.logger.Debug(ctx, "upload started", "path", file.Path, "size", len(file.Content))

	res, err := s.storage.Add(ctx, file)
	if err != nil {
		s.logger.Error(ctx, "upload failed", "path", file.Path, "error", err)
		return nil, fmt.Errorf("upload %s: %w", file.Path, err)
	}
	if res == nil || res.CID == "" {
		return nil, fmt.Errorf("upload %s: %w", file.Path, common.ErrEmptyResponse)
	}

	if parsed, err := cid.Decode(res.CID); err == nil {
		s.logger.Info(ctx, "upload finished", "path", file.Path, "cid", res.CID,
			"cid_version", parsed.Version(), "codec", parsed.Prefix().Codec)
	} else {
		s.logger.Warn(ctx, "storage returned an unparseable cid", "path", file.Path, "cid", res.CID, "error", err)
	}

	return res, nil
}
