package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/client"
	"github.com/dmitrijs2005/ipfsuploader/internal/client/models"
	"github.com/dmitrijs2005/ipfsuploader/internal/common"
	"github.com/dmitrijs2005/ipfsuploader/internal/logging"
)

type NamingService interface {
	List(ctx context.Context) ([]models.NamingRecord, error)
	Create(ctx context.Context) (*models.NamingRecord, error)
	// Publish binds record to the uploaded CID. Both arguments are required.
	Publish(ctx context.Context, upload *models.UploadResult, record *models.NamingRecord) (*models.PublishResult, error)
}

type namingService struct {
	naming client.Naming
	logger logging.Logger
}

func NewNamingService(naming client.Naming, logger logging.Logger) NamingService {
	return &namingService{naming: naming, logger: logger}
}

func (s *namingService) List(ctx context.Context) ([]models.NamingRecord, error) {
	records, err := s.naming.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	s.logger.Debug(ctx, "records listed", "count", len(records))
	return records, nil
}

func (s *namingService) Create(ctx context.Context) (*models.NamingRecord, error) {
	rec, err := s.naming.CreateRecord(ctx)
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	if rec == nil || rec.ID == "" {
		return nil, fmt.Errorf("create record: %w", common.ErrEmptyResponse)
	}
	s.logger.Info(ctx, "record created", "id", rec.ID, "name", rec.Name)
	return rec, nil
}

func (s *namingService) Publish(ctx context.Context, upload *models.UploadResult, record *models.NamingRecord) (*models.PublishResult, error) {
	if upload == nil || upload.CID == "" {
		return nil, common.ErrMissingUpload
	}
	if record == nil || record.ID == "" {
		return nil, common.ErrMissingRecord
	}

	res, err := s.naming.PublishRecord(ctx, record.ID, upload.CID)
	if err != nil {
		return nil, fmt.Errorf("publish record %s: %w", record.ID, err)
	}
	if res == nil || res.Hash == "" {
		return nil, fmt.Errorf("publish record %s: %w", record.ID, common.ErrEmptyResponse)
	}

	s.logger.Info(ctx, "record published", "id", record.ID, "hash", res.Hash)
	return res, nil
}
