package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/models"
	"github.com/dmitrijs2005/ipfsuploader/internal/common"
	"github.com/dmitrijs2005/ipfsuploader/internal/netx"
)

// cidMetadataKey is the user-metadata key (x-amz-meta-cid) under which
// S3-compatible IPFS pinning services such as Filebase report the CID.
const cidMetadataKey = "cid"

type S3Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3Storage uploads content to an S3-compatible bucket that pins objects to
// IPFS and exposes the resulting CID as object metadata.
type S3Storage struct {
	api       s3API
	bucket    string
	objectKey func(path string) string
}

// newS3ClientFromConfig is a seam for tests.
var newS3ClientFromConfig = s3.NewFromConfig

func NewS3Storage(ctx context.Context, opts S3Options) (*S3Storage, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3 storage: bucket is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 storage: %w", err)
	}

	api := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Storage{api: api, bucket: opts.Bucket, objectKey: objectKey}, nil
}

// objectKey keeps the file's base name readable in the bucket listing.
func objectKey(path string) string {
	return fmt.Sprintf("%s-%s", filepath.Base(path), uuid.NewString())
}

func (s *S3Storage) Add(ctx context.Context, file models.IPFSFile) (*models.UploadResult, error) {
	key := s.objectKey(file.Path)

	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Content),
		ContentLength: aws.Int64(int64(len(file.Content))),
	})
	if err != nil {
		return nil, mapS3Error("put object", err)
	}

	head, err := s.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapS3Error("head object", err)
	}

	id := head.Metadata[cidMetadataKey]
	if id == "" {
		return nil, fmt.Errorf("s3 head object %s: no %q metadata: %w", key, cidMetadataKey, common.ErrEmptyResponse)
	}
	return &models.UploadResult{CID: id}, nil
}

func mapS3Error(op string, err error) error {
	if netx.IsUnavailable(err) {
		return fmt.Errorf("s3 %s: %w: %v", op, ErrUnavailable, err)
	}

	var re interface{ HTTPStatusCode() int }
	if errors.As(err, &re) {
		switch re.HTTPStatusCode() {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("s3 %s: %w: %v", op, ErrUnauthorized, err)
		}
	}

	return fmt.Errorf("s3 %s: %w", op, err)
}
