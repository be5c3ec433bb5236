package client

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	files "github.com/ipfs/boxo/files"
	shell "github.com/ipfs/go-ipfs-api"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/models"
	"github.com/dmitrijs2005/ipfsuploader/internal/common"
	"github.com/dmitrijs2005/ipfsuploader/internal/netx"
)

// recordKeyPrefix marks the keys CreateRecord generates. Other keys on the
// node, including its identity key "self", are never listed as records.
const recordKeyPrefix = "ipns-"

// KuboClient talks to a Kubo node's RPC API. Naming records are Kubo keys:
// the key name addresses the record on publish, the key id is its IPNS name.
type KuboClient struct {
	sh       *shell.Shell
	lifetime time.Duration
	keyName  func() string
}

// NewKuboClient returns a client for the RPC API at apiAddr, which may be a
// URL ("http://127.0.0.1:5001"), host:port or a multiaddr. lifetime is the
// validity requested for published records; zero leaves Kubo's default.
func NewKuboClient(apiAddr string, lifetime time.Duration) *KuboClient {
	return &KuboClient{
		sh:       shell.NewShell(apiAddr),
		lifetime: lifetime,
		keyName:  func() string { return recordKeyPrefix + uuid.NewString() },
	}
}

// Add uploads the content as a single file named after the base of its path.
func (c *KuboClient) Add(ctx context.Context, file models.IPFSFile) (*models.UploadResult, error) {
	dir := files.NewSliceDirectory([]files.DirEntry{
		files.FileEntry(filepath.Base(file.Path), files.NewBytesFile(file.Content)),
	})

	var out struct {
		Name string
		Hash string
	}
	err := c.sh.Request("add").
		Option("cid-version", 1).
		Option("pin", true).
		Body(files.NewMultiFileReader(dir, true, false)).
		Exec(ctx, &out)
	if err != nil {
		return nil, c.mapError("add", err)
	}
	return &models.UploadResult{CID: out.Hash}, nil
}

// CreateRecord generates a fresh key; the name is chosen here because the
// operation takes no parameters.
func (c *KuboClient) CreateRecord(ctx context.Context) (*models.NamingRecord, error) {
	key, err := c.sh.KeyGen(ctx, c.keyName())
	if err != nil {
		return nil, c.mapError("key/gen", err)
	}
	return &models.NamingRecord{ID: key.Name, Name: key.Id}, nil
}

func (c *KuboClient) ListRecords(ctx context.Context) ([]models.NamingRecord, error) {
	keys, err := c.sh.KeyList(ctx)
	if err != nil {
		return nil, c.mapError("key/list", err)
	}

	records := make([]models.NamingRecord, 0, len(keys))
	for _, k := range keys {
		if k == nil || !strings.HasPrefix(k.Name, recordKeyPrefix) {
			continue
		}
		records = append(records, models.NamingRecord{ID: k.Name, Name: k.Id})
	}
	return records, nil
}

func (c *KuboClient) PublishRecord(ctx context.Context, id string, hash string) (*models.PublishResult, error) {
	resp, err := c.sh.PublishWithDetails(common.IPFSNamespace+hash, id, c.lifetime, 0, false)
	if err != nil {
		return nil, c.mapError("name/publish", err)
	}
	return &models.PublishResult{Hash: strings.TrimPrefix(resp.Value, common.IPFSNamespace)}, nil
}

func (c *KuboClient) mapError(op string, err error) error {
	if netx.IsUnavailable(err) {
		return fmt.Errorf("kubo %s: %w: %v", op, ErrUnavailable, err)
	}

	var se *shell.Error
	if errors.As(err, &se) {
		msg := strings.ToLower(se.Message)
		if strings.Contains(msg, "unauthorized") || strings.Contains(msg, "forbidden") {
			return fmt.Errorf("kubo %s: %w: %v", op, ErrUnauthorized, err)
		}
	}

	return fmt.Errorf("kubo %s: %w", op, err)
}
