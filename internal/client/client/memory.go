package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/models"
	"github.com/dmitrijs2005/ipfsuploader/internal/common"
)

// MemoryClient is an in-process storage and naming backend. Content gets a
// real CIDv1 (raw codec, sha2-256), so gateway links for small files match
// what `ipfs add --cid-version=1 --raw-leaves` would produce.
type MemoryClient struct {
	mu       sync.Mutex
	blocks   map[string][]byte
	records  []models.NamingRecord
	bindings map[string]string
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		blocks:   make(map[string][]byte),
		bindings: make(map[string]string),
	}
}

func (m *MemoryClient) Add(ctx context.Context, file models.IPFSFile) (*models.UploadResult, error) {
	sum, err := multihash.Sum(file.Content, multihash.SHA2_256, -1)
	if err != nil {
		return nil, fmt.Errorf("memory add: %w", err)
	}
	id := cid.NewCidV1(cid.Raw, sum).String()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocks[id] = append([]byte(nil), file.Content...)

	return &models.UploadResult{CID: id}, nil
}

// CreateRecord assigns a uuid id and derives a base36 libp2p-key name from it.
func (m *MemoryClient) CreateRecord(ctx context.Context) (*models.NamingRecord, error) {
	id := uuid.New()

	sum, err := multihash.Sum(id[:], multihash.SHA2_256, -1)
	if err != nil {
		return nil, fmt.Errorf("memory create record: %w", err)
	}
	name, err := cid.NewCidV1(cid.Libp2pKey, sum).StringOfBase(multibase.Base36)
	if err != nil {
		return nil, fmt.Errorf("memory create record: %w", err)
	}

	rec := models.NamingRecord{ID: id.String(), Name: name}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)

	return &rec, nil
}

func (m *MemoryClient) ListRecords(ctx context.Context) ([]models.NamingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.NamingRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryClient) PublishRecord(ctx context.Context, id string, hash string) (*models.PublishResult, error) {
	if _, err := cid.Decode(hash); err != nil {
		return nil, fmt.Errorf("memory publish %q: %w", hash, common.ErrInvalidCID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	found := false
	for _, r := range m.records {
		if r.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("memory publish %q: %w", id, ErrRecordNotFound)
	}

	m.bindings[id] = hash
	return &models.PublishResult{Hash: hash}, nil
}

// Block returns the bytes stored under a CID.
func (m *MemoryClient) Block(id string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blocks[id]
	return b, ok
}

// Binding returns the hash a record currently points to.
func (m *MemoryClient) Binding(id string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.bindings[id]
	return h, ok
}
