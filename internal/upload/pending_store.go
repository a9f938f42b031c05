package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"sharehub/internal/model"
)

const pendingKeyPrefix = "pending_pictures:"

// KeyValue is the cache surface the store needs. *cache.Client satisfies it.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// PendingStoreInterface parks pictures whose upload failed after their post was created.
type PendingStoreInterface interface {
	Save(ctx context.Context, postID int64, files []model.UploadFile) error
	Load(ctx context.Context, postID int64) ([]model.UploadFile, error)
	Has(ctx context.Context, postID int64) bool
	Discard(ctx context.Context, postID int64) error
}

// PendingStore keeps pending pictures in Redis until they are re-sent or expire.
type PendingStore struct {
	kv  KeyValue
	ttl time.Duration
}

var _ PendingStoreInterface = (*PendingStore)(nil)

// NewPendingStore creates a store whose entries live for ttl.
func NewPendingStore(kv KeyValue, ttl time.Duration) *PendingStore {
	return &PendingStore{kv: kv, ttl: ttl}
}

func pendingKey(postID int64) string {
	return pendingKeyPrefix + strconv.FormatInt(postID, 10)
}

// Save replaces the pictures parked for postID.
func (s *PendingStore) Save(ctx context.Context, postID int64, files []model.UploadFile) error {
	payload, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("marshal pending pictures: %w", err)
	}
	return s.kv.Set(ctx, pendingKey(postID), payload, s.ttl)
}

// Load returns the pictures parked for postID, or nil when none are.
func (s *PendingStore) Load(ctx context.Context, postID int64) ([]model.UploadFile, error) {
	data, err := s.kv.Get(ctx, pendingKey(postID))
	if err != nil || data == nil {
		return nil, nil
	}

	var files []model.UploadFile
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("unmarshal pending pictures: %w", err)
	}
	return files, nil
}

// Has reports whether pictures are parked for postID.
func (s *PendingStore) Has(ctx context.Context, postID int64) bool {
	data, err := s.kv.Get(ctx, pendingKey(postID))
	return err == nil && data != nil
}

// Discard drops the pictures parked for postID.
func (s *PendingStore) Discard(ctx context.Context, postID int64) error {
	return s.kv.Delete(ctx, pendingKey(postID))
}
