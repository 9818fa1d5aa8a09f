package memo

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultMaxEntries = 128

// MemoryStore is a bounded in-process store that evicts the least recently
// used entry once full.
type MemoryStore struct {
	cache   *lru.Cache[string, []byte]
	maxSize int
}

func NewMemoryStore(maxEntries int) (*MemoryStore, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	cache, err := lru.New[string, []byte](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &MemoryStore{cache: cache, maxSize: maxEntries}, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.cache.Get(key)
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.cache.Add(key, value)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.cache.Purge()
	return nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	return s.cache.Len(), nil
}

// MaxSize reports the capacity the store was created with.
func (s *MemoryStore) MaxSize() int {
	return s.maxSize
}
