package memo

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const cacheFileName = "memo_cache.gob"

type fileEntry struct {
	Value        []byte
	CreatedAt    time.Time
	LastAccessed time.Time
}

// FileStore keeps entries in memory and persists them to a gob file inside
// Dir after every write. Entries older than maxAge are dropped on read; a
// zero maxAge keeps them forever.
type FileStore struct {
	Dir     string
	fs      afero.Fs
	entries map[string]fileEntry
	mutex   sync.RWMutex
	maxAge  time.Duration
}

func NewFileStore(afs afero.Fs, dir string, maxAge time.Duration) (*FileStore, error) {
	if afs == nil {
		afs = afero.NewOsFs()
	}
	if err := afs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	store := &FileStore{
		Dir:     dir,
		fs:      afs,
		entries: make(map[string]fileEntry),
		maxAge:  maxAge,
	}

	if err := store.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}

	return store, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.Dir, cacheFileName)
}

func (s *FileStore) load() error {
	file, err := s.fs.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&s.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}

	return nil
}

func (s *FileStore) save() error {
	file, err := s.fs.Create(s.path())
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(s.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}

	return nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	s.entries[key] = fileEntry{
		Value:        value,
		CreatedAt:    now,
		LastAccessed: now,
	}

	return s.save()
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, exists := s.entries[key]
	if !exists {
		return nil, false, nil
	}

	if s.isExpired(entry) {
		delete(s.entries, key)
		return nil, false, nil
	}

	entry.LastAccessed = time.Now()
	s.entries[key] = entry

	return entry.Value, true, nil
}

func (s *FileStore) isExpired(entry fileEntry) bool {
	return s.maxAge > 0 && time.Since(entry.CreatedAt) > s.maxAge
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.entries = make(map[string]fileEntry)
	return s.save()
}

func (s *FileStore) Len(_ context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.entries), nil
}
