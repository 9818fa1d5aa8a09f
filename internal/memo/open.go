package memo

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

type Options struct {
	Backend    string
	Dir        string
	RedisAddr  string
	MaxEntries int
	// MaxAge bounds entry lifetime in the file backend.
	MaxAge     time.Duration
	// Fs is the filesystem for the file backend. Nil means the OS.
	Fs         afero.Fs
}

// Open builds the store selected by opts.Backend. The returned close
// function releases any connection the store holds.
func Open(ctx context.Context, opts Options) (Store, func() error, error) {
	noop := func() error { return nil }

	switch opts.Backend {
	case "", BackendMemory:
		s, err := NewMemoryStore(opts.MaxEntries)
		return s, noop, err
	case BackendFile:
		s, err := NewFileStore(opts.Fs, opts.Dir, opts.MaxAge)
		return s, noop, err
	case BackendRedis:
		client, err := DialRedis(ctx, opts.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		return NewRedisStore(client, ""), client.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown memo backend %q", opts.Backend)
	}
}
