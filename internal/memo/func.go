package memo

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"sync/atomic"
)

// Func memoizes fn through a Store. Keys are rendered with fmt and values
// are gob-encoded, so V must be gob-compatible.
type Func[K comparable, V any] struct {
	name   string
	store  Store
	fn     func(context.Context, K) (V, error)
	hits   atomic.Int64
	misses atomic.Int64
}

func NewFunc[K comparable, V any](store Store, name string, fn func(context.Context, K) (V, error)) *Func[K, V] {
	return &Func[K, V]{name: name, store: store, fn: fn}
}

func (f *Func[K, V]) key(k K) string {
	return fmt.Sprintf("%s(%v)", f.name, k)
}

// Call returns the cached value for k, computing and storing it on a miss.
func (f *Func[K, V]) Call(ctx context.Context, k K) (V, error) {
	var zero V
	key := f.key(k)

	raw, ok, err := f.store.Get(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("memo %s: %w", f.name, err)
	}
	if ok {
		var v V
		if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&v); err == nil {
			f.hits.Add(1)
			return v, nil
		}
	}

	f.misses.Add(1)
	v, err := f.fn(ctx, k)
	if err != nil {
		return zero, err
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return zero, fmt.Errorf("memo %s: encode: %w", f.name, err)
	}
	if err := f.store.Set(ctx, key, buf.Bytes()); err != nil {
		return zero, fmt.Errorf("memo %s: %w", f.name, err)
	}
	return v, nil
}

// Info summarizes cache usage: hits, misses, capacity and current size.
type Info struct {
	Hits     int64 `json:"hits" yaml:"hits"`
	Misses   int64 `json:"misses" yaml:"misses"`
	MaxSize  int   `json:"maxsize" yaml:"maxsize"`
	CurrSize int   `json:"currsize" yaml:"currsize"`
}

func (i Info) String() string {
	return fmt.Sprintf("CacheInfo(hits=%d, misses=%d, maxsize=%d, currsize=%d)", i.Hits, i.Misses, i.MaxSize, i.CurrSize)
}

func (f *Func[K, V]) Info(ctx context.Context) Info {
	info := Info{Hits: f.hits.Load(), Misses: f.misses.Load()}
	if n, err := f.store.Len(ctx); err == nil {
		info.CurrSize = n
	}
	if m, ok := f.store.(interface{ MaxSize() int }); ok {
		info.MaxSize = m.MaxSize()
	}
	return info
}

// Reset clears the counters and the underlying store.
func (f *Func[K, V]) Reset(ctx context.Context) error {
	f.hits.Store(0)
	f.misses.Store(0)
	return f.store.Clear(ctx)
}
