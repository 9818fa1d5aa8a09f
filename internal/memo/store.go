// Package memo provides key/value stores used to memoize function results.
package memo

import "context"

// Store is a byte-oriented key/value table. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
	Len(ctx context.Context) (int, error)
}
