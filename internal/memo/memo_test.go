package memo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := NewMemoryStore(2)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	require.NoError(t, store.Set(ctx, "b", []byte("2")))

	v, ok, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	// "b" is now least recently used
	require.NoError(t, store.Set(ctx, "c", []byte("3")))
	_, ok, _ = store.Get(ctx, "b")
	assert.False(t, ok)

	n, _ := store.Len(ctx)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, store.MaxSize())

	require.NoError(t, store.Clear(ctx))
	n, _ = store.Len(ctx)
	assert.Zero(t, n)
}

func TestFileStore(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "memo-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	ctx := context.Background()
	dir := filepath.Join(tmpDir, "cache")
	store, err := NewFileStore(afero.NewOsFs(), dir, 0)
	require.NoError(t, err)

	t.Run("SaveAndLoad", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "fib(10)", []byte("55")))

		reopened, err := NewFileStore(afero.NewOsFs(), dir, 0)
		require.NoError(t, err)

		v, ok, err := reopened.Get(ctx, "fib(10)")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("55"), v)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "nonexistent")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Expired", func(t *testing.T) {
		short, err := NewFileStore(afero.NewOsFs(), filepath.Join(tmpDir, "short"), time.Nanosecond)
		require.NoError(t, err)
		require.NoError(t, short.Set(ctx, "old", []byte("x")))
		time.Sleep(time.Millisecond)

		_, ok, err := short.Get(ctx, "old")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v")))
		require.NoError(t, store.Clear(ctx))

		n, err := store.Len(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestFuncMemoizes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := NewMemoryStore(128)
	require.NoError(t, err)

	calls := 0
	square := NewFunc(store, "square", func(_ context.Context, n int) (int, error) {
		calls++
		return n * n, nil
	})

	v, err := square.Call(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, v)

	v, err = square.Call(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, v)
	assert.Equal(t, 1, calls)

	info := square.Info(ctx)
	assert.Equal(t, "CacheInfo(hits=1, misses=1, maxsize=128, currsize=1)", info.String())

	require.NoError(t, square.Reset(ctx))
	assert.Equal(t, Info{MaxSize: 128}, square.Info(ctx))
}

func TestFuncRecursiveFibonacci(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := NewMemoryStore(0)
	require.NoError(t, err)

	var fib *Func[int, int]
	fib = NewFunc(store, "fib", func(ctx context.Context, n int) (int, error) {
		if n < 2 {
			return n, nil
		}
		a, err := fib.Call(ctx, n-1)
		if err != nil {
			return 0, err
		}
		b, err := fib.Call(ctx, n-2)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	})

	v, err := fib.Call(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 55, v)
	assert.Equal(t, int64(11), fib.Info(ctx).Misses)
}

func TestOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, closeFn, err := Open(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, closeFn())

	s, _, err = Open(ctx, Options{Backend: BackendFile, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	memFs := afero.NewMemMapFs()
	s, _, err = Open(ctx, Options{Backend: BackendFile, Dir: "/cache", Fs: memFs, MaxAge: time.Hour})
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "fib(3)", []byte("2")))
	exists, err := afero.Exists(memFs, "/cache/"+cacheFileName)
	require.NoError(t, err)
	assert.True(t, exists)

	_, _, err = Open(ctx, Options{Backend: "etcd"})
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TOUR_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TOUR_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	client, err := DialRedis(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	store := NewRedisStore(client, "tour-test")
	require.NoError(t, store.Clear(ctx))

	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	v, ok, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
