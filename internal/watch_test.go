package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcher(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, ".tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: tour\n"), 0o644))

	changed := make(chan struct{}, 4)
	w, err := NewWatcher(path, nil, func(context.Context) {
		changed <- struct{}{}
	})
	require.NoError(t, err)
	w.settle = 10 * time.Millisecond

	require.NoError(t, w.StartWatching(context.Background()))
	assert.Error(t, w.StartWatching(context.Background()), "second start must fail")

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("name: changed\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	require.NoError(t, w.StopWatching())
	assert.NoError(t, w.StopWatching())
}
