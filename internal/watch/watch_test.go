package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type collector struct {
	mu   sync.Mutex
	seen []string
}

func (c *collector) handle(content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, content)
	return nil
}

func (c *collector) last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.seen) == 0 {
		return ""
	}
	return c.seen[len(c.seen)-1]
}

func TestWatcherFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))

	w, err := New(path, 20*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	c := &collector{}
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, c.handle) }()

	require.Eventually(t, func() bool { return c.last() == "first" }, 2*time.Second, 10*time.Millisecond)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))

	require.Eventually(t, func() bool { return c.last() == "second" }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.NotContains(t, c.seen, "noise")
}

func TestWatcherMissingFile(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing.txt"), 0, nil)
	require.NoError(t, err)

	err = w.Run(context.Background(), func(string) error { return nil })
	assert.Error(t, err)
}
