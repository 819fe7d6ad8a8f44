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

type recorder struct {
	mu    sync.Mutex
	calls []string
	ch    chan string
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan string, 16)}
}

func (r *recorder) record(file string) {
	r.mu.Lock()
	r.calls = append(r.calls, file)
	r.mu.Unlock()
	r.ch <- file
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder()

	w, err := New(dir, []string{"apps.json", "shortcuts.json"}, rec.record, nil)
	require.NoError(t, err)
	w.SetDebounce(50 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	path := filepath.Join(dir, "shortcuts.json")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
	}

	select {
	case file := <-rec.ch:
		assert.Equal(t, "shortcuts.json", file)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder()

	w, err := New(dir, []string{"apps.json"}, rec.record, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "apps.json.123.tmp"), []byte(`[]`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cache.db"), []byte(`x`), 0644))

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
	require.NoError(t, w.Close())
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	w, err := New(dir, []string{"apps.json"}, func(string) {}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()
	require.NoError(t, w.Close())
}

func TestNew_RequiresCallback(t *testing.T) {
	_, err := New(t.TempDir(), nil, nil, nil)
	assert.Error(t, err)
}
