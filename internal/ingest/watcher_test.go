package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	require.Error(t, err)
}

// A burst of rapid writes must come through exactly once each, with the
// debounce timer firing on the event loop rather than a second goroutine.
func TestWatcherDeliversDebouncedBurst(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, errCh, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: time.Millisecond,
	})
	require.NoError(t, err)

	const n = 100
	want := make(map[string]struct{}, n)
	for i := range n {
		path := filepath.Join(root, fmt.Sprintf("label-%03d.jpg", i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		want[path] = struct{}{}
	}
	// a non-photo file in the same burst must never be emitted
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	got := map[string]struct{}{}
	deadline := time.After(5 * time.Second)
	for len(got) < n {
		select {
		case p := <-evCh:
			got[p] = struct{}{}
		case werr := <-errCh:
			t.Fatalf("watch error: %v", werr)
		case <-deadline:
			t.Fatalf("timed out with %d of %d events", len(got), n)
		}
	}
	require.Equal(t, want, got)
}

func TestWatcherInitialScanEmitsExistingPhotos(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "old-label.png")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{root},
		InitialScan: true,
	})
	require.NoError(t, err)

	select {
	case p := <-evCh:
		require.Equal(t, existing, p)
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan emitted nothing")
	}
}
