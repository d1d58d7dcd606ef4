package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_RecognizedFileChange_InvokesHandler(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan string, 1)

	w, err := New([]string{dir}, 50*time.Millisecond, func(path string) {
		select {
		case changed <- path:
		default:
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer func() {
		_ = w.Stop()
	}()

	path := filepath.Join(dir, "frob.f")
	require.NoError(t, os.WriteFile(path, []byte("      END\n"), 0o644))

	select {
	case got := <-changed:
		require.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not invoked for a recognized source file")
	}
}

func TestWatcher_UnrecognizedFile_Ignored(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan string, 1)

	w, err := New([]string{dir}, 20*time.Millisecond, func(path string) {
		changed <- path
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer func() {
		_ = w.Stop()
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi\n"), 0o644))

	select {
	case got := <-changed:
		t.Fatalf("handler invoked for unrecognized file %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory_StartFails(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "absent")}, time.Second, func(string) {})
	require.NoError(t, err)
	defer func() {
		_ = w.Stop()
	}()

	require.Error(t, w.Start(context.Background()))
}
