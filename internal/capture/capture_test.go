package capture_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"entrega-tracker/internal/capture"
	"entrega-tracker/internal/logx"
)

func TestFileCamera_Capture(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	photo := filepath.Join(dir, "handoff.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("jpeg"), 0o600))

	cam := capture.NewFileCamera(photo, logx.Nop())
	ref, err := cam.Capture(context.Background())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(ref), "file://"))
	require.True(t, strings.HasSuffix(string(ref), "handoff.jpg"))
}

func TestFileCamera_MissingSourceIsCancelled(t *testing.T) {
	t.Parallel()

	cam := capture.NewFileCamera(filepath.Join(t.TempDir(), "absent.jpg"), logx.Nop())
	_, err := cam.Capture(context.Background())
	require.ErrorIs(t, err, capture.ErrCancelled)
}

func TestFileCamera_EmptySourceIsCancelled(t *testing.T) {
	t.Parallel()

	cam := capture.NewFileCamera("", logx.Nop())
	_, err := cam.Capture(context.Background())
	require.ErrorIs(t, err, capture.ErrCancelled)
}

func TestFileCamera_DirectoryIsCancelled(t *testing.T) {
	t.Parallel()

	cam := capture.NewFileCamera(t.TempDir(), logx.Nop())
	_, err := cam.Capture(context.Background())
	require.ErrorIs(t, err, capture.ErrCancelled)
}

func TestFileCamera_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cam := capture.NewFileCamera("whatever.jpg", logx.Nop())
	_, err := cam.Capture(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
