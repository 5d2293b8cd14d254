package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"entrega-tracker/internal/logx"
)

// ErrCancelled signals that no photo was acquired. A denied camera
// permission and a user-initiated cancel both map to it; callers must
// treat the two identically (nothing is held).
var ErrCancelled = errors.New("photo capture cancelled")

// PhotoRef is an opaque local reference to a captured image. It lives
// only in the confirmation workflow's transient state until submission
// or abandonment.
type PhotoRef string

// Camera acquires a proof-of-receipt photo.
type Camera interface {
	Capture(ctx context.Context) (PhotoRef, error)
}

// Func adapts a plain function to the Camera interface.
type Func func(ctx context.Context) (PhotoRef, error)

// Capture calls f.
func (f Func) Capture(ctx context.Context) (PhotoRef, error) {
	return f(ctx)
}

// FileCamera resolves a photo from a local image file. An unreadable
// source plays the role of a denied camera permission: the failure is
// logged and reported as cancelled.
type FileCamera struct {
	source string
	logger logx.Logger
}

// NewFileCamera creates a FileCamera reading from the given path.
func NewFileCamera(source string, logger logx.Logger) *FileCamera {
	return &FileCamera{source: source, logger: logger}
}

// Capture verifies the source file and returns its file:// reference.
func (c *FileCamera) Capture(ctx context.Context) (PhotoRef, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.source == "" {
		return "", ErrCancelled
	}

	abs, err := filepath.Abs(c.source)
	if err != nil {
		c.logger.Warn("photo source rejected", logx.String("path", c.source), logx.Any("err", err))
		return "", ErrCancelled
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		c.logger.Warn("photo source unreadable", logx.String("path", abs), logx.Any("err", err))
		return "", ErrCancelled
	}

	return PhotoRef(fmt.Sprintf("file://%s", abs)), nil
}

var _ Camera = (*FileCamera)(nil)
