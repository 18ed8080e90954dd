package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Client defines the interface for output storage operations.
type Client interface {
	// Prepare makes sure the output location exists.
	Prepare(ctx context.Context) error
	// Put replaces the named object with the reader's content.
	Put(ctx context.Context, name string, reader io.Reader) error
	// Get opens the named object for reading.
	Get(ctx context.Context, name string) (io.ReadCloser, error)
	// Location describes where objects are stored.
	Location() string
}

// ErrInvalidName is returned for object names that would escape the output directory.
var ErrInvalidName = errors.New("invalid object name")

// NewClient creates a directory backed client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if cfg.Dir == "" {
		return nil, errors.New("output directory is not configured")
	}
	return &dirClient{dir: filepath.Clean(cfg.Dir)}, nil
}

type dirClient struct {
	dir string
}

func (c *dirClient) Prepare(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Put writes through a temporary file and renames it over the target, so a
// reader never observes a half written table.
func (c *dirClient) Put(ctx context.Context, name string, reader io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := c.path(name)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, reader); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	// atomic.WriteFile leaves the temp file mode (0600) on new files
	if err := os.Chmod(path, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", name, err)
	}
	return nil
}

func (c *dirClient) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := c.path(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (c *dirClient) Location() string {
	return c.dir
}

func (c *dirClient) path(name string) (string, error) {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(c.dir, name), nil
}
