package images

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/debatewise/arbiter/internal/common/uuid"
)

const publicPrefix = "/images/"

// DiskError is a custom error type for image store errors
type DiskError string

// Error implements the error interface
func (e DiskError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        DiskError = "config cannot be nil"
	ErrMissingDirectory DiskError = "directory cannot be empty"
	ErrNilUUIDGenerator DiskError = "UUID generator cannot be nil"
)

// DiskConfig holds configuration for the disk-backed image store
type DiskConfig struct {
	// Directory is where image files are written
	Directory string

	// UUIDGenerator names the stored files
	UUIDGenerator uuid.UUID
}

// Disk stores images as uuid-named files in a local directory. The
// directory is expected to be served statically under /images/.
type Disk struct {
	directory     string
	uuidGenerator uuid.UUID
}

// NewDisk creates a new disk-backed image store, creating the
// directory if it does not exist
func NewDisk(cfg *DiskConfig) (*Disk, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Directory == "" {
		return nil, ErrMissingDirectory
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	return &Disk{
		directory:     cfg.Directory,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Save writes the image under a fresh uuid name, keeping the client
// filename's extension, and returns the /images/<name> path
func (d *Disk) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, errors.New("input and data cannot be empty")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := d.uuidGenerator.NewUUID() + filepath.Ext(input.Filename)

	path := filepath.Join(d.directory, name)
	if err := os.WriteFile(path, input.Data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write image: %w", err)
	}

	return &SaveOutput{
		URL: publicPrefix + name,
	}, nil
}
