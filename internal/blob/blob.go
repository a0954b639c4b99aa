// Package blob re-exports the blob abstractions and selects a driver from
// configuration.
package blob

import (
	"context"
	"fmt"

	"toyinventory/internal/blob/core"
	"toyinventory/internal/infra/blob/fs"
	"toyinventory/internal/infra/blob/memory"
	"toyinventory/internal/infra/blob/s3"
)

type (
	// Driver identifies a blob backend driver.
	Driver = core.Driver
	// PutOptions configures a blob write.
	PutOptions = core.PutOptions
	// Info describes stored blob metadata.
	Info = core.Info
	// Store is the interface for blob storage backends.
	Store = core.Store
)

const (
	DriverFilesystem = core.DriverFilesystem
	DriverS3         = core.DriverS3
	DriverMemory     = core.DriverMemory
)

var (
	ErrNotFound   = core.ErrNotFound
	ErrInvalidKey = core.ErrInvalidKey
)

// Config selects and parameterizes a blob driver.
type Config struct {
	Driver Driver
	// Root is the directory of the fs driver.
	Root string
	S3   s3.Config
}

// Open returns the Store named by cfg.Driver; an empty driver means fs.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", DriverFilesystem:
		return fs.New(cfg.Root)
	case DriverS3:
		return s3.New(ctx, cfg.S3)
	case DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Driver)
	}
}
