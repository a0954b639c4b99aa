// Package persistence selects the record store backing an inventory.
package persistence

import (
	"context"
	"fmt"
	"strings"

	"toyinventory/internal/blob"
	"toyinventory/internal/config"
	"toyinventory/internal/infra/blob/s3"
	"toyinventory/internal/infra/persistence/postgres"
	"toyinventory/internal/infra/persistence/sqlite"
	"toyinventory/internal/infra/persistence/textfile"
	"toyinventory/pkg/domain"
)

// Open returns the record store named by cfg.Driver and a cleanup function
// releasing it. An empty driver means file.
func Open(ctx context.Context, cfg config.Storage) (domain.RecordStore, func() error, error) {
	noop := func() error { return nil }
	var opts []textfile.Option
	if cfg.Backups {
		opts = append(opts, textfile.WithBackups())
	}
	switch strings.ToLower(cfg.Driver) {
	case "", config.DriverFile:
		store, err := textfile.OpenFile(cfg.Path, opts...)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case config.DriverMemory, config.DriverS3:
		blobs, err := blob.Open(ctx, blob.Config{
			Driver: blob.Driver(strings.ToLower(cfg.Driver)),
			S3: s3.Config{
				Region:          cfg.S3.Region,
				Bucket:          cfg.S3.Bucket,
				Endpoint:        cfg.S3.Endpoint,
				AccessKeyID:     cfg.S3.AccessKeyID,
				SecretAccessKey: cfg.S3.SecretAccessKey,
				SessionToken:    cfg.S3.SessionToken,
				PathStyle:       cfg.S3.PathStyle,
			},
		})
		if err != nil {
			return nil, nil, err
		}
		key := cfg.Key
		if key == "" {
			key = "toys.txt"
		}
		return textfile.New(blobs, key, opts...), noop, nil
	case config.DriverSQLite:
		store, err := sqlite.NewStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.DriverPostgres:
		store, err := postgres.NewStore(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %s", cfg.Driver)
	}
}
