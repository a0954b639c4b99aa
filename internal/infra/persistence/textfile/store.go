// Package textfile stores inventory records as a newline separated text
// object in a blob store. The default deployment points it at a local file.
package textfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"toyinventory/internal/blob/core"
	"toyinventory/internal/infra/blob/fs"
	"toyinventory/pkg/domain"
)

var _ domain.RecordStore = (*Store)(nil)

const (
	contentType = "text/plain; charset=utf-8"
	// BackupPrefix is the key prefix previous contents are copied under.
	BackupPrefix = "backups/"
	maxLineBytes = 1 << 20
)

// Store reads and writes the records held in one blob.
type Store struct {
	blobs   core.Store
	key     string
	backups bool
}

// Option configures a Store.
type Option func(*Store)

// WithBackups copies the previous contents to BackupPrefix+key+"."+uuid
// before every overwrite.
func WithBackups() Option {
	return func(s *Store) { s.backups = true }
}

// New returns a Store for key inside blobs.
func New(blobs core.Store, key string, opts ...Option) *Store {
	s := &Store{blobs: blobs, key: key}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenFile returns a Store for a file on the local filesystem. The parent
// directory becomes the blob root and the file name the key.
func OpenFile(filePath string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("open %q: empty path", filePath)
	}
	blobs, err := fs.New(filepath.Dir(filePath))
	if err != nil {
		return nil, err
	}
	return New(blobs, filepath.Base(filePath), opts...), nil
}

// Key returns the blob key the records live under.
func (s *Store) Key() string { return s.key }

// ReadRecords returns every line of the object. A missing object is created
// empty and yields no records.
func (s *Store) ReadRecords(ctx context.Context) ([]string, error) {
	_, rc, err := s.blobs.Get(ctx, s.key)
	if errors.Is(err, core.ErrNotFound) {
		if _, err := s.blobs.Put(ctx, s.key, bytes.NewReader(nil), core.PutOptions{ContentType: contentType}); err != nil {
			return nil, fmt.Errorf("create %s: %w", s.key, err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.key, err)
	}
	defer func() { _ = rc.Close() }()
	return scanLines(rc)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	return lines, nil
}

// WriteRecords replaces the object with one record per line.
func (s *Store) WriteRecords(ctx context.Context, records []string) error {
	if s.backups {
		if err := s.backup(ctx); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	for _, rec := range records {
		buf.WriteString(rec)
		buf.WriteByte('\n')
	}
	if _, err := s.blobs.Put(ctx, s.key, bytes.NewReader(buf.Bytes()), core.PutOptions{ContentType: contentType}); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	return nil
}

func (s *Store) backup(ctx context.Context) error {
	_, rc, err := s.blobs.Get(ctx, s.key)
	if errors.Is(err, core.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("backup %s: %w", s.key, err)
	}
	defer func() { _ = rc.Close() }()
	prev, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("backup %s: %w", s.key, err)
	}
	dst := path.Join(BackupPrefix, s.key+"."+uuid.NewString())
	if _, err := s.blobs.Put(ctx, dst, bytes.NewReader(prev), core.PutOptions{ContentType: contentType}); err != nil {
		return fmt.Errorf("backup %s: %w", s.key, err)
	}
	return nil
}
