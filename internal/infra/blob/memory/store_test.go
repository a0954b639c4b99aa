package memory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"toyinventory/internal/blob/core"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()
	if s.Driver() != core.DriverMemory {
		t.Fatalf("unexpected driver %s", s.Driver())
	}
	if _, err := s.Put(ctx, "toys.txt", strings.NewReader("first"), core.PutOptions{ContentType: "text/plain"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	info, err := s.Put(ctx, "toys.txt", strings.NewReader("second"), core.PutOptions{})
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if info.Size != 6 || info.ETag == "" {
		t.Fatalf("unexpected info %+v", info)
	}
	_, rc, err := s.Get(ctx, "toys.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, _ := io.ReadAll(rc)
	if string(b) != "second" {
		t.Fatalf("unexpected body %q", b)
	}
	if _, err := s.Put(ctx, "backups/toys.txt.1", strings.NewReader("first"), core.PutOptions{}); err != nil {
		t.Fatalf("put backup: %v", err)
	}
	list, _ := s.List(ctx, "backups/")
	if len(list) != 1 || list[0].Key != "backups/toys.txt.1" {
		t.Fatalf("unexpected list %+v", list)
	}
	if ok, _ := s.Delete(ctx, "toys.txt"); !ok {
		t.Fatalf("expected delete to report existing blob")
	}
	if ok, _ := s.Delete(ctx, "toys.txt"); ok {
		t.Fatalf("expected second delete to report absent blob")
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := New()
	if _, _, err := s.Get(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Head(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Put(ctx, " ", strings.NewReader(""), core.PutOptions{}); !errors.Is(err, core.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}
