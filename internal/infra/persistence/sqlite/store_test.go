package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStoreRoundTripsRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "toys.db")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	got, err := store.ReadRecords(ctx)
	if err != nil {
		t.Fatalf("read empty: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %v", got)
	}

	records := []string{
		"0123456789;Lion King Figure;Disney;19.99;5;6;A",
		"7000000003;Catan;Kosmos;49.95;2;10;3-4;Klaus Teuber",
	}
	if err := store.WriteRecords(ctx, records); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.WriteRecords(ctx, records[1:]); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.ReadRecords(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || got[0] != records[1] {
		t.Fatalf("expected overwrite to replace rows, got %v", got)
	}
	if store.Path() != path || store.DB() == nil {
		t.Fatalf("unexpected accessors")
	}
}

func TestStoreReopenKeepsOrder(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "toys.db")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	records := []string{"c", "a", "b"}
	if err := store.WriteRecords(ctx, records); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = store.Close()

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	got, err := reopened.ReadRecords(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 3 || got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestStoreCanceledContext(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "toys.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer func() { _ = store.Close() }()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.WriteRecords(ctx, []string{"x"}); err == nil {
		t.Fatalf("expected canceled write to fail")
	}
}
