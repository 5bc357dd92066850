package commitstore

import (
	"context"
	"path/filepath"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "commits"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	var root [32]byte
	copy(root[:], []byte("0123456789abcdef0123456789abcdef"))

	if err := store.Put(ctx, "challenge-1", root); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "challenge-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != root {
		t.Errorf("Get = %x, want %x", got, root)
	}
}

func TestGetMissingKeyReturnsErrNotFound(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "commits"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := store.Get(context.Background(), "nonexistent"); err != ErrNotFound {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestLookupAdaptsGetForMissingAndPresentKeys(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "commits"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	var root [32]byte
	copy(root[:], []byte("abcdefghijklmnopqrstuvwxyz012345"))
	if err := store.Put(ctx, "present", root); err != nil {
		t.Fatalf("Put: %v", err)
	}

	lookup := store.Lookup(ctx)
	if got, ok := lookup("present"); !ok || got != root {
		t.Errorf("Lookup(present) = %x, %v, want %x, true", got, ok, root)
	}
	if _, ok := lookup("absent"); ok {
		t.Error("Lookup(absent) reported ok=true")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "commits")
	ctx := context.Background()
	var root [32]byte
	copy(root[:], []byte("persisted-commitment-root-value1"))

	store, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Put(ctx, "durable", root); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "durable")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got != root {
		t.Errorf("Get after reopen = %x, want %x", got, root)
	}
}
