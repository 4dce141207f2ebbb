package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteAdapter_KeyValue(t *testing.T) {
	ctx := context.Background()
	adapter, err := NewSQLiteAdapter(ctx, filepath.Join(t.TempDir(), "inventory.db"))
	if err != nil {
		t.Fatalf("NewSQLiteAdapter failed: %v", err)
	}
	defer adapter.Close()

	testKeyValueRepository(t, adapter, "products")
}

func TestSQLiteAdapter_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	adapter, err := NewSQLiteAdapter(ctx, filepath.Join(t.TempDir(), "inventory.db"))
	if err != nil {
		t.Fatalf("NewSQLiteAdapter failed: %v", err)
	}
	defer adapter.Close()

	if err := adapter.SetItem(ctx, "products", "[1]"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if err := adapter.SetItem(ctx, "other", "[2]"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}

	value, _, _ := adapter.GetItem(ctx, "products")
	if value != "[1]" {
		t.Errorf("expected [1], got %q", value)
	}
}
