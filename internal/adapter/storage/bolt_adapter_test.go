package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestBoltAdapter_KeyValue(t *testing.T) {
	adapter, err := NewBoltAdapter(filepath.Join(t.TempDir(), "data", "inventory.bolt"))
	if err != nil {
		t.Fatalf("NewBoltAdapter failed: %v", err)
	}
	defer adapter.Close()

	testKeyValueRepository(t, adapter, "products")
}

func TestBoltAdapter_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.bolt")
	ctx := context.Background()

	adapter, err := NewBoltAdapter(path)
	if err != nil {
		t.Fatalf("NewBoltAdapter failed: %v", err)
	}
	if err := adapter.SetItem(ctx, "products", `[{"id":"1-1000"}]`); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if err := adapter.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewBoltAdapter(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, found, err := reopened.GetItem(ctx, "products")
	if err != nil || !found || value != `[{"id":"1-1000"}]` {
		t.Errorf("expected persisted value, got %q found=%v err=%v", value, found, err)
	}
}

func TestBoltAdapter_CancelledContext(t *testing.T) {
	adapter, err := NewBoltAdapter(filepath.Join(t.TempDir(), "inventory.bolt"))
	if err != nil {
		t.Fatalf("NewBoltAdapter failed: %v", err)
	}
	defer adapter.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := adapter.SetItem(ctx, "products", "[]"); err == nil {
		t.Error("expected error on cancelled context")
	}
}
