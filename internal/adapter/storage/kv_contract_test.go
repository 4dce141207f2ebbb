package storage

import (
	"context"
	"testing"

	"github.com/poolshark1904/gestao-produtos/internal/port"
)

// testKeyValueRepository runs the behaviour every adapter must share.
func testKeyValueRepository(t *testing.T, repo port.KeyValueRepository, key string) {
	t.Helper()
	ctx := context.Background()

	// Missing key
	value, found, err := repo.GetItem(ctx, key)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if found || value != "" {
		t.Errorf("expected missing key, got %q found=%v", value, found)
	}

	// Write then read
	payload := `[{"id":"1-1000","qrCodeText":"Product ID: 1-1000","qrCode":"u","title":"Ação","description":"","price":9.99,"quantity":5}]`
	if err := repo.SetItem(ctx, key, payload); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	value, found, err = repo.GetItem(ctx, key)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if !found || value != payload {
		t.Errorf("expected %q, got %q found=%v", payload, value, found)
	}

	// Overwrite replaces the whole value
	if err := repo.SetItem(ctx, key, "[]"); err != nil {
		t.Fatalf("SetItem overwrite failed: %v", err)
	}
	value, _, _ = repo.GetItem(ctx, key)
	if value != "[]" {
		t.Errorf("expected overwritten value [], got %q", value)
	}

	// Empty value is stored, not treated as missing
	if err := repo.SetItem(ctx, key, ""); err != nil {
		t.Fatalf("SetItem empty failed: %v", err)
	}
	value, found, _ = repo.GetItem(ctx, key)
	if !found || value != "" {
		t.Errorf("expected stored empty value, got %q found=%v", value, found)
	}
}
