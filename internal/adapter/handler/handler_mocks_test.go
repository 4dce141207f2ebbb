package handler

import (
	"context"
	"errors"
	"sync"

	"github.com/poolshark1904/gestao-produtos/internal/core/service"
)

type memKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) GetItem(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) SetItem(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

type stubQR struct {
	fail bool
}

func (s stubQR) GenerateURL(ctx context.Context, text string) (string, error) {
	if s.fail {
		return "", errors.New("qr service responded 500 Internal Server Error")
	}
	return "https://qr.test/" + text, nil
}

func newTestStore(kv *memKV, qr stubQR) *service.ProductStore {
	return service.NewProductStore(kv, qr)
}
