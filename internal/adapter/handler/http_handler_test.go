package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/poolshark1904/gestao-produtos/internal/core/domain"
	"github.com/poolshark1904/gestao-produtos/internal/core/service"
)

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, ProductHTTPResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp ProductHTTPResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, resp
}

func TestHTTP_ProductLifecycle(t *testing.T) {
	kv := newMemKV()
	h := NewHTTPHandler(newTestStore(kv, stubQR{}), nil).Routes()

	// Create
	rec, resp := doJSON(t, h, http.MethodPost, "/api/products", CreateProductHTTPRequest{
		Title: "Widget", Description: "d", Price: "9.99", Quantity: "5",
	})
	if rec.Code != http.StatusCreated || !resp.Success {
		t.Fatalf("create failed: %d %s", rec.Code, resp.Message)
	}
	created := *resp.Product
	if !strings.HasPrefix(created.ID, "1-") || created.Price != 9.99 || created.Quantity != 5 {
		t.Errorf("unexpected product %#v", created)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected request id header")
	}

	// List
	rec, resp = doJSON(t, h, http.MethodGet, "/api/products", nil)
	if rec.Code != http.StatusOK || resp.Products == nil || len(*resp.Products) != 1 {
		t.Fatalf("list failed: %d %#v", rec.Code, resp.Products)
	}

	// Get
	rec, resp = doJSON(t, h, http.MethodGet, "/api/products/"+created.ID, nil)
	if rec.Code != http.StatusOK || resp.Product.Title != "Widget" {
		t.Fatalf("get failed: %d %#v", rec.Code, resp.Product)
	}

	// Update
	edited := created
	edited.Title = "Gadget"
	rec, resp = doJSON(t, h, http.MethodPut, "/api/products/"+created.ID, edited)
	if rec.Code != http.StatusOK || (*resp.Products)[0].Title != "Gadget" {
		t.Fatalf("update failed: %d %s", rec.Code, resp.Message)
	}
	if (*resp.Products)[0].QRCode != created.QRCode {
		t.Error("qr code changed on edit")
	}

	// Scan
	rec, resp = doJSON(t, h, http.MethodPost, "/api/scan", ScanHTTPRequest{Payload: created.QRCodeText})
	if rec.Code != http.StatusOK || resp.Matched == nil || !*resp.Matched {
		t.Fatalf("scan failed: %d %#v", rec.Code, resp)
	}
	if resp.Message != "Product found: Gadget. Do you want to edit it?" {
		t.Errorf("unexpected prompt %q", resp.Message)
	}

	// Delete twice
	for i := 0; i < 2; i++ {
		rec, resp = doJSON(t, h, http.MethodDelete, "/api/products/"+created.ID, nil)
		if rec.Code != http.StatusOK || resp.Products == nil || len(*resp.Products) != 0 {
			t.Fatalf("delete %d failed: %d %#v", i, rec.Code, resp.Products)
		}
	}
	if kv.data[service.ProductsKey] != "[]" {
		t.Errorf("expected persisted empty list, got %q", kv.data[service.ProductsKey])
	}

	// Get after delete
	rec, _ = doJSON(t, h, http.MethodGet, "/api/products/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHTTP_ListFilter(t *testing.T) {
	kv := newMemKV()
	kv.data[service.ProductsKey] = `[{"id":"1-1000","title":"A"},{"id":"2-2000","title":"B"}]`
	h := NewHTTPHandler(newTestStore(kv, stubQR{}), nil).Routes()

	_, resp := doJSON(t, h, http.MethodGet, "/api/products?id=2-2000", nil)
	if resp.Products == nil || len(*resp.Products) != 1 || (*resp.Products)[0].Title != "B" {
		t.Errorf("expected only B, got %#v", resp.Products)
	}
}

func TestHTTP_CreateInvalidPrice(t *testing.T) {
	kv := newMemKV()
	h := NewHTTPHandler(newTestStore(kv, stubQR{}), nil).Routes()

	rec, resp := doJSON(t, h, http.MethodPost, "/api/products", CreateProductHTTPRequest{
		Title: "Widget", Price: "nine", Quantity: "5",
	})
	if rec.Code != http.StatusBadRequest || resp.Success {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.HasPrefix(resp.Message, "Error creating product: ") {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if _, ok := kv.data[service.ProductsKey]; ok {
		t.Error("nothing should be persisted")
	}
}

func TestHTTP_CreateQRFailure(t *testing.T) {
	kv := newMemKV()
	h := NewHTTPHandler(newTestStore(kv, stubQR{fail: true}), nil).Routes()

	rec, resp := doJSON(t, h, http.MethodPost, "/api/products", CreateProductHTTPRequest{
		Title: "Widget", Price: "1", Quantity: "1",
	})
	if rec.Code != http.StatusBadGateway || resp.Success {
		t.Errorf("expected 502, got %d", rec.Code)
	}
	if _, ok := kv.data[service.ProductsKey]; ok {
		t.Error("nothing should be persisted")
	}
}

func TestHTTP_CorruptStorage(t *testing.T) {
	kv := newMemKV()
	kv.data[service.ProductsKey] = "not json"
	h := NewHTTPHandler(newTestStore(kv, stubQR{}), nil).Routes()

	rec, resp := doJSON(t, h, http.MethodGet, "/api/products", nil)
	if rec.Code != http.StatusInternalServerError || resp.Success {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestHTTP_ScanUnknown(t *testing.T) {
	h := NewHTTPHandler(newTestStore(newMemKV(), stubQR{}), nil).Routes()

	_, resp := doJSON(t, h, http.MethodPost, "/api/scan", ScanHTTPRequest{Payload: "hello"})
	if resp.Matched == nil || *resp.Matched || resp.Product != nil {
		t.Errorf("expected no match, got %#v", resp)
	}
}

func TestHTTP_InvalidBody(t *testing.T) {
	h := NewHTTPHandler(newTestStore(newMemKV(), stubQR{}), nil).Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHTTP_UpdateUsesPathID(t *testing.T) {
	kv := newMemKV()
	kv.data[service.ProductsKey] = `[{"id":"1-1000","title":"A","price":1,"quantity":1}]`
	h := NewHTTPHandler(newTestStore(kv, stubQR{}), nil).Routes()

	rec, resp := doJSON(t, h, http.MethodPut, "/api/products/1-1000", domain.Product{ID: "other", Title: "B", Price: 1, Quantity: 1})
	if rec.Code != http.StatusOK || (*resp.Products)[0].Title != "B" {
		t.Errorf("expected title B, got %d %#v", rec.Code, resp.Products)
	}
}

func TestHealthCheck(t *testing.T) {
	h := NewHTTPHandler(newTestStore(newMemKV(), stubQR{}), nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
}

func TestHTTP_CreateConcurrent(t *testing.T) {
	totalRequests := 40

	kv := newMemKV()
	h := NewHTTPHandler(newTestStore(kv, stubQR{}), nil).Routes()

	var failCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := strings.NewReader(`{"title":"item","price":"1.50","quantity":"2"}`)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", body))
			if rec.Code != http.StatusCreated {
				failCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if failCount.Load() != 0 {
		t.Fatalf("expected no failed creates, got %d", failCount.Load())
	}

	var stored domain.ProductList
	if err := json.Unmarshal([]byte(kv.data[service.ProductsKey]), &stored); err != nil {
		t.Fatalf("stored value is not a product list: %v", err)
	}
	if len(stored) != totalRequests {
		t.Fatalf("expected %d persisted products, got %d", totalRequests, len(stored))
	}

	ids := make(map[string]bool)
	for _, p := range stored {
		ids[p.ID] = true
	}
	if len(ids) != totalRequests {
		t.Errorf("expected %d distinct ids, got %d", totalRequests, len(ids))
	}
}
