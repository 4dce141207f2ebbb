package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/poolshark1904/gestao-produtos/internal/core/domain"
	"github.com/poolshark1904/gestao-produtos/internal/core/service"
)

type HTTPHandler struct {
	store    *service.ProductStore
	resolver service.ScanResolver
	logger   *zap.Logger
}

// CreateProductHTTPRequest carries price and quantity as typed by the user.
type CreateProductHTTPRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
}

type ScanHTTPRequest struct {
	Payload string `json:"payload"`
}

type ProductHTTPResponse struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message"`
	Product  *domain.Product     `json:"product,omitempty"`
	Products *domain.ProductList `json:"products,omitempty"`
	Matched  *bool               `json:"matched,omitempty"`
}

func NewHTTPHandler(store *service.ProductStore, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{
		store:    store,
		resolver: service.NewScanResolver(),
		logger:   logger,
	}
}

func (h *HTTPHandler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.requestLogger)

	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.UpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", h.DeleteProduct).Methods(http.MethodDelete)
	api.HandleFunc("/scan", h.Scan).Methods(http.MethodPost)

	return r
}

// ListProducts reloads from storage, then lists everything or only ?id=.
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.Load(r.Context())
	if err != nil {
		h.writeError(w, "Error loading products", err)
		return
	}

	writeJSON(w, http.StatusOK, ProductHTTPResponse{
		Success:  true,
		Message:  "ok",
		Products: listOf(products.Filter(r.URL.Query().Get("id"))),
	})
}

func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.Load(r.Context())
	if err != nil {
		h.writeError(w, "Error loading products", err)
		return
	}

	product, ok := products.Find(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, ProductHTTPResponse{
			Success: false,
			Message: "product not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ProductHTTPResponse{
		Success: true,
		Message: "ok",
		Product: &product,
	})
}

func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ProductHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	draft, err := domain.ParseDraft(req.Title, req.Description, req.Price, req.Quantity)
	if err != nil {
		h.writeError(w, "Error creating product", err)
		return
	}

	if _, err := h.store.Load(r.Context()); err != nil {
		h.writeError(w, "Error creating product", err)
		return
	}

	product, err := h.store.Create(r.Context(), draft)
	if err != nil {
		h.writeError(w, "Error creating product", err)
		return
	}

	writeJSON(w, http.StatusCreated, ProductHTTPResponse{
		Success: true,
		Message: "Product created successfully!",
		Product: &product,
	})
}

// UpdateProduct replaces the whole record; the path id wins over the body id.
func (h *HTTPHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var edited domain.Product
	if err := json.NewDecoder(r.Body).Decode(&edited); err != nil {
		writeJSON(w, http.StatusBadRequest, ProductHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}
	edited.ID = mux.Vars(r)["id"]

	if _, err := h.store.Load(r.Context()); err != nil {
		h.writeError(w, "Error editing product", err)
		return
	}

	products, err := h.store.Update(r.Context(), edited)
	if err != nil {
		h.writeError(w, "Error editing product", err)
		return
	}

	writeJSON(w, http.StatusOK, ProductHTTPResponse{
		Success:  true,
		Message:  "Product edited successfully!",
		Products: listOf(products),
	})
}

func (h *HTTPHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Load(r.Context()); err != nil {
		h.writeError(w, "Error deleting product", err)
		return
	}

	products, err := h.store.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "Error deleting product", err)
		return
	}

	writeJSON(w, http.StatusOK, ProductHTTPResponse{
		Success:  true,
		Message:  "Product deleted successfully!",
		Products: listOf(products),
	})
}

func (h *HTTPHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req ScanHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ProductHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	products, err := h.store.Load(r.Context())
	if err != nil {
		h.writeError(w, "Error loading products", err)
		return
	}

	res := h.resolver.Resolve(req.Payload, products)
	resp := ProductHTTPResponse{
		Success: true,
		Message: res.Prompt(),
		Matched: &res.Matched,
	}
	if res.Matched {
		resp.Product = &res.Product
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, prefix string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrQRGeneration):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error(prefix, zap.Error(err))
	}

	writeJSON(w, status, ProductHTTPResponse{
		Success: false,
		Message: prefix + ": " + err.Error(),
	})
}

func (h *HTTPHandler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		h.logger.Debug("http request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// listOf keeps empty lists encoded as [] rather than dropped.
func listOf(products domain.ProductList) *domain.ProductList {
	if products == nil {
		products = domain.ProductList{}
	}
	return &products
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
