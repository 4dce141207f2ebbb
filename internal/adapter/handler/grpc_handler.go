package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/poolshark1904/gestao-produtos/internal/core/domain"
	"github.com/poolshark1904/gestao-produtos/internal/core/service"
)

var _ ProductServiceServer = (*GRPCHandler)(nil)

type GRPCHandler struct {
	store    *service.ProductStore
	resolver service.ScanResolver
	logger   *zap.Logger
}

func NewGRPCHandler(store *service.ProductStore, logger *zap.Logger) *GRPCHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRPCHandler{
		store:    store,
		resolver: service.NewScanResolver(),
		logger:   logger,
	}
}

func (h *GRPCHandler) ListProducts(ctx context.Context, req *ListProductsRequest) (*ProductListResponse, error) {
	products, err := h.store.Load(ctx)
	if err != nil {
		return nil, h.statusError("Error loading products", err)
	}

	return &ProductListResponse{
		Success:  true,
		Message:  "ok",
		Products: products.Filter(req.ID),
	}, nil
}

func (h *GRPCHandler) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	draft, err := domain.ParseDraft(req.Title, req.Description, req.Price, req.Quantity)
	if err != nil {
		return &ProductResponse{
			Success: false,
			Message: "Error creating product: " + err.Error(),
		}, nil
	}

	if _, err := h.store.Load(ctx); err != nil {
		return nil, h.statusError("Error creating product", err)
	}

	product, err := h.store.Create(ctx, draft)
	if err != nil {
		if errors.Is(err, service.ErrQRGeneration) {
			return &ProductResponse{
				Success: false,
				Message: "Error creating product: " + err.Error(),
			}, nil
		}
		return nil, h.statusError("Error creating product", err)
	}

	return &ProductResponse{
		Success: true,
		Message: "Product created successfully!",
		Product: &product,
	}, nil
}

func (h *GRPCHandler) UpdateProduct(ctx context.Context, req *UpdateProductRequest) (*ProductListResponse, error) {
	if _, err := h.store.Load(ctx); err != nil {
		return nil, h.statusError("Error editing product", err)
	}

	products, err := h.store.Update(ctx, req.Product)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return &ProductListResponse{
				Success:  false,
				Message:  "Error editing product: " + err.Error(),
				Products: h.store.Products(),
			}, nil
		}
		return nil, h.statusError("Error editing product", err)
	}

	return &ProductListResponse{
		Success:  true,
		Message:  "Product edited successfully!",
		Products: products,
	}, nil
}

func (h *GRPCHandler) DeleteProduct(ctx context.Context, req *DeleteProductRequest) (*ProductListResponse, error) {
	if _, err := h.store.Load(ctx); err != nil {
		return nil, h.statusError("Error deleting product", err)
	}

	products, err := h.store.Delete(ctx, req.ID)
	if err != nil {
		return nil, h.statusError("Error deleting product", err)
	}

	return &ProductListResponse{
		Success:  true,
		Message:  "Product deleted successfully!",
		Products: products,
	}, nil
}

func (h *GRPCHandler) ResolveScan(ctx context.Context, req *ResolveScanRequest) (*ResolveScanResponse, error) {
	products, err := h.store.Load(ctx)
	if err != nil {
		return nil, h.statusError("Error loading products", err)
	}

	res := h.resolver.Resolve(req.Payload, products)
	resp := &ResolveScanResponse{
		Matched: res.Matched,
		Message: res.Prompt(),
	}
	if res.Matched {
		resp.Product = &res.Product
	}

	return resp, nil
}

func (h *GRPCHandler) statusError(prefix string, err error) error {
	h.logger.Error(prefix, zap.Error(err))

	code := codes.Internal
	if errors.Is(err, service.ErrCorruptData) {
		code = codes.DataLoss
	}
	return status.Error(code, prefix+": "+err.Error())
}
