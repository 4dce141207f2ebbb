package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/poolshark1904/gestao-produtos/internal/core/domain"
	"github.com/poolshark1904/gestao-produtos/internal/port"
)

// ProductsKey is the storage key holding the serialized product list.
const ProductsKey = "products"

var (
	ErrStorage      = errors.New("storage error")
	ErrCorruptData  = errors.New("stored products could not be parsed")
	ErrQRGeneration = errors.New("failed to generate QR code")
)

type ProductStore struct {
	kv     port.KeyValueRepository
	qr     port.QRCodeGenerator
	ids    IDGenerator
	logger *zap.Logger

	mu       sync.Mutex
	products domain.ProductList
}

type Option func(*ProductStore)

func WithIDGenerator(ids IDGenerator) Option {
	return func(s *ProductStore) {
		s.ids = ids
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *ProductStore) {
		s.logger = logger
	}
}

func NewProductStore(kv port.KeyValueRepository, qr port.QRCodeGenerator, opts ...Option) *ProductStore {
	s := &ProductStore{
		kv:       kv,
		qr:       qr,
		ids:      OrdinalIDs{},
		logger:   zap.NewNop(),
		products: domain.ProductList{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the cached list with the persisted one. A missing or empty
// value yields an empty list.
func (s *ProductStore) Load(ctx context.Context) (domain.ProductList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found, err := s.kv.GetItem(ctx, ProductsKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read products: %w", ErrStorage, err)
	}

	products := domain.ProductList{}
	if found && strings.TrimSpace(value) != "" {
		if err := json.Unmarshal([]byte(value), &products); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
		}
		if products == nil {
			products = domain.ProductList{}
		}
	}

	s.products = products
	s.logger.Debug("products loaded", zap.Int("count", len(products)))

	return products.Clone(), nil
}

// Create assigns an id and QR image to the draft, appends the product and
// persists the full list. Nothing is stored when the QR request fails.
func (s *ProductStore) Create(ctx context.Context, draft domain.Draft) (domain.Product, error) {
	if err := draft.Validate(); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.NextID(s.products)
	qrText := domain.QRPayload(id)

	qrURL, err := s.qr.GenerateURL(ctx, qrText)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: %w", ErrQRGeneration, err)
	}
	if qrURL == "" {
		return domain.Product{}, fmt.Errorf("%w: empty image url", ErrQRGeneration)
	}

	product := domain.Product{
		ID:          id,
		QRCodeText:  qrText,
		QRCode:      qrURL,
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		Quantity:    draft.Quantity,
	}

	updated := append(s.products.Clone(), product)
	if err := s.persist(ctx, updated); err != nil {
		return domain.Product{}, err
	}
	s.products = updated

	s.logger.Info("product created", zap.String("id", id), zap.String("title", product.Title))

	return product, nil
}

// Update replaces the stored product sharing edited's id. An unknown id
// leaves the list unchanged.
func (s *ProductStore) Update(ctx context.Context, edited domain.Product) (domain.ProductList, error) {
	if err := edited.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, matched := s.products.Replace(edited)
	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}
	s.products = updated

	if matched {
		s.logger.Info("product updated", zap.String("id", edited.ID))
	} else {
		s.logger.Debug("update matched no product", zap.String("id", edited.ID))
	}

	return updated.Clone(), nil
}

// Delete removes every product with the given id. Deleting an unknown id is a no-op.
func (s *ProductStore) Delete(ctx context.Context, id string) (domain.ProductList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, removed := s.products.Remove(id)
	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}
	s.products = updated

	s.logger.Info("product deleted", zap.String("id", id), zap.Int("removed", removed))

	return updated.Clone(), nil
}

// Products returns a copy of the cached list as of the last load or mutation.
func (s *ProductStore) Products() domain.ProductList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Clone()
}

func (s *ProductStore) Get(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Find(id)
}

func (s *ProductStore) persist(ctx context.Context, products domain.ProductList) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("%w: encode products: %w", ErrStorage, err)
	}

	if err := s.kv.SetItem(ctx, ProductsKey, string(data)); err != nil {
		return fmt.Errorf("%w: write products: %w", ErrStorage, err)
	}

	return nil
}
