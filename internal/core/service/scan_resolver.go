package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poolshark1904/gestao-produtos/internal/core/domain"
)

var ErrInvalidTransition = errors.New("invalid scan state transition")

// Resolution is the outcome of matching a scan payload against a product list.
type Resolution struct {
	ID      string
	Matched bool
	Product domain.Product
}

// Prompt is the confirmation question shown before branching to edit or create.
func (r Resolution) Prompt() string {
	if r.Matched {
		return fmt.Sprintf("Product found: %s. Do you want to edit it?", r.Product.Title)
	}
	return "Product not found. Do you want to create a new product?"
}

// ExtractID returns everything after the "Product ID: " marker, or "" when
// the marker is absent.
func ExtractID(payload string) string {
	_, id, found := strings.Cut(payload, domain.QRPayloadPrefix)
	if !found {
		return ""
	}
	return id
}

// ScanResolver is stateless; callers hold the list and any session state.
type ScanResolver struct{}

func NewScanResolver() ScanResolver {
	return ScanResolver{}
}

func (ScanResolver) Resolve(payload string, products domain.ProductList) Resolution {
	id := ExtractID(payload)
	if id == "" {
		return Resolution{}
	}

	product, ok := products.Find(id)
	if !ok {
		return Resolution{ID: id}
	}

	return Resolution{ID: id, Matched: true, Product: product}
}

// ScanSession tracks one caller's Idle -> Scanning -> Matched|Unmatched -> Idle cycle.
type ScanSession struct {
	resolver ScanResolver
	state    domain.ScanState
	last     Resolution
}

func NewScanSession() *ScanSession {
	return &ScanSession{state: domain.ScanStateIdle}
}

func (s *ScanSession) State() domain.ScanState {
	return s.state
}

func (s *ScanSession) Last() Resolution {
	return s.last
}

func (s *ScanSession) Begin() error {
	if s.state != domain.ScanStateIdle {
		return fmt.Errorf("%w: begin from %s", ErrInvalidTransition, s.state)
	}
	s.state = domain.ScanStateScanning
	return nil
}

func (s *ScanSession) Complete(payload string, products domain.ProductList) (Resolution, error) {
	if s.state != domain.ScanStateScanning {
		return Resolution{}, fmt.Errorf("%w: complete from %s", ErrInvalidTransition, s.state)
	}

	s.last = s.resolver.Resolve(payload, products)
	if s.last.Matched {
		s.state = domain.ScanStateMatched
	} else {
		s.state = domain.ScanStateUnmatched
	}
	return s.last, nil
}

func (s *ScanSession) Reset() {
	s.state = domain.ScanStateIdle
	s.last = Resolution{}
}
