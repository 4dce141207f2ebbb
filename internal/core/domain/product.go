package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QRPayloadPrefix marks the product id inside a QR payload.
const QRPayloadPrefix = "Product ID: "

var (
	ErrValidation      = errors.New("validation failed")
	ErrInvalidPrice    = fmt.Errorf("%w: price must be a non-negative number", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be a non-negative integer", ErrValidation)
	ErrMissingID       = fmt.Errorf("%w: product id is required", ErrValidation)
)

type Product struct {
	ID          string  `json:"id"`
	QRCodeText  string  `json:"qrCodeText"`
	QRCode      string  `json:"qrCode"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Draft holds the user-supplied fields of a product that does not exist yet.
type Draft struct {
	Title       string
	Description string
	Price       float64
	Quantity    int
}

// QRPayload returns the text encoded into the QR image of the product with the given id.
func QRPayload(id string) string {
	return QRPayloadPrefix + id
}

// ParseDraft builds a Draft from raw text input, rejecting malformed or
// negative numbers.
func ParseDraft(title, description, priceText, quantityText string) (Draft, error) {
	price, err := ParsePrice(priceText)
	if err != nil {
		return Draft{}, err
	}

	quantity, err := ParseQuantity(quantityText)
	if err != nil {
		return Draft{}, err
	}

	return Draft{
		Title:       title,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}, nil
}

// ParsePrice accepts both "9.99" and "9,99".
func ParsePrice(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	price, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, text)
	}
	if err := validatePrice(price); err != nil {
		return 0, err
	}
	return price, nil
}

func ParseQuantity(text string) (int, error) {
	text = strings.TrimSpace(text)
	quantity, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, text)
	}
	if quantity < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	return quantity, nil
}

func (d Draft) Validate() error {
	if err := validatePrice(d.Price); err != nil {
		return err
	}
	if d.Quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, d.Quantity)
	}
	return nil
}

// Validate checks an edited record before it replaces the stored one.
func (p Product) Validate() error {
	if p.ID == "" {
		return ErrMissingID
	}
	return Draft{Price: p.Price, Quantity: p.Quantity}.Validate()
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	return nil
}
