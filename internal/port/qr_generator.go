package port

import "context"

type QRCodeGenerator interface {
	// GenerateURL returns a retrievable image URL rendering text as a QR code
	GenerateURL(ctx context.Context, text string) (string, error)
}
