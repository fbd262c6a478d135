package ticket

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"

	"devevents/internal/domain"
)

// DefaultQRSize is the edge length, in pixels, of generated ticket images.
const DefaultQRSize = 256

type qrEncoder struct {
	size int
}

// NewQREncoder returns a TicketCodeEncoder that renders payloads as PNG QR codes.
func NewQREncoder(size int) domain.TicketCodeEncoder {
	if size <= 0 {
		size = DefaultQRSize
	}
	return &qrEncoder{size: size}
}

func (e *qrEncoder) Encode(payload string) ([]byte, error) {
	if payload == "" {
		return nil, errors.New("qr payload is empty")
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, e.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
