// Package ticket derives ticket codes for paid reservations and renders
// them as scannable QR images.
package ticket

import (
	"encoding/base64"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// Code derives the opaque ticket string for a reservation. The timestamp
// makes codes unique across repeated confirmations of distinct reservations
// on the same event.
func Code(eventID, reservationID string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%d", eventID, reservationID, at.UnixMilli())
}

// Encoder turns a ticket code into a renderable image payload. Encoding is
// pure: the same text always yields the same payload.
type Encoder interface {
	Encode(text string) (string, error)
}

// QREncoder renders ticket codes as PNG QR images wrapped in a data URI,
// ready to drop into an <img> tag.
type QREncoder struct {
	level qrcode.RecoveryLevel
	size  int
}

// NewQREncoder returns an encoder producing 256px PNGs at medium error
// correction.
func NewQREncoder() *QREncoder {
	return &QREncoder{level: qrcode.Medium, size: 256}
}

func (e *QREncoder) Encode(text string) (string, error) {
	png, err := qrcode.Encode(text, e.level, e.size)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
