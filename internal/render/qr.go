package render

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// qrPixels is the edge length of generated QR PNGs. Cards print them at
// just under 1cm, so this is comfortably above print resolution.
const qrPixels = 256

// QRCode encodes payload as a PNG QR code
func QRCode(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("encode QR code: %w", err)
	}
	return png, nil
}
