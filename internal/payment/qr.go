package payment

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPNG renders the payment link as a scannable PNG. High error correction
// so a phone can read it from a laptop screen.
func QRPNG(link string) ([]byte, error) {
	return qrcode.Encode(link, qrcode.High, 256)
}

// QRBase64 returns the PNG base64-encoded for inline embedding in a page.
func QRBase64(link string) (string, error) {
	png, err := QRPNG(link)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
