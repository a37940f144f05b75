package utils

import qrcode "github.com/skip2/go-qrcode"

// GenerateQRCode renders content as a PNG of the given pixel size. Used for
// the collection code embedded in order confirmation emails.
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
