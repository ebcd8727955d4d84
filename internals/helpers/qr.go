package helper

import (
	"encoding/json"
	"errors"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPayload adalah isi QR yang dikirim ke email pengunjung dan discan di
// kiosk. Gate check-in hanya memakai registrationId; name cuma untuk
// ditampilkan di aplikasi scanner.
type QRPayload struct {
	RegistrationID uint   `json:"registrationId"`
	Name           string `json:"name"`
}

// EncodeQRPNG meng-encode payload menjadi gambar QR PNG.
func EncodeQRPNG(p QRPayload, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(raw), qrcode.Medium, size)
}

// DecodeQRPayload mem-parse hasil scan. Scanner lama kadang mengirim
// registrationId polos (bukan JSON), jadi itu juga diterima.
func DecodeQRPayload(raw string) (QRPayload, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return QRPayload{}, errors.New("payload QR kosong")
	}

	var p QRPayload
	if err := json.Unmarshal([]byte(raw), &p); err == nil && p.RegistrationID != 0 {
		return p, nil
	}

	// fallback: angka polos
	var id uint
	if err := json.Unmarshal([]byte(raw), &id); err == nil && id != 0 {
		return QRPayload{RegistrationID: id}, nil
	}

	return QRPayload{}, errors.New("payload QR tidak dikenali")
}
