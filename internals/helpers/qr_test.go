package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQRPNGProducesPNG(t *testing.T) {
	png, err := EncodeQRPNG(QRPayload{RegistrationID: 12, Name: "Asha Rao"}, 256)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestDecodeQRPayloadJSON(t *testing.T) {
	p, err := DecodeQRPayload(`{"registrationId":12,"name":"Asha Rao"}`)
	require.NoError(t, err)
	assert.Equal(t, uint(12), p.RegistrationID)
	assert.Equal(t, "Asha Rao", p.Name)
}

func TestDecodeQRPayloadPlainNumberFallback(t *testing.T) {
	p, err := DecodeQRPayload(" 34 ")
	require.NoError(t, err)
	assert.Equal(t, uint(34), p.RegistrationID)
	assert.Empty(t, p.Name)
}

func TestDecodeQRPayloadRejectsGarbage(t *testing.T) {
	_, err := DecodeQRPayload("")
	assert.Error(t, err)

	_, err = DecodeQRPayload("bukan-qr-kami")
	assert.Error(t, err)

	_, err = DecodeQRPayload(`{"name":"tanpa id"}`)
	assert.Error(t, err)
}
