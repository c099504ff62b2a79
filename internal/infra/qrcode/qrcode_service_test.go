package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateRegistrationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GenerateRegistrationQR("reg-token-0042")
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_GenerateRegistrationQR_EmptyToken(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateRegistrationQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseRegistrationQR(t *testing.T) {
	service := NewQRCodeService(256, "H")

	payload, err := json.Marshal(QRCodeData{
		RegistrationToken: "reg-token-0042",
		Type:              qrTypeDeviceRegistration,
	})
	require.NoError(t, err)

	token, err := service.ParseRegistrationQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "reg-token-0042", token)
}

func TestQRCodeService_ParseRegistrationQR_InvalidPayload(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "not-json"},
		{name: "wrong type", payload: `{"registration_token":"x","type":"subscription"}`},
		{name: "missing token", payload: `{"type":"device_registration"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseRegistrationQR(tt.payload)
			assert.Error(t, err)
		})
	}
}
