package qrcode

import (
	"encoding/json"
	"fmt"

	"macts/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RegistrationToken string `json:"registration_token"`
	Type              string `json:"type"`
}

const qrTypeDeviceRegistration = "device_registration"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRegistrationQR generates a QR code PNG for a device registration
// token, scanned by enrollment kiosks.
func (s *qrcodeService) GenerateRegistrationQR(registrationToken string) ([]byte, error) {
	if registrationToken == "" {
		return nil, fmt.Errorf("registration token must not be empty")
	}

	data := QRCodeData{
		RegistrationToken: registrationToken,
		Type:              qrTypeDeviceRegistration,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRegistrationQR parses QR code data and returns the registration token
func (s *qrcodeService) ParseRegistrationQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != qrTypeDeviceRegistration {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.RegistrationToken == "" {
		return "", fmt.Errorf("QR code carries no registration token")
	}

	return data.RegistrationToken, nil
}
