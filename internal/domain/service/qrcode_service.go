package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRegistrationQR generates a QR code PNG for a device
	// registration token, scanned by enrollment kiosks.
	GenerateRegistrationQR(registrationToken string) ([]byte, error)

	// ParseRegistrationQR parses QR code data and returns the registration token
	ParseRegistrationQR(qrData string) (string, error)
}
