package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateProfileQR generates a PNG QR code pointing at the public profile page
	GenerateProfileQR(slug string) ([]byte, error)
}
