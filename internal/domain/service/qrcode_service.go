package service

// QRCodeService generates QR codes for shipment tracking numbers, so a
// printed label can be scanned straight to the public tracking endpoint.
type QRCodeService interface {
	// GenerateTrackingQR renders a PNG QR code for the given tracking number.
	GenerateTrackingQR(trackingNumber string) ([]byte, error)
}
