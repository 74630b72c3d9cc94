package service

// QRCodeService renders QR codes that point buyers at a storefront.
type QRCodeService interface {
	// GenerateStorefrontQR returns a PNG encoding the public URL of the store.
	GenerateStorefrontQR(storeName string) ([]byte, error)

	// StorefrontURL returns the URL encoded in the store's QR code.
	StorefrontURL(storeName string) string
}
