package codec

import "pianostyle/internal/models"

const (
	// PaymentURIPrefix is the canonical wallet-payment URI form this
	// service generates.
	PaymentURIPrefix = "celo:pay"

	// EthereumURIPrefix is the EIP-681-style form accepted on decode only.
	EthereumURIPrefix = "ethereum:"

	// DeepLinkScheme is the application deep-link scheme.
	DeepLinkScheme = "pianostyle"

	// DefaultChainID is the Celo Alfajores testnet, used when a payment
	// request does not name a chain.
	DefaultChainID int64 = 44787
)

// Result is the typed outcome of decoding a scanned string. Exactly one
// primary kind is set; Payment may additionally carry a secondary payment
// event embedded in a venue or user payload.
type Result struct {
	Kind models.PayloadKind

	Venue *models.VenuePayload
	User  *models.UserPayload

	// Payment is the primary payload for KindPaymentURI and the
	// secondary embedded payment for identity kinds.
	Payment *models.Payment

	// Address is set for KindAddress (bare or embedded match).
	Address string

	// Slug / Wallet / Username reference the target of a deep link when
	// no full payload was carried.
	Slug     string
	Wallet   string
	Username string

	// Link is a generic web fallback URL surfaced from a JSON payload
	// or the deep link itself.
	Link string

	// Raw always carries the original scanned text.
	Raw string
}

// HasPayment reports whether the result carries a payment event, primary
// or embedded.
func (r Result) HasPayment() bool {
	return r.Payment != nil
}
