package codec

import "pianostyle/internal/models"

// Service converts between structured payloads and transportable strings.
// Decoding never fails: every input maps to a typed Result, with
// KindUnrecognized as the terminal fallback.
type Service interface {
	// EncodePaymentURI renders a payment request as the canonical
	// celo:pay URI. Amount is a human decimal string and is scaled to
	// 18-decimal base units; ChainID falls back to DefaultChainID.
	EncodePaymentURI(p models.Payment) (string, error)

	// EncodeVenuePayload and EncodeUserPayload serialize an identity
	// payload to its JSON wire text.
	EncodeVenuePayload(v *models.VenuePayload) (string, error)
	EncodeUserPayload(u *models.UserPayload) (string, error)

	// VenueDeepLink and UserDeepLink derive the shareable deep-link form.
	// Amount, when non-empty, is preserved as a payment query param.
	VenueDeepLink(slug, amount string) string
	UserDeepLink(address, username, amount string) string

	// BuildVenuePayload and BuildUserPayload stamp kind, version, web
	// fallback URL and generation time onto fresh payload values. They
	// never mutate previously returned payloads.
	BuildVenuePayload(v *models.Venue, payment *models.Payment) *models.VenuePayload
	BuildUserPayload(p *models.Profile, payment *models.Payment) *models.UserPayload

	// DecodeScannedText classifies an arbitrary scanned string.
	DecodeScannedText(raw string) Result
}
