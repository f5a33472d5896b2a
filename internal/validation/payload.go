package validation

import "pianostyle/internal/models"

// IsValidVenuePayload reports whether p is a usable venue payload. A nil
// or wrong-kind value is rejected, never an error. An embedded payment
// with a bad address downgrades the whole payload.
func IsValidVenuePayload(p *models.VenuePayload) bool {
	if p == nil {
		return false
	}
	if p.Kind != models.KindVenue {
		return false
	}
	if p.Slug == "" && p.ID == "" {
		return false
	}
	if p.Name == "" {
		return false
	}
	if p.Payment != nil && !IsValidAddress(p.Payment.Address) {
		return false
	}
	return true
}

// IsValidUserPayload reports whether p is a usable user payload.
func IsValidUserPayload(p *models.UserPayload) bool {
	if p == nil {
		return false
	}
	if p.Kind != models.KindUser {
		return false
	}
	if !IsValidAddress(p.WalletAddress) {
		return false
	}
	if p.Payment != nil && !IsValidAddress(p.Payment.Address) {
		return false
	}
	return true
}

// IsValidPayment reports whether p carries a valid recipient address.
func IsValidPayment(p *models.Payment) bool {
	return p != nil && IsValidAddress(p.Address)
}
