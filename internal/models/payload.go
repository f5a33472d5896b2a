package models

// PayloadKind tags the union of shapes a scanned QR code can decode to.
type PayloadKind string

const (
	KindVenue        PayloadKind = "venue"
	KindUser         PayloadKind = "user"
	KindPaymentURI   PayloadKind = "payment_uri"
	KindAddress      PayloadKind = "address"
	KindLink         PayloadKind = "link"
	KindUnrecognized PayloadKind = "unrecognized"
)

func (k PayloadKind) String() string {
	return string(k)
}

// PayloadVersion is stamped on every generated identity payload. Decoders
// treat unknown versions defensively and never reject on version alone.
const PayloadVersion = "1.0"

// Payment describes a payment request embedded in a QR payload or carried
// by a payment URI. Amount is a base-unit (18-decimal) integer string.
type Payment struct {
	Address string `json:"address"`
	Amount  string `json:"amount,omitempty"`
	Token   string `json:"token,omitempty"`
	ChainID int64  `json:"chainId,omitempty"`
	Memo    string `json:"memo,omitempty"`
}

// VenuePayload is the identity payload encoded into a venue QR code.
type VenuePayload struct {
	Kind        PayloadKind `json:"kind"`
	Version     string      `json:"version"`
	URL         string      `json:"url,omitempty"`
	GeneratedAt int64       `json:"generatedAt"`

	ID          string `json:"id,omitempty"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`

	HasPiano      bool `json:"hasPiano"`
	PianoVerified bool `json:"pianoVerified,omitempty"`

	Contact   string `json:"contact,omitempty"`
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`

	Payment *Payment `json:"payment,omitempty"`
}

// UserStats is the stats block embedded in a user QR payload.
type UserStats struct {
	PointsEarned     int64 `json:"pointsEarned"`
	VenuesDiscovered int   `json:"venuesDiscovered"`
	ReviewCount      int   `json:"reviewCount"`
}

// SocialLinks holds optional social handles on a user payload.
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Farcaster string `json:"farcaster,omitempty"`
}

// UserPayload is the identity payload encoded into a user profile QR code.
// Badge and skill lists carry the full set; truncation for display is the
// renderer's concern.
type UserPayload struct {
	Kind        PayloadKind `json:"kind"`
	Version     string      `json:"version"`
	URL         string      `json:"url,omitempty"`
	GeneratedAt int64       `json:"generatedAt"`

	WalletAddress string `json:"walletAddress"`
	Username      string `json:"username,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Bio           string `json:"bio,omitempty"`
	Title         string `json:"title,omitempty"`
	Location      string `json:"location,omitempty"`

	Stats  UserStats    `json:"stats"`
	Badges []string     `json:"badges,omitempty"`
	Skills []string     `json:"skills,omitempty"`
	Social *SocialLinks `json:"social,omitempty"`

	Payment *Payment `json:"payment,omitempty"`
}
