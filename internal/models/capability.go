package models

// CapabilitySnapshot captures the device and wallet capabilities of one
// session. It is computed once (recomputable on demand) and passed down
// explicitly; components never probe the environment themselves.
type CapabilitySnapshot struct {
	HasMetaMask       bool `json:"hasMetaMask"`
	HasValora         bool `json:"hasValora"`
	HasCoinbaseWallet bool `json:"hasCoinbaseWallet"`
	SupportsCamera    bool `json:"supportsCamera"`
	SupportsClipboard bool `json:"supportsClipboard"`
	SupportsShare     bool `json:"supportsShare"`
	IsMobile          bool `json:"isMobile"`
}

// HasWalletProvider reports whether any known wallet provider is present.
func (c CapabilitySnapshot) HasWalletProvider() bool {
	return c.HasMetaMask || c.HasValora || c.HasCoinbaseWallet
}

// SessionClass is the coarse classification of a session.
type SessionClass string

const (
	SessionWeb3 SessionClass = "web3"
	SessionQR   SessionClass = "qr"
)

// PaymentMethod identifies one of the supported payment flows.
type PaymentMethod string

const (
	MethodWeb3      PaymentMethod = "web3"
	MethodQRScan    PaymentMethod = "qr_scan"
	MethodQRDisplay PaymentMethod = "qr_display"
)

// MethodSuggestion is a ranked payment-method offer. Lower priority ranks
// first. Suggestions are derived on demand and never stored.
type MethodSuggestion struct {
	Method      PaymentMethod `json:"method"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    int           `json:"priority"`
}

// WalletContext is the explicit connection-context value supplied by the
// wallet provider: created on session start, updated on account or chain
// change, torn down on disconnect.
type WalletContext struct {
	Address   string `json:"address"`
	ChainID   int64  `json:"chainId"`
	Connected bool   `json:"connected"`
}

// ApplyTo fills a payment's missing address and chain id from the
// connected wallet. Values the caller already set are kept, and a
// disconnected context contributes nothing.
func (w WalletContext) ApplyTo(p Payment) Payment {
	if !w.Connected {
		return p
	}
	if p.Address == "" {
		p.Address = w.Address
	}
	if p.ChainID == 0 {
		p.ChainID = w.ChainID
	}
	return p
}
