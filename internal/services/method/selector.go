// Package method classifies a session's capabilities and ranks the
// available payment flows. Selection is a pure derivation over a
// CapabilitySnapshot: no I/O, safe to re-invoke after the user installs
// a wallet.
package method

import "pianostyle/internal/models"

// Selector ranks payment methods for a capability snapshot and the
// session's wallet connection context.
type Selector interface {
	Classify(snap models.CapabilitySnapshot, wallet models.WalletContext) models.SessionClass
	Suggest(snap models.CapabilitySnapshot, wallet models.WalletContext) []models.MethodSuggestion
}

type selector struct{}

// NewSelector creates a method selector.
func NewSelector() Selector {
	return selector{}
}

// Classify returns "web3" when any wallet provider is present or a
// wallet is already connected, else "qr". The connection context is the
// authoritative signal; provider flags only approximate it.
func (selector) Classify(snap models.CapabilitySnapshot, wallet models.WalletContext) models.SessionClass {
	if snap.HasWalletProvider() || wallet.Connected {
		return models.SessionWeb3
	}
	return models.SessionQR
}

// Suggest builds the ranked suggestion list. Direct Web3 payment leads
// for web3 sessions; scanning leads for QR sessions with a camera on a
// mobile device; displaying a QR is always present as the universal
// fallback at a lower priority. Equal priorities keep list order:
// web3 before scan before display.
func (s selector) Suggest(snap models.CapabilitySnapshot, wallet models.WalletContext) []models.MethodSuggestion {
	class := s.Classify(snap, wallet)
	suggestions := make([]models.MethodSuggestion, 0, 3)

	if class == models.SessionWeb3 {
		suggestions = append(suggestions, models.MethodSuggestion{
			Method:      models.MethodWeb3,
			Title:       "Pay with wallet",
			Description: "Send directly from your connected wallet",
			Priority:    1,
		})
	}

	if snap.SupportsCamera && snap.IsMobile {
		priority := 2
		if class == models.SessionQR {
			priority = 1
		}
		suggestions = append(suggestions, models.MethodSuggestion{
			Method:      models.MethodQRScan,
			Title:       "Scan a QR code",
			Description: "Point your camera at the recipient's code",
			Priority:    priority,
		})
	}

	displayPriority := 2
	if class == models.SessionWeb3 {
		displayPriority = 3
	}
	suggestions = append(suggestions, models.MethodSuggestion{
		Method:      models.MethodQRDisplay,
		Title:       "Show a QR code",
		Description: "Display a code for the sender to scan",
		Priority:    displayPriority,
	})

	return suggestions
}
