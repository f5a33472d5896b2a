package codec

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"pianostyle/internal/models"
	"pianostyle/internal/validation"
)

// DecodeScannedText classifies a scanned string through an ordered
// disambiguation chain: JSON identity payload, payment URI, deep link,
// bare address, embedded address, unrecognized. Richer formats win
// because they carry strictly more information. Each step is isolated;
// a failed parse falls through to the next step, and the decoder itself
// never returns an error.
func (s *service) DecodeScannedText(raw string) Result {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Result{Kind: models.KindUnrecognized, Raw: raw}
	}

	if r, ok := s.decodeJSON(text); ok {
		r.Raw = raw
		return r
	}
	if r, ok := s.decodePaymentURI(text); ok {
		r.Raw = raw
		return r
	}
	if r, ok := s.decodeDeepLink(text); ok {
		r.Raw = raw
		return r
	}
	if validation.IsValidAddress(text) {
		return Result{Kind: models.KindAddress, Address: text, Raw: raw}
	}
	if addr := validation.FindAddress(text); addr != "" {
		return Result{Kind: models.KindAddress, Address: addr, Raw: raw}
	}

	return Result{Kind: models.KindUnrecognized, Raw: raw}
}

func (s *service) decodeJSON(text string) (Result, bool) {
	if !strings.HasPrefix(text, "{") {
		return Result{}, false
	}

	var probe struct {
		Kind    models.PayloadKind `json:"kind"`
		Version string             `json:"version"`
		URL     string             `json:"url"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return Result{}, false
	}
	if probe.Version == "" || probe.Version != models.PayloadVersion {
		// Unknown versions still get best-effort field extraction.
		s.logger.Debug("decoding payload with unknown version", "version", probe.Version)
	}

	var venue models.VenuePayload
	if err := json.Unmarshal([]byte(text), &venue); err == nil && validation.IsValidVenuePayload(&venue) {
		return Result{
			Kind:    models.KindVenue,
			Venue:   &venue,
			Payment: venue.Payment,
			Slug:    venue.Slug,
			Link:    venue.URL,
		}, true
	}

	var user models.UserPayload
	if err := json.Unmarshal([]byte(text), &user); err == nil && validation.IsValidUserPayload(&user) {
		return Result{
			Kind:     models.KindUser,
			User:     &user,
			Payment:  user.Payment,
			Wallet:   user.WalletAddress,
			Username: user.Username,
			Link:     user.URL,
		}, true
	}

	if probe.URL != "" {
		return Result{Kind: models.KindLink, Link: probe.URL}, true
	}

	return Result{}, false
}

func (s *service) decodePaymentURI(text string) (Result, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lower, PaymentURIPrefix):
		return s.decodeCeloURI(text)
	case strings.HasPrefix(lower, EthereumURIPrefix):
		return s.decodeEthereumURI(text)
	}
	return Result{}, false
}

func (s *service) decodeCeloURI(text string) (Result, bool) {
	rest := text[len(PaymentURIPrefix):]
	rest = strings.TrimPrefix(rest, "?")
	vals, err := url.ParseQuery(rest)
	if err != nil {
		return Result{}, false
	}

	p := &models.Payment{
		Address: vals.Get("address"),
		Token:   vals.Get("token"),
		Memo:    vals.Get("memo"),
	}
	if !validation.IsValidPayment(p) {
		return Result{}, false
	}
	if amount := vals.Get("amount"); amount != "" {
		p.Amount = normalizeScannedAmount(amount)
	}
	if chain := vals.Get("chainId"); chain != "" {
		if id, err := strconv.ParseInt(chain, 10, 64); err == nil {
			p.ChainID = id
		}
	}

	return Result{Kind: models.KindPaymentURI, Payment: p}, true
}

// decodeEthereumURI accepts the EIP-681-style ethereum:<address>[@chainId]
// form. The value/amount and memo/data key fallbacks are confined to this
// parser; new schemes get their own parse step instead of more fallbacks.
func (s *service) decodeEthereumURI(text string) (Result, bool) {
	rest := text[len(EthereumURIPrefix):]
	target, query, _ := strings.Cut(rest, "?")
	addr, chain, hasChain := strings.Cut(target, "@")
	p := &models.Payment{Address: addr}
	if !validation.IsValidPayment(p) {
		return Result{}, false
	}

	if hasChain {
		if id, err := strconv.ParseInt(chain, 10, 64); err == nil {
			p.ChainID = id
		}
	}

	vals, err := url.ParseQuery(query)
	if err != nil {
		// Address alone is still a usable payment target.
		return Result{Kind: models.KindPaymentURI, Payment: p}, true
	}

	// EIP-681 values are already base units; no rescaling here.
	p.Amount = vals.Get("value")
	if p.Amount == "" {
		p.Amount = vals.Get("amount")
	}
	p.Memo = vals.Get("memo")
	if p.Memo == "" {
		p.Memo = vals.Get("data")
	}
	p.Token = vals.Get("token")

	return Result{Kind: models.KindPaymentURI, Payment: p}, true
}

func (s *service) decodeDeepLink(text string) (Result, bool) {
	prefix := DeepLinkScheme + "://"
	if !strings.HasPrefix(strings.ToLower(text), prefix) {
		return Result{}, false
	}

	rest := text[len(prefix):]
	path, query, _ := strings.Cut(rest, "?")
	kind, id, ok := strings.Cut(path, "/")
	if !ok || id == "" {
		return Result{}, false
	}
	id, err := url.PathUnescape(id)
	if err != nil {
		return Result{}, false
	}
	vals, _ := url.ParseQuery(query)

	switch kind {
	case "venue":
		return Result{Kind: models.KindVenue, Slug: id, Link: text}, true
	case "user":
		if !validation.IsValidAddress(id) {
			return Result{}, false
		}
		return Result{
			Kind:     models.KindUser,
			Wallet:   id,
			Username: vals.Get("username"),
			Link:     text,
		}, true
	}
	return Result{}, false
}
