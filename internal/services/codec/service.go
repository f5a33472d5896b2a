package codec

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainErrors "pianostyle/internal/errors"
	"pianostyle/internal/models"
	"pianostyle/internal/validation"
)

type service struct {
	baseURL string
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a codec service. baseURL is the public web origin
// stamped into payload fallback URLs.
func NewService(baseURL string, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *service) EncodePaymentURI(p models.Payment) (string, error) {
	if !validation.IsValidAddress(p.Address) {
		return "", domainErrors.ErrInvalidAddress
	}

	// Canonical param order: address, amount, token, memo, chainId.
	var b strings.Builder
	b.WriteString(PaymentURIPrefix)
	b.WriteString("?address=")
	b.WriteString(url.QueryEscape(p.Address))

	if p.Amount != "" {
		wei, err := ToBaseUnits(p.Amount)
		if err != nil {
			return "", err
		}
		b.WriteString("&amount=")
		b.WriteString(wei)
	}
	if p.Token != "" {
		b.WriteString("&token=")
		b.WriteString(url.QueryEscape(p.Token))
	}
	if p.Memo != "" {
		b.WriteString("&memo=")
		b.WriteString(url.QueryEscape(p.Memo))
	}

	chainID := p.ChainID
	if chainID == 0 {
		chainID = DefaultChainID
	}
	b.WriteString("&chainId=")
	b.WriteString(strconv.FormatInt(chainID, 10))

	return b.String(), nil
}

func (s *service) EncodeVenuePayload(v *models.VenuePayload) (string, error) {
	if !validation.IsValidVenuePayload(v) {
		return "", domainErrors.ErrEmptyInput
	}
	return marshalPayload(v)
}

func (s *service) EncodeUserPayload(u *models.UserPayload) (string, error) {
	if !validation.IsValidUserPayload(u) {
		return "", domainErrors.ErrEmptyInput
	}
	return marshalPayload(u)
}

func marshalPayload(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return string(data), nil
}

func (s *service) VenueDeepLink(slug, amount string) string {
	link := fmt.Sprintf("%s://venue/%s", DeepLinkScheme, url.PathEscape(slug))
	if amount != "" {
		link += "?payment=" + url.QueryEscape(amount)
	}
	return link
}

func (s *service) UserDeepLink(address, username, amount string) string {
	link := fmt.Sprintf("%s://user/%s", DeepLinkScheme, url.PathEscape(address))
	params := url.Values{}
	if username != "" {
		params.Set("username", username)
	}
	if amount != "" {
		params.Set("payment", amount)
	}
	if encoded := params.Encode(); encoded != "" {
		link += "?" + encoded
	}
	return link
}

func (s *service) BuildVenuePayload(v *models.Venue, payment *models.Payment) *models.VenuePayload {
	if v == nil {
		return nil
	}
	return &models.VenuePayload{
		Kind:          models.KindVenue,
		Version:       models.PayloadVersion,
		URL:           fmt.Sprintf("%s/venues/%s", s.baseURL, v.Slug),
		GeneratedAt:   s.now().UnixMilli(),
		ID:            strconv.FormatUint(uint64(v.ID), 10),
		Slug:          v.Slug,
		Name:          v.Name,
		City:          v.City,
		Address:       v.Address,
		Description:   v.Description,
		HasPiano:      v.HasPiano,
		PianoVerified: v.PianoVerified,
		Contact:       v.ContactEmail,
		Website:       v.Website,
		Instagram:     v.Instagram,
		Payment:       clonePayment(payment),
	}
}

func (s *service) BuildUserPayload(p *models.Profile, payment *models.Payment) *models.UserPayload {
	if p == nil {
		return nil
	}
	payload := &models.UserPayload{
		Kind:          models.KindUser,
		Version:       models.PayloadVersion,
		URL:           fmt.Sprintf("%s/users/%s", s.baseURL, p.WalletAddress),
		GeneratedAt:   s.now().UnixMilli(),
		WalletAddress: p.WalletAddress,
		Username:      p.Username,
		DisplayName:   p.DisplayName,
		Bio:           p.Bio,
		Title:         p.Title,
		Location:      p.Location,
		Stats: models.UserStats{
			PointsEarned:     p.PointsEarned,
			VenuesDiscovered: p.VenuesDiscovered,
			ReviewCount:      p.ReviewCount,
		},
		Badges:  append([]string(nil), p.Badges...),
		Skills:  append([]string(nil), p.Skills...),
		Payment: clonePayment(payment),
	}
	if p.Twitter != "" || p.Instagram != "" {
		payload.Social = &models.SocialLinks{
			Twitter:   p.Twitter,
			Instagram: p.Instagram,
		}
	}
	return payload
}

// clonePayment keeps generated payloads immutable: the caller's value is
// copied, never aliased.
func clonePayment(p *models.Payment) *models.Payment {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
