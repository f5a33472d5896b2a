package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pianostyle/internal/models"
	"pianostyle/internal/repositories"
	"pianostyle/internal/services/codec"
	"pianostyle/internal/services/qrimage"
	"pianostyle/internal/utils/response"
	"pianostyle/internal/validation"
)

type QRHandler struct {
	qr       qrimage.Service
	codec    codec.Service
	venues   repositories.VenueRepository
	profiles repositories.ProfileRepository
}

func NewQRHandler(qr qrimage.Service, codecSvc codec.Service,
	venues repositories.VenueRepository, profiles repositories.ProfileRepository) *QRHandler {
	return &QRHandler{qr: qr, codec: codecSvc, venues: venues, profiles: profiles}
}

type renderRequest struct {
	Data string `json:"data"`
	qrimage.Options
}

// Render rasterizes an arbitrary data string.
func (h *QRHandler) Render(c *fiber.Ctx) error {
	var req renderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	img, err := h.qr.Generate(c.Context(), req.Data, req.Options)
	if err != nil {
		return response.DomainErr(c, err)
	}

	return response.Success(c, "QR code rendered", img)
}

// RenderPayment encodes a payment request and rasterizes it. A connected
// wallet context supplies the recipient address and chain id when the
// request leaves them blank.
func (h *QRHandler) RenderPayment(c *fiber.Ctx) error {
	var req struct {
		models.Payment
		qrimage.Options
		Wallet models.WalletContext `json:"wallet"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	img, err := h.qr.GeneratePayment(c.Context(), req.Wallet.ApplyTo(req.Payment), req.Options)
	if err != nil {
		return response.DomainErr(c, err)
	}

	return response.Success(c, "payment QR rendered", img)
}

// VenueQR builds the venue identity payload and rasterizes it at the
// highest correction level. An amount query param embeds a payment
// request against the venue's wallet.
func (h *QRHandler) VenueQR(c *fiber.Ctx) error {
	venue, err := h.venues.GetBySlug(c.Context(), c.Params("slug"))
	if errors.Is(err, repositories.ErrNotFound) {
		return response.NotFound(c, "venue not found")
	}
	if err != nil {
		return response.ServerError(c, "failed to load venue")
	}

	var payment *models.Payment
	if validation.IsValidAddress(venue.WalletAddress) {
		payment = &models.Payment{Address: venue.WalletAddress}
		if amount := c.Query("amount"); amount != "" {
			wei, err := codec.ToBaseUnits(amount)
			if err != nil {
				return response.DomainErr(c, err)
			}
			payment.Amount = wei
		}
	}

	payload := h.codec.BuildVenuePayload(venue, payment)
	data, err := h.codec.EncodeVenuePayload(payload)
	if err != nil {
		return response.DomainErr(c, err)
	}

	img, err := h.qr.Generate(c.Context(), data, qrimage.Options{Level: qrimage.LevelHighest})
	if err != nil {
		return response.DomainErr(c, err)
	}

	return response.Success(c, "venue QR generated", fiber.Map{
		"payload":  payload,
		"image":    img,
		"deepLink": h.codec.VenueDeepLink(venue.Slug, c.Query("amount")),
	})
}

// UserQR builds the user identity payload and rasterizes it.
func (h *QRHandler) UserQR(c *fiber.Ctx) error {
	address := c.Params("address")
	if !validation.IsValidAddress(address) {
		return response.BadRequest(c, "invalid wallet address")
	}

	profile, err := h.profiles.GetByWallet(c.Context(), address)
	if errors.Is(err, repositories.ErrNotFound) {
		return response.NotFound(c, "profile not found")
	}
	if err != nil {
		return response.ServerError(c, "failed to load profile")
	}

	var payment *models.Payment
	if amount := c.Query("amount"); amount != "" {
		wei, err := codec.ToBaseUnits(amount)
		if err != nil {
			return response.DomainErr(c, err)
		}
		payment = &models.Payment{Address: profile.WalletAddress, Amount: wei}
	}

	payload := h.codec.BuildUserPayload(profile, payment)
	data, err := h.codec.EncodeUserPayload(payload)
	if err != nil {
		return response.DomainErr(c, err)
	}

	img, err := h.qr.Generate(c.Context(), data, qrimage.Options{Level: qrimage.LevelHighest})
	if err != nil {
		return response.DomainErr(c, err)
	}

	return response.Success(c, "user QR generated", fiber.Map{
		"payload":  payload,
		"image":    img,
		"deepLink": h.codec.UserDeepLink(profile.WalletAddress, profile.Username, c.Query("amount")),
	})
}
