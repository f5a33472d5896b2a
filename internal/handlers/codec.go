package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pianostyle/internal/models"
	"pianostyle/internal/services/codec"
	"pianostyle/internal/utils/response"
)

type CodecHandler struct {
	codec codec.Service
}

func NewCodecHandler(codecSvc codec.Service) *CodecHandler {
	return &CodecHandler{codec: codecSvc}
}

type decodeRequest struct {
	Text string `json:"text"`
}

// Decode classifies a scanned string. Unrecognized input is a normal
// 200 outcome carrying the raw text, not an error status.
func (h *CodecHandler) Decode(c *fiber.Ctx) error {
	var req decodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Text == "" {
		return response.BadRequest(c, "text is required")
	}

	result := h.codec.DecodeScannedText(req.Text)
	return response.Success(c, "scan decoded", result)
}

// EncodePaymentURI renders a payment request as its canonical URI.
func (h *CodecHandler) EncodePaymentURI(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	uri, err := h.codec.EncodePaymentURI(payment)
	if err != nil {
		return response.DomainErr(c, err)
	}

	return response.Success(c, "payment URI encoded", fiber.Map{"uri": uri})
}
