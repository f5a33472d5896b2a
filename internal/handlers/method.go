package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pianostyle/internal/models"
	"pianostyle/internal/services/method"
	"pianostyle/internal/utils/response"
)

type MethodHandler struct {
	selector method.Selector
}

func NewMethodHandler(selector method.Selector) *MethodHandler {
	return &MethodHandler{selector: selector}
}

// Suggest classifies the caller's capability snapshot and wallet
// connection context and returns the ranked payment methods.
// Re-invokable after capabilities or the connection change.
func (h *MethodHandler) Suggest(c *fiber.Ctx) error {
	var req struct {
		models.CapabilitySnapshot
		Wallet models.WalletContext `json:"wallet"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	return response.Success(c, "methods ranked", fiber.Map{
		"class":       h.selector.Classify(req.CapabilitySnapshot, req.Wallet),
		"suggestions": h.selector.Suggest(req.CapabilitySnapshot, req.Wallet),
	})
}
