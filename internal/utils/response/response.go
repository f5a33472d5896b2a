package response

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	domainErrors "pianostyle/internal/errors"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// DomainErr maps a domain error to its HTTP shape, exposing the stable
// error code alongside the message. Unknown errors become a 500.
func DomainErr(c *fiber.Ctx, err error) error {
	var de *domainErrors.DomainError
	if stderrors.As(err, &de) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": de.Message,
			"code":  de.Code,
		})
	}
	return ServerError(c, "internal error")
}
