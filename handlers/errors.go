package handlers

import (
	"errors"

	"findly-api/logger"
	"findly-api/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrorHandler turns whatever a handler returned into the JSON contract:
// validation failures are itemized, absent rows are 404, and anything else is
// logged and answered with a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		invalid  *ValidationError
		missing  *services.MissingReferenceError
		notFound *services.NotFoundError
		fiberErr *fiber.Error
	)
	switch {
	case errors.As(err, &invalid):
		return c.Status(fiber.StatusBadRequest).JSON(invalid)
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return c.Status(fiber.StatusBadRequest).JSON(fieldError("pass", "pass must not exceed 72 bytes"))
	case errors.As(err, &missing):
		return sendMessage(c, fiber.StatusNotFound, label(missing.Entity)+" not found")
	case errors.As(err, &notFound):
		return sendMessage(c, fiber.StatusNotFound, label(notFound.Entity)+" not found")
	case errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError:
		if fiberErr.Code == fiber.StatusNotFound {
			return sendMessage(c, fiber.StatusNotFound, "Endpoint not found")
		}
		return sendMessage(c, fiberErr.Code, fiberErr.Message)
	}

	logger.L().Error("request failed",
		zap.String("request_id", requestID(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return sendMessage(c, fiber.StatusInternalServerError, "Internal server error")
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
