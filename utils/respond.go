package utils

import (
	"errors"

	"joyful-cargo/errs"
	"joyful-cargo/logger"
	"joyful-cargo/types"

	"github.com/gofiber/fiber/v2"
)

// RespondError translates a service failure into the wire envelope.
func RespondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrValidation):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		status = fiber.StatusConflict
		message = err.Error()
	default:
		logger.Error("Unhandled service error", err)
	}

	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: message,
	})
}

// RespondOK wraps data in the success envelope.
func RespondOK(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Data:    data,
	})
}

// RespondCreated wraps data in the creation envelope.
func RespondCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// RespondBadRequest reports a malformed request body or parameter.
func RespondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

// RespondNotFound reports a missing record.
func RespondNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Status:  fiber.StatusNotFound,
		Message: message,
	})
}

// RespondUnauthorized reports a missing or invalid identity.
func RespondUnauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: message,
	})
}
