package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gridlens/gridlens/internal/logging"
	"github.com/gridlens/gridlens/internal/models"
	"github.com/gridlens/gridlens/internal/services"
)

// ErrorHandler returns the app-wide fiber error handler. Service errors map
// to stable HTTP statuses by code; everything else is a 500 unless fiber
// already assigned a status.
func ErrorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		detail := models.ErrorDetail{
			Code:    "ERROR",
			Message: "Internal Server Error",
		}

		var serr *services.ServiceError
		var ferr *fiber.Error
		switch {
		case errors.As(err, &serr):
			status = statusForCode(serr.Code)
			detail.Code = serr.Code
			detail.Message = serr.Message
			detail.Details = serr.Details
		case errors.As(err, &ferr):
			status = ferr.Code
			detail.Message = ferr.Message
		}

		logger.Error("Request error",
			"path", c.Path(),
			"method", c.Method(),
			"status", status,
			"error", err,
		)

		return c.Status(status).JSON(models.ErrorResponse{Error: detail})
	}
}

func statusForCode(code string) int {
	switch code {
	case services.CodeVariableNotFound:
		return fiber.StatusNotFound
	case services.CodeVariableExists:
		return fiber.StatusConflict
	case services.CodeInvalidParameter:
		return fiber.StatusBadRequest
	case services.CodeSeriesTooLarge:
		return fiber.StatusRequestEntityTooLarge
	default:
		return fiber.StatusInternalServerError
	}
}
