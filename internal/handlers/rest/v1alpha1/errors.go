package v1alpha1

import (
	stderrors "errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
)

// ToFiberError writes err as the JSON error envelope. It is installed as the
// app's ErrorHandler, so handlers just return errors.
func ToFiberError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if stderrors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(errors.ResponseBody{
			Error: fiberErr.Message,
			Code:  codeForStatus(fiberErr.Code),
		})
	}

	status, body := errors.ToResponse(err)
	if status >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "Request failed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"error", err)
	}
	return c.Status(status).JSON(body)
}

func codeForStatus(status int) errors.Code {
	switch status {
	case fiber.StatusNotFound:
		return errors.CodeNotFound
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return errors.CodeInvalidArgument
	case fiber.StatusMethodNotAllowed:
		return errors.CodeFailedPrecondition
	case fiber.StatusServiceUnavailable:
		return errors.CodeUnavailable
	default:
		return errors.CodeInternal
	}
}
