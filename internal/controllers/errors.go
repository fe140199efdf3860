package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"academic-events/dto"
	"academic-events/internal/booking"
	"academic-events/internal/repository"
	"academic-events/internal/rules"
	"academic-events/internal/services"
	"academic-events/utils"
)

// classify maps an error to its HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, utils.ErrInvalidIdentifier):
		return fiber.StatusBadRequest, "InvalidIdentifier"
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest, "InvalidInput"
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound, "NotFound"
	case errors.Is(err, repository.ErrDuplicate):
		return fiber.StatusConflict, "Duplicate"
	case errors.Is(err, booking.ErrBusy):
		return fiber.StatusConflict, "BookingInProgress"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "Timeout"
	}

	code := rules.Code(err)
	switch {
	case errors.Is(err, rules.ErrOrganizerNotFound), errors.Is(err, rules.ErrUserNotFound):
		return fiber.StatusNotFound, code
	case errors.Is(err, rules.ErrEvaluatorRoleRequired):
		return fiber.StatusForbidden, code
	case code != "":
		return fiber.StatusBadRequest, code
	}
	return fiber.StatusInternalServerError, "Internal"
}

func respondError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	msg := err.Error()
	if status >= fiber.StatusInternalServerError {
		requestLogger(c).Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
		msg = "internal server error"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

// requestLogger returns the logger the request middleware attached, falling
// back to the global one.
func requestLogger(c *fiber.Ctx) *zerolog.Logger {
	if l := zerolog.Ctx(c.UserContext()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes, in the same shape as handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message, Code: "HTTP"})
	}
	return respondError(c, err)
}

func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", services.ErrInvalidInput, err)
	}
	return nil
}

func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), timeout)
}
