package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academic-events/internal/booking"
	"academic-events/internal/middleware"
	"academic-events/internal/repository"
	"academic-events/internal/rules"
	"academic-events/internal/services"
	"academic-events/utils"
)

func TestClassify(t *testing.T) {
	_, badID := utils.Oid("nope")

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{badID, fiber.StatusBadRequest, "InvalidIdentifier"},
		{fmt.Errorf("%w: nombre", services.ErrInvalidInput), fiber.StatusBadRequest, "InvalidInput"},
		{fmt.Errorf("get event: %w", repository.ErrNotFound), fiber.StatusNotFound, "NotFound"},
		{fmt.Errorf("insert user: %w", repository.ErrDuplicate), fiber.StatusConflict, "Duplicate"},
		{fmt.Errorf("lock: %w", booking.ErrBusy), fiber.StatusConflict, "BookingInProgress"},
		{context.DeadlineExceeded, fiber.StatusGatewayTimeout, "Timeout"},
		{&rules.Violation{Kind: rules.ErrOrganizerNotFound}, fiber.StatusNotFound, "OrganizerNotFound"},
		{&rules.Violation{Kind: rules.ErrUserNotFound}, fiber.StatusNotFound, "UserNotFound"},
		{&rules.Violation{Kind: rules.ErrEvaluatorRoleRequired}, fiber.StatusForbidden, "EvaluatorRoleRequired"},
		{&rules.Violation{Kind: rules.ErrOrganizerForbiddenRole}, fiber.StatusBadRequest, "OrganizerForbiddenRole"},
		{&rules.Violation{Kind: rules.ErrCapacityExceeded}, fiber.StatusBadRequest, "CapacityExceeded"},
		{&rules.FacilityConflictError{FacilityID: "F"}, fiber.StatusBadRequest, "FacilityConflict"},
		{errors.New("connection reset"), fiber.StatusInternalServerError, "Internal"},
	}

	for _, tc := range cases {
		status, code := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestInternalErrorsLogRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(middleware.RequestLogger(zerolog.New(&buf)))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, errors.New("connection reset"))
	})

	req := httptest.NewRequest("GET", "/boom", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-7")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var failed string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, `"message":"request failed"`) {
			failed = line
		}
	}
	require.NotEmpty(t, failed, buf.String())
	assert.Contains(t, failed, `"request_id":"req-7"`)
	assert.Contains(t, failed, `"error":"connection reset"`)
}
