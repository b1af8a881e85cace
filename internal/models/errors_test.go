package models

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_StatusDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusInternalServerError, (&AppError{Message: "boom"}).StatusCode())
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("Planet").StatusCode())
	assert.Equal(t, http.StatusBadRequest, NewValidationError("bad").StatusCode())
	assert.Equal(t, http.StatusConflict, NewConflictError("dup").StatusCode())
	assert.Equal(t, http.StatusBadGateway, NewBadUpstreamError("upstream", nil).StatusCode())
	assert.Equal(t, http.StatusTooManyRequests, NewRateLimitedError().StatusCode())
}

func TestAppError_MessageAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewInternalError(cause)
	assert.Equal(t, "Internal server error: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Planet not found", NewNotFoundError("Planet").Error())
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"not found", NewNotFoundError("Character"), http.StatusNotFound, `{"msg":"Character not found"}`},
		{"conflict", NewConflictError("Favorite planet already exists"), http.StatusConflict, `{"msg":"Favorite planet already exists"}`},
		{"fiber error", fiber.NewError(fiber.StatusBadRequest, "bad body"), http.StatusBadRequest, `{"msg":"bad body"}`},
		{"internal hides cause", NewInternalError(errors.New("pq: secret")), http.StatusInternalServerError, `{"msg":"Internal server error"}`},
		{"plain error", errors.New("oops"), http.StatusInternalServerError, `{"msg":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.JSONEq(t, tt.expectedBody, string(body))
		})
	}
}
