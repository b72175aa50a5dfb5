package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/server/moderation"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

type errorMapping struct {
	err     error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{common.ErrValidation, http.StatusBadRequest, "invalid request"},
	{common.ErrEmailTaken, http.StatusBadRequest, "Email already registered"},
	{common.ErrInvalidCategory, http.StatusBadRequest, "Invalid category"},
	{common.ErrInvalidTheme, http.StatusBadRequest, "Invalid theme"},
	{common.ErrContentBlocked, http.StatusBadRequest, moderation.BlockedMessage},
	{common.ErrUnauthenticated, http.StatusUnauthorized, "Not authenticated"},
	{common.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
	{common.ErrInvalidToken, http.StatusUnauthorized, "Invalid token"},
	{common.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{common.ErrorNotFound, http.StatusNotFound, "Not found"},
	{common.ErrGenerationFailed, http.StatusInternalServerError, "Failed to generate suggestion"},
}

// statusFor maps a service error to its HTTP status and public message.
func statusFor(err error) (int, string, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.message, true
		}
	}
	return http.StatusInternalServerError, "internal error", false
}

// writeError renders err. Unknown errors are logged and hidden.
func (s *Server) writeError(c echo.Context, err error) error {
	status, msg, known := statusFor(err)
	if !known {
		s.logger.Error(c.Request().Context(), "request failed",
			"path", c.Path(), "request_id", c.Response().Header().Get(echo.HeaderXRequestID), "error", err)
	}
	return c.JSON(status, errorResponse{Error: msg})
}
