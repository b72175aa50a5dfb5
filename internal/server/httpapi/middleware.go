package httpapi

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/server/models"
	"github.com/labstack/echo/v4"
)

const userKey = "user"

// accessLog logs one line per request.
func (s *Server) accessLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		res := c.Response()
		s.logger.Info(req.Context(), "HTTP request",
			"method", req.Method,
			"path", c.Path(),
			"status", res.Status,
			"size", res.Size,
			"duration", time.Since(start).String(),
			"request_id", res.Header().Get(echo.HeaderXRequestID),
		)
		return nil
	}
}

// bearerToken extracts the credential of an "Authorization: Bearer" header.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authMiddleware resolves the bearer token to an identity and stores it in
// the echo context.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(common.AuthorizationHeaderName))
		if !ok {
			return s.writeError(c, common.ErrUnauthenticated)
		}

		user, err := s.svc.Users.ResolveToken(c.Request().Context(), token)
		if err != nil {
			return s.writeError(c, err)
		}

		c.Set(userKey, user)
		return next(c)
	}
}

// currentUser returns the identity set by authMiddleware.
func currentUser(c echo.Context) *models.User {
	u, _ := c.Get(userKey).(*models.User)
	return u
}
