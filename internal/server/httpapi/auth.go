package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.ErrValidation)
	}

	res, err := s.svc.Users.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.ErrValidation)
	}

	res, err := s.svc.Users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handleMe(c echo.Context) error {
	user, err := s.svc.Users.GetSelf(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleUpdateTheme(c echo.Context) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.ErrValidation)
	}

	user, err := s.svc.Users.UpdateTheme(c.Request().Context(), currentUser(c).ID, req.Theme)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
