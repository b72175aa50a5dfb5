package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/labstack/echo/v4"
)

type generateRequest struct {
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
}

func (s *Server) handleGenerate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.ErrValidation)
	}

	rec, err := s.svc.Creative.Generate(c.Request().Context(), currentUser(c).ID, req.Category, req.Prompt)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handleHistory(c echo.Context) error {
	list, err := s.svc.Creative.ListHistory(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
