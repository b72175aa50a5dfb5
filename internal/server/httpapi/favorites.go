package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/labstack/echo/v4"
)

type favoriteRequest struct {
	Category   string `json:"category"`
	Prompt     string `json:"prompt"`
	Suggestion string `json:"suggestion"`
}

type favoriteUpdateRequest struct {
	Suggestion string `json:"suggestion"`
}

func (s *Server) handleCreateFavorite(c echo.Context) error {
	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.ErrValidation)
	}

	f, err := s.svc.Favorites.Create(c.Request().Context(), currentUser(c).ID, req.Category, req.Prompt, req.Suggestion)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (s *Server) handleListFavorites(c echo.Context) error {
	list, err := s.svc.Favorites.List(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleUpdateFavorite(c echo.Context) error {
	var req favoriteUpdateRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.ErrValidation)
	}

	f, err := s.svc.Favorites.UpdateSuggestion(c.Request().Context(), currentUser(c).ID, c.Param("id"), req.Suggestion)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (s *Server) handleDeleteFavorite(c echo.Context) error {
	if err := s.svc.Favorites.Delete(c.Request().Context(), currentUser(c).ID, c.Param("id")); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Favorite deleted"})
}
