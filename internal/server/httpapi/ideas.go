package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/server/models"
	"github.com/dmitrijs2005/ideae/internal/server/services"
	"github.com/labstack/echo/v4"
)

type ideaRequest struct {
	Title    string   `json:"title"`
	Content  *string  `json:"content"`
	IdeaType string   `json:"idea_type"`
	MediaURL *string  `json:"media_url"`
	Tags     []string `json:"tags"`
}

type ideaUpdateRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

type mediaRequest struct {
	ContentType string `json:"content_type"`
}

func (s *Server) handleCreateIdea(c echo.Context) error {
	var req ideaRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.ErrValidation)
	}

	idea, err := s.svc.Ideas.Create(c.Request().Context(), currentUser(c).ID, services.IdeaInput{
		Title:    req.Title,
		Content:  req.Content,
		Type:     req.IdeaType,
		MediaURL: req.MediaURL,
		Tags:     req.Tags,
	})
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, idea)
}

func (s *Server) handleListIdeas(c echo.Context) error {
	list, err := s.svc.Ideas.List(c.Request().Context(), currentUser(c).ID, c.QueryParam("idea_type"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleGetIdea(c echo.Context) error {
	idea, err := s.svc.Ideas.Get(c.Request().Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, idea)
}

func (s *Server) handleUpdateIdea(c echo.Context) error {
	var req ideaUpdateRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.ErrValidation)
	}

	patch := models.IdeaPatch{Title: req.Title, Content: req.Content}
	if req.Tags != nil {
		patch.Tags = *req.Tags
		patch.SetTags = true
	}

	idea, err := s.svc.Ideas.Update(c.Request().Context(), currentUser(c).ID, c.Param("id"), patch)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, idea)
}

func (s *Server) handleDeleteIdea(c echo.Context) error {
	if err := s.svc.Ideas.Delete(c.Request().Context(), currentUser(c).ID, c.Param("id")); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Idea deleted"})
}

func (s *Server) handleShareIdea(c echo.Context) error {
	idea, err := s.svc.Ideas.Share(c.Request().Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, idea)
}

func (s *Server) handleUnshareIdea(c echo.Context) error {
	idea, err := s.svc.Ideas.Unshare(c.Request().Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, idea)
}

func (s *Server) handlePresignMedia(c echo.Context) error {
	var req mediaRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.ErrValidation)
	}

	up, err := s.svc.Ideas.PresignMediaUpload(c.Request().Context(), currentUser(c).ID, req.ContentType)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, up)
}

func (s *Server) handleGetIdeaMedia(c echo.Context) error {
	url, err := s.svc.Ideas.GetIdeaMedia(c.Request().Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

func (s *Server) handleListShared(c echo.Context) error {
	list, err := s.svc.Ideas.ListShared(c.Request().Context())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleGetShared(c echo.Context) error {
	idea, err := s.svc.Ideas.GetShared(c.Request().Context(), c.Param("shareId"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, idea)
}
