package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/server/models"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/ideas"
)

// MediaStore issues object-store URLs for idea media.
type MediaStore interface {
	PresignUpload(ctx context.Context, ownerID, contentType string) (key, url string, err error)
	PresignDownload(ctx context.Context, key string) (string, error)
	OwnsKey(ownerID, key string) bool
}

// objectKeyPrefix starts every stored media object key. The owner id follows
// it, so keys never leave the owner's own views.
const objectKeyPrefix = "users/"

// IdeaInput carries the fields of a new idea.
type IdeaInput struct {
	Title    string
	Content  *string
	Type     string
	MediaURL *string
	Tags     []string
}

// MediaUpload is a freshly allocated media object and its upload URL.
type MediaUpload struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

// IdeaService manages personal ideas, their public sharing and their media.
type IdeaService struct {
	ideas ideas.Repository
	media MediaStore
}

func NewIdeaService(repo ideas.Repository, media MediaStore) *IdeaService {
	return &IdeaService{ideas: repo, media: media}
}

func mapNotFound(err error, action string) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("error %s idea: %w", action, err)
}

// checkMedia rejects object keys that live under another owner's prefix.
func (s *IdeaService) checkMedia(userID string, mediaURL *string) error {
	if mediaURL == nil || s.media == nil {
		return nil
	}
	if strings.HasPrefix(*mediaURL, objectKeyPrefix) && !s.media.OwnsKey(userID, *mediaURL) {
		return common.ErrValidation
	}
	return nil
}

func (s *IdeaService) Create(ctx context.Context, userID string, in IdeaInput) (*models.Idea, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, common.ErrValidation
	}
	t, err := models.ParseIdeaType(in.Type)
	if err != nil {
		return nil, err
	}
	if err := s.checkMedia(userID, in.MediaURL); err != nil {
		return nil, err
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	ts := now()
	idea := &models.Idea{
		ID:        newID(),
		UserID:    userID,
		Title:     title,
		Content:   in.Content,
		Type:      t,
		MediaURL:  in.MediaURL,
		Tags:      tags,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	out, err := s.ideas.Create(ctx, idea)
	if err != nil {
		return nil, mapNotFound(err, "creating")
	}
	return out, nil
}

// List returns the newest ideas of userID, optionally of one type.
func (s *IdeaService) List(ctx context.Context, userID, ideaType string) ([]*models.Idea, error) {
	var t models.IdeaType
	if ideaType != "" {
		parsed, err := models.ParseIdeaType(ideaType)
		if err != nil {
			return nil, err
		}
		t = parsed
	}

	list, err := s.ideas.ListByUser(ctx, userID, t, models.IdeasLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing ideas: %w", err)
	}
	return list, nil
}

func (s *IdeaService) Get(ctx context.Context, userID, id string) (*models.Idea, error) {
	idea, err := s.ideas.Get(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err, "reading")
	}
	return idea, nil
}

// Update applies patch. updated_at moves forward on every successful call.
func (s *IdeaService) Update(ctx context.Context, userID, id string, patch models.IdeaPatch) (*models.Idea, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, common.ErrValidation
		}
		patch.Title = &title
	}
	if patch.SetTags && patch.Tags == nil {
		patch.Tags = []string{}
	}

	idea, err := s.ideas.Update(ctx, userID, id, patch, now())
	if err != nil {
		return nil, mapNotFound(err, "updating")
	}
	return idea, nil
}

func (s *IdeaService) Delete(ctx context.Context, userID, id string) error {
	if err := s.ideas.Delete(ctx, userID, id); err != nil {
		return mapNotFound(err, "deleting")
	}
	return nil
}

// Share makes the idea publicly readable through its share id.
func (s *IdeaService) Share(ctx context.Context, userID, id string) (*models.Idea, error) {
	idea, err := s.ideas.Share(ctx, userID, id, newID(), now())
	if err != nil {
		return nil, mapNotFound(err, "sharing")
	}
	return idea, nil
}

func (s *IdeaService) Unshare(ctx context.Context, userID, id string) (*models.Idea, error) {
	idea, err := s.ideas.Unshare(ctx, userID, id, now())
	if err != nil {
		return nil, mapNotFound(err, "unsharing")
	}
	return idea, nil
}

// ListShared returns the newest public ideas of all users.
func (s *IdeaService) ListShared(ctx context.Context) ([]*models.SharedIdea, error) {
	list, err := s.ideas.ListShared(ctx, models.SharedLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing shared ideas: %w", err)
	}
	for _, idea := range list {
		hideObjectKey(idea)
	}
	return list, nil
}

// hideObjectKey drops uploaded media from a public idea: the object key and
// any URL signed for it embed the owner id. External links are kept.
func hideObjectKey(idea *models.SharedIdea) {
	if idea.MediaURL != nil && strings.HasPrefix(*idea.MediaURL, objectKeyPrefix) {
		idea.MediaURL = nil
	}
}

func (s *IdeaService) GetShared(ctx context.Context, shareID string) (*models.SharedIdea, error) {
	idea, err := s.ideas.GetShared(ctx, shareID)
	if err != nil {
		return nil, mapNotFound(err, "reading shared")
	}
	hideObjectKey(idea)
	return idea, nil
}

// PresignMediaUpload allocates a media object for userID.
func (s *IdeaService) PresignMediaUpload(ctx context.Context, userID, contentType string) (*MediaUpload, error) {
	if s.media == nil {
		return nil, common.ErrorInternal
	}
	key, url, err := s.media.PresignUpload(ctx, userID, contentType)
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}
	return &MediaUpload{Key: key, UploadURL: url}, nil
}

// GetIdeaMedia resolves the media reference of an idea: owned object keys
// become presigned download URLs, anything else is returned unchanged.
func (s *IdeaService) GetIdeaMedia(ctx context.Context, userID, id string) (string, error) {
	idea, err := s.ideas.Get(ctx, userID, id)
	if err != nil {
		return "", mapNotFound(err, "reading")
	}
	if idea.MediaURL == nil || *idea.MediaURL == "" {
		return "", common.ErrorNotFound
	}

	ref := *idea.MediaURL
	if s.media == nil || !s.media.OwnsKey(userID, ref) {
		return ref, nil
	}

	url, err := s.media.PresignDownload(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("error presigning download: %w", err)
	}
	return url, nil
}
