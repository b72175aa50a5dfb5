package models

import (
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
)

const (
	// IdeasLimit caps how many ideas ListIdeas returns.
	IdeasLimit = 100
	// SharedLimit caps how many public ideas ListShared returns.
	SharedLimit = 50
)

// IdeaType classifies a personal idea note.
type IdeaType string

const (
	IdeaTypeNote  IdeaType = "note"
	IdeaTypeIdea  IdeaType = "idea"
	IdeaTypePhoto IdeaType = "photo"
	IdeaTypeVideo IdeaType = "video"
	IdeaTypeLink  IdeaType = "link"
)

// ParseIdeaType validates an idea type name.
func ParseIdeaType(s string) (IdeaType, error) {
	switch t := IdeaType(s); t {
	case IdeaTypeNote, IdeaTypeIdea, IdeaTypePhoto, IdeaTypeVideo, IdeaTypeLink:
		return t, nil
	default:
		return "", common.ErrValidation
	}
}

// Idea is a personal note owned by one user. It is private unless shared,
// in which case ShareID is set.
type Idea struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    *string   `json:"content"`
	Type       IdeaType  `json:"idea_type"`
	MediaURL   *string   `json:"media_url"`
	Tags       []string  `json:"tags"`
	IsPublic   bool      `json:"is_public"`
	ShareID    *string   `json:"share_id"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (i *Idea) OwnerID() string { return i.UserID }

// IdeaPatch lists the mutable idea fields; nil means "leave unchanged".
type IdeaPatch struct {
	Title   *string
	Content *string
	Tags    []string
	SetTags bool
}

// SharedIdea is the public projection of a shared idea. It carries no
// owner id.
type SharedIdea struct {
	ID         string    `json:"id"`
	ShareID    string    `json:"share_id"`
	Title      string    `json:"title"`
	Content    *string   `json:"content"`
	Type       IdeaType  `json:"idea_type"`
	MediaURL   *string   `json:"media_url"`
	Tags       []string  `json:"tags"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
