package models

import "time"

// FavoritesLimit caps how many favorites ListFavorites returns.
const FavoritesLimit = 100

// Favorite is a suggestion the user chose to keep. Only Suggestion is
// editable after creation.
type Favorite struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Category   string    `json:"category"`
	Prompt     string    `json:"prompt"`
	Suggestion string    `json:"suggestion"`
	CreatedAt  time.Time `json:"created_at"`
}

func (f *Favorite) OwnerID() string { return f.UserID }
