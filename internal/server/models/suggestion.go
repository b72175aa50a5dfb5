package models

import "time"

// HistoryLimit caps how many suggestions ListHistory returns.
const HistoryLimit = 50

// Suggestion is an immutable history record of one successful generation.
type Suggestion struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	Category   string    `json:"category"`
	Prompt     string    `json:"prompt"`
	Suggestion string    `json:"suggestion"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Suggestion) OwnerID() string { return s.UserID }
