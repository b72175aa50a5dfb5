// Package models defines the server-side entities persisted by the
// repositories and returned by the services.
package models

import (
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
)

// Theme is the UI theme preference of an identity.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", common.ErrInvalidTheme
	}
}

// User is a registered identity. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Theme        Theme     `json:"theme"`
	CreatedAt    time.Time `json:"created_at"`
}
