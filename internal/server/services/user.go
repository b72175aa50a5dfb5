package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/logging"
	"github.com/dmitrijs2005/ideae/internal/server/auth"
	"github.com/dmitrijs2005/ideae/internal/server/models"
	"github.com/dmitrijs2005/ideae/internal/server/passhash"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/users"
)

var (
	hashPassword   = passhash.Hash
	verifyPassword = passhash.Verify
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService handles registration, login, session token resolution and
// the identity's settings.
type UserService struct {
	users         users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	log           logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService. secret signs every session
// token; it is never re-read after construction.
func NewUserService(repo users.Repository, secret []byte, tokenValidity time.Duration, log logging.Logger) *UserService {
	return &UserService{
		users:         repo,
		jwtSecret:     append([]byte(nil), secret...),
		tokenValidity: tokenValidity,
		log:           log,
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an identity and opens a session for it.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, common.ErrValidation
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           newID(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Theme:        models.ThemeLight,
		CreatedAt:    now(),
	}

	u, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", u.ID)
	return s.openSession(u)
}

// Login verifies the credentials and opens a session. An unknown email and
// a wrong password both yield common.ErrInvalidCredentials after the same
// hashing work.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = verifyPassword(password, s.dummy())
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	ok, err := verifyPassword(password, user.PasswordHash)
	if err != nil {
		s.log.Warn(ctx, "stored password hash unusable", "user_id", user.ID, "error", err)
		return nil, common.ErrInvalidCredentials
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	return s.openSession(user)
}

// ResolveToken maps a bearer token to the identity it was issued for.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrUnauthenticated
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return user, nil
}

// GetSelf returns the identity view of userID.
func (s *UserService) GetSelf(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return user, nil
}

// UpdateTheme stores the theme preference of userID.
func (s *UserService) UpdateTheme(ctx context.Context, userID, theme string) (*models.User, error) {
	t, err := models.ParseTheme(theme)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateTheme(ctx, userID, t)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("error updating theme: %w", err)
	}
	return user, nil
}

func (s *UserService) openSession(user *models.User) (*AuthResult, error) {
	token, _, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{Token: token, User: user}, nil
}

// dummy returns a throwaway hash used to equalise login effort for
// unknown emails.
func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		pw, err := common.MakeRandHexString(16)
		if err == nil {
			s.dummyHash, err = hashPassword(pw)
		}
		if err != nil {
			s.log.Error(context.Background(), "failed to prepare dummy hash", "error", err)
		}
	})
	return s.dummyHash
}
