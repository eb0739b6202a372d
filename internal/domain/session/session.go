package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultAccessTokenLifetime is how long an upstream access token is assumed valid after issue or refresh.
	DefaultAccessTokenLifetime = time.Hour
	// DefaultRefreshLookahead opens the refresh window this long before expiry.
	DefaultRefreshLookahead = 5 * time.Minute
)

var (
	ErrMissingUserID      = errors.New("session requires a user id")
	ErrMissingAccessToken = errors.New("session requires an access token")
)

type Provider string

const (
	ProviderCredentials Provider = "credentials"
	ProviderGoogle      Provider = "google"
)

// Session is the identity and upstream credential pair held on behalf of a logged-in user.
// It is a value: refresh returns a new Session instead of mutating the old one.
type Session struct {
	ID           uuid.UUID
	UserID       string
	Email        string
	Name         string
	Provider     Provider
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	State        State
}

// Tokens is the upstream credential pair returned by login and refresh calls.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

type Identity struct {
	UserID string
	Email  string
	Name   string
}

// New creates an authenticated session whose access token expires lifetime after now.
func New(id Identity, provider Provider, tokens Tokens, now time.Time, lifetime time.Duration) (Session, error) {
	if strings.TrimSpace(id.UserID) == "" {
		return Session{}, ErrMissingUserID
	}
	if strings.TrimSpace(tokens.AccessToken) == "" {
		return Session{}, ErrMissingAccessToken
	}
	if lifetime <= 0 {
		lifetime = DefaultAccessTokenLifetime
	}
	name := id.Name
	if name == "" {
		name = id.Email
	}

	return Session{
		ID:           uuid.New(),
		UserID:       id.UserID,
		Email:        id.Email,
		Name:         name,
		Provider:     provider,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    now.Add(lifetime),
		State:        StateAuthenticated,
	}, nil
}

// NeedsRefresh reports whether now falls inside the lookahead window before ExpiresAt.
// A zero ExpiresAt means the session was already marked expired and is never refreshed again.
func (s Session) NeedsRefresh(now time.Time, lookahead time.Duration) bool {
	if s.State != StateAuthenticated || s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt.Add(-lookahead))
}

// Usable reports whether the session may be used to call upstream services.
func (s Session) Usable() bool {
	return s.State == StateAuthenticated && s.AccessToken != ""
}

// WithTokens returns a copy carrying refreshed credentials. An empty refresh token keeps the old one.
func (s Session) WithTokens(tokens Tokens, now time.Time, lifetime time.Duration) Session {
	if lifetime <= 0 {
		lifetime = DefaultAccessTokenLifetime
	}
	next := s
	next.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		next.RefreshToken = tokens.RefreshToken
	}
	next.ExpiresAt = now.Add(lifetime)
	return next
}

// Expired returns a copy marked as failed to refresh.
func (s Session) Expired() Session {
	next := s
	next.ExpiresAt = time.Time{}
	next.State = StateRefreshFailed
	return next
}
