//go:build unit || e2e

package builder

import (
	"time"

	"courtmate-gateway/internal/domain/session"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ID           uuid.UUID
	UserID       string
	Email        string
	Name         string
	Provider     session.Provider
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	State        session.State
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:           uuid.New(),
		UserID:       "user-123",
		Email:        "player@example.com",
		Name:         "player@example.com",
		Provider:     session.ProviderCredentials,
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
		State:        session.StateAuthenticated,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) Build() session.Session {
	return session.Session{
		ID:           b.ID,
		UserID:       b.UserID,
		Email:        b.Email,
		Name:         b.Name,
		Provider:     b.Provider,
		AccessToken:  b.AccessToken,
		RefreshToken: b.RefreshToken,
		ExpiresAt:    b.ExpiresAt,
		State:        b.State,
	}
}
