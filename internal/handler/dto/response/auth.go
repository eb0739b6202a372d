package response

import (
	"encoding/json"
	"time"

	"courtmate-gateway/internal/domain/session"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SessionResponse is returned by login and session reads. Tokens never leave the gateway.
type SessionResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func FromSession(s session.Session) SessionResponse {
	return SessionResponse{
		User: UserResponse{
			ID:    s.UserID,
			Email: s.Email,
			Name:  s.Name,
		},
		ExpiresAt: s.ExpiresAt,
	}
}

type RegisterResponse struct {
	Message string          `json:"message"`
	User    json.RawMessage `json:"user,omitempty"`
}

type VerifyResponse struct {
	Status string `json:"status"`
}

type ConfigResponse struct {
	GoogleMapsAPIKey string `json:"googleMapsApiKey"`
}
