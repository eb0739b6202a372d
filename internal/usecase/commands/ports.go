package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/mock_ports.go -package=commandsmock

import (
	"context"
	"encoding/json"

	"courtmate-gateway/internal/domain/reservation"
	"courtmate-gateway/internal/infra/upstream"
)

// Outbound ports. The upstream package provides the implementations.

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (upstream.AuthResult, error)
	Signup(ctx context.Context, email, password string) (json.RawMessage, error)
	Google(ctx context.Context, idToken, email, name string) (upstream.AuthResult, error)
}

type ReservationGateway interface {
	Create(ctx context.Context, accessToken string, req reservation.Request) (json.RawMessage, error)
}

// Forwarder sends a request to one backing service and returns whatever it answered.
type Forwarder interface {
	Do(ctx context.Context, req upstream.Request) (*upstream.Response, error)
}
