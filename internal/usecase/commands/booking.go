package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/mock_booking.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"

	"courtmate-gateway/internal/domain/reservation"
	"courtmate-gateway/internal/infra/upstream"
	"courtmate-gateway/internal/pkg/errs"
)

var ErrBookingUnauthorized = errs.New("booking service rejected the access token")

type BookingCommands interface {
	Create(ctx context.Context, accessToken string, req reservation.Request) (json.RawMessage, error)
}

type bookingCommandsImpl struct {
	gateway ReservationGateway
	logger  *slog.Logger
}

func NewBookingCommands(gateway ReservationGateway, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// Create forwards an already validated request. Overlap, pricing and availability
// checks belong to the booking service.
func (b *bookingCommandsImpl) Create(ctx context.Context, accessToken string, req reservation.Request) (json.RawMessage, error) {
	created, err := b.gateway.Create(ctx, accessToken, req)
	if err != nil {
		if upstream.IsRejected(err) && isUnauthorized(err) {
			return nil, errs.Classify(err, ErrBookingUnauthorized, errs.ErrAuth)
		}
		return nil, err
	}

	b.logger.Info("reservation created", "court_id", req.CourtID, "starts_at", req.Slot.RawStart())
	return created, nil
}
