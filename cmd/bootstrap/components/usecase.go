package components

import (
	"log/slog"

	"courtmate-gateway/internal/domain/session"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/config"
	"courtmate-gateway/internal/usecase"
	"courtmate-gateway/internal/usecase/commands"
	"courtmate-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewRefreshPolicy,
	usecase.NewSessionManager,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewProxyCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewBookingQueries,
		queries.NewNearbyQueries,
	),
)

func NewRefreshPolicy(cfg config.Config) session.RefreshPolicy {
	return session.RefreshPolicy{
		Lookahead: cfg.Session.RefreshLookahead,
		Lifetime:  cfg.Session.AccessTokenLifetime,
	}
}

func NewBookingQueries(
	reservations queries.ReservationReader,
	facilities queries.FacilityReader,
	cfg config.Config,
	logger *slog.Logger,
) queries.BookingQueries {
	return queries.NewBookingQueries(reservations, facilities, cfg.Upstream.EnrichmentTimeout, logger)
}
