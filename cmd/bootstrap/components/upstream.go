package components

import (
	"log/slog"
	"net/http"

	"courtmate-gateway/internal/domain/session"
	"courtmate-gateway/internal/infra/oauth"
	"courtmate-gateway/internal/infra/upstream"
	"courtmate-gateway/internal/pkg/config"
	"courtmate-gateway/internal/usecase/commands"
	"courtmate-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

// Upstreams holds one client per backing service.
type Upstreams struct {
	User       *upstream.Client
	Facilities *upstream.Client
	Booking    *upstream.Client
}

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		upstream.NewHTTPClient,
		NewUpstreams,
		NewForwarders,
		NewGoogleProvider,
		// User service
		fx.Annotate(
			func(u Upstreams) *upstream.AuthAPI { return upstream.NewAuthAPI(u.User) },
			fx.As(new(commands.AuthGateway)),
			fx.As(new(session.Refresher)),
		),
		// Facilities service
		fx.Annotate(
			func(u Upstreams, cfg config.Config) *upstream.FacilitiesAPI {
				return upstream.NewFacilitiesAPI(u.Facilities, cfg.Upstream.APIVersion)
			},
			fx.As(new(queries.FacilityReader)),
		),
		// Booking service
		fx.Annotate(
			func(u Upstreams) *upstream.BookingAPI { return upstream.NewBookingAPI(u.Booking) },
			fx.As(new(queries.ReservationReader)),
			fx.As(new(commands.ReservationGateway)),
		),
	),
)

func NewUpstreams(cfg config.Config, httpClient *http.Client, logger *slog.Logger) Upstreams {
	timeout := cfg.Upstream.Timeout
	return Upstreams{
		User:       upstream.NewClient(upstream.ServiceUser, cfg.Upstream.UserServiceURL, timeout, httpClient, logger),
		Facilities: upstream.NewClient(upstream.ServiceFacilities, cfg.Upstream.FacilitiesServiceURL, timeout, httpClient, logger),
		Booking:    upstream.NewClient(upstream.ServiceBooking, cfg.Upstream.BookingServiceURL, timeout, httpClient, logger),
	}
}

// NewForwarders maps the proxy service names onto their clients.
func NewForwarders(u Upstreams) map[string]commands.Forwarder {
	return map[string]commands.Forwarder{
		upstream.ServiceUser:       u.User,
		upstream.ServiceFacilities: u.Facilities,
		upstream.ServiceBooking:    u.Booking,
	}
}

// NewGoogleProvider returns nil when Google sign-in is not configured.
func NewGoogleProvider(cfg config.Config, httpClient *http.Client) *oauth.GoogleProvider {
	return oauth.NewGoogleProvider(cfg.OAuth, cfg.Server, httpClient)
}
