package components

import (
	"courtmate-gateway/internal/handler"
	"courtmate-gateway/internal/handler/api"
	"courtmate-gateway/internal/handler/middleware"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewFacilityHandler,
		api.NewProxyHandler,
		api.NewConfigHandler,
		middleware.NewSessionMiddleware,
		NewRateLimiter,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Facility *api.FacilityHandler
	Proxy    *api.ProxyHandler
	Config   *api.ConfigHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Booking:  p.Booking,
		Facility: p.Facility,
		Proxy:    p.Proxy,
		Config:   p.Config,
	}
}

type middlewareParams struct {
	fx.In

	Logger      *middleware.Logger
	Session     *middleware.SessionMiddleware
	RateLimiter *middleware.RateLimiter
}

func NewMiddlewares(p middlewareParams) handler.Middlewares {
	return handler.Middlewares{
		Logger:      p.Logger,
		Session:     p.Session,
		RateLimiter: p.RateLimiter,
	}
}

func NewRateLimiter(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, clk)
}
