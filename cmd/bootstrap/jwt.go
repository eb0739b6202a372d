package bootstrap

import (
	"courtmate-gateway/internal/pkg/config"
	"courtmate-gateway/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.Session.MaxAge <= 0 {
		panic("invalid SESSION_MAX_AGE: must be positive")
	}
	return jwt.NewService(cfg.Session.Secret, cfg.Session.MaxAge)
}
