package bootstrap

import (
	"courtmate-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	JWTModule,
	StoreModule,
	components.UpstreamModule,
	components.UseCaseModule,
	components.HandlerModule,
)
