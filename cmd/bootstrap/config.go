package bootstrap

import (
	"courtmate-gateway/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig reads an optional .env file before processing the environment.
// Variables already set in the environment win over the file.
func NewConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.LoadConfig()
}
