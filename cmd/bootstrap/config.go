package bootstrap

import (
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
