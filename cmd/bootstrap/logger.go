package bootstrap

import (
	"log/slog"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/middleware"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewSlogLogger,
	),
)

// NewSlogLogger builds the logger from LogConfig (level, timezone, time
// format); middleware.NewLogger installs it as the process default so
// package-level slog calls share the same handler.
func NewSlogLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
