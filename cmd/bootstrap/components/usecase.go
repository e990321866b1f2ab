package components

import (
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/clock"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/commands"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewListingQueries,
	),
)
