package components

import (
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewListingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
