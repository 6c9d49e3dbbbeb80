package components

import (
	"calendar-booking/internal/handler"
	"calendar-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewScheduleHandler,
	),
	fx.Invoke(handler.NewRouter),
)
