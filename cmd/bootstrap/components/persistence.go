package components

import (
	"calendar-booking/internal/infra/lock"
	"calendar-booking/internal/infra/readstore"
	"calendar-booking/internal/infra/repository"
	"calendar-booking/internal/usecase/commands"
	"calendar-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewScheduleRepository,
			fx.As(new(commands.ScheduleRepository)),
			fx.As(new(commands.ScheduleReads)),
		),
		fx.Annotate(
			lock.NewAdvisoryLock,
			fx.As(new(commands.DayLock)),
		),
	),
)
