package components

import (
	"benefit-desk/internal/pkg/clock"
	"benefit-desk/internal/usecase"
	"benefit-desk/internal/usecase/commands"
	"benefit-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOfferingUseCase,
		commands.NewBenefitUseCase,
		commands.NewModificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOfferingQueries,
		queries.NewBenefitQueries,
		queries.NewModificationQueries,
		queries.NewHouseholdQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
