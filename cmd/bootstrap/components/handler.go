package components

import (
	"benefit-desk/internal/handler"
	"benefit-desk/internal/handler/api"
	"benefit-desk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferingHandler,
		api.NewBenefitHandler,
		api.NewModificationHandler,
		api.NewHouseholdHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
