package components

import (
	"benefit-desk/internal/infra/db"
	"benefit-desk/internal/infra/readstore"
	"benefit-desk/internal/infra/uow"
	"benefit-desk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork, already returned as its interface
		uow.NewPostgresUoW,
		// Offering
		fx.Annotate(
			readstore.NewOfferingReadStore,
			fx.As(new(queries.OfferingReadStore)),
		),
		// Benefit request
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		// Proposal
		fx.Annotate(
			readstore.NewProposalReadStore,
			fx.As(new(queries.ProposalReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Household
		fx.Annotate(
			readstore.NewHouseholdReadStore,
			fx.As(new(queries.HouseholdReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
