package components

import (
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/infra/uow"
	"resource-booking/internal/pkg/config"
	"resource-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories and read stores are built per transaction inside the unit of
// work, so only the pool-level pieces are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewQueries,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewUnitOfWork(pool *pgxpool.Pool, q *pgquery.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, cfg.Booking.TxMaxRetries)
}
