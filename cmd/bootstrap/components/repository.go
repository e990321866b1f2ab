package components

import (
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/db"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/readstore"
	repo_impl "github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/repository"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/uow"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/config"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/commands"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPgxTxManager,
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewSequenceRepository,
			fx.As(new(commands.SequenceRepository)),
		),
		fx.Annotate(
			repo_impl.NewJobRepository,
			fx.As(new(commands.JobRepository)),
		),
		// Read-side stores for queries; the listing store doubles as the
		// write side's title resolver.
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			NewListingReadStore,
			fx.As(new(commands.ListingStore)),
			fx.As(new(queries.ListingReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewListingReadStore(dbtx db.DBTX, cache *redis.Client, cfg config.Config) *readstore.ListingReadStore {
	return readstore.NewListingReadStore(dbtx, cache, cfg.Redis.TitleTTL)
}
