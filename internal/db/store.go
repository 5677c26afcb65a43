package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/config"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/infra/repository"
)

// Store is what every backend provides: reservations plus their audit trail.
type Store interface {
	domain.Repository
	audit.Store
}

// OpenStore connects the backend selected by cfg.StoreDriver. When migrate
// is set the schema (postgres) or indexes (mongo) are created first. The
// returned func releases the connection.
func OpenStore(
	ctx context.Context,
	cfg *config.Config,
	loc *time.Location,
	migrate bool,
) (Store, func(context.Context) error, error) {

	switch cfg.StoreDriver {
	case config.StorePostgres:
		gdb, err := NewDB(cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if migrate {
			if err := Migrate(gdb); err != nil {
				return nil, nil, err
			}
		}
		closeFn := func(context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		log.Println("[db] using postgres store")
		return repository.NewReservationGormRepository(gdb), closeFn, nil

	case config.StoreMongo:
		client, err := NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewReservationMongoRepository(client.Database(cfg.MongoDatabase), loc)
		if migrate {
			if err := repo.EnsureIndexes(ctx); err != nil {
				_ = client.Disconnect(ctx)
				return nil, nil, err
			}
		}
		log.Printf("[db] using mongo store (database %s)", cfg.MongoDatabase)
		return repo, client.Disconnect, nil

	case config.StoreMemory:
		log.Println("[db] using in-memory store, data is lost on exit")
		return repository.NewMemoryRepository(), func(context.Context) error { return nil }, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
