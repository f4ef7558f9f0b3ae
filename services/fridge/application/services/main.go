package services

import (
	"fmt"

	"github.com/ghuser/fridgepal/pkg/app"
	"github.com/ghuser/fridgepal/pkg/cache"
	"github.com/ghuser/fridgepal/pkg/config"
	"github.com/ghuser/fridgepal/services/fridge/domain/repositories"
	"github.com/ghuser/fridgepal/services/fridge/infrastructure/persistence/appwrite"
	"github.com/ghuser/fridgepal/services/fridge/infrastructure/persistence/cached"
	"github.com/ghuser/fridgepal/services/fridge/infrastructure/persistence/memory"
	"github.com/ghuser/fridgepal/services/fridge/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Inventory *InventoryService
	Store     repositories.DocumentStore
}

// New selects the document store named by the configuration, wraps it with
// the Redis cache when one is connected and builds the inventory service.
func New(a *app.Application) (*Services, error) {
	store, err := NewStore(a)
	if err != nil {
		return nil, err
	}
	if a.Redis != nil {
		store = cached.NewItemStore(store, cache.NewListCache(a.Redis), a.Logger)
	}

	var pub Publisher
	if a.EventBus != nil {
		pub = a.EventBus
	}

	return &Services{
		Inventory: NewInventoryService(store, pub, a.Logger),
		Store:     store,
	}, nil
}

// NewStore builds the uncached document store for a.Config.StoreDriver.
func NewStore(a *app.Application) (repositories.DocumentStore, error) {
	cfg := a.Config
	switch cfg.StoreDriver {
	case config.StorePostgres:
		if a.Db == nil {
			return nil, fmt.Errorf("postgres store requires a database connection")
		}
		return postgres.NewItemStore(a.Db), nil
	case config.StoreAppwrite:
		return appwrite.NewItemStore(appwrite.Config{
			Endpoint:     cfg.AppwriteEndpoint,
			ProjectID:    cfg.AppwriteProjectID,
			APIKey:       cfg.AppwriteAPIKey,
			DatabaseID:   cfg.AppwriteDatabaseID,
			CollectionID: cfg.AppwriteCollectionID,
		}), nil
	case config.StoreMemory:
		return memory.NewItemStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
