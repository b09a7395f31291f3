// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"
	"net/http"

	fulfillmentApp "github.com/forkful/v2/internal/application/fulfillment"
	shoppingApp "github.com/forkful/v2/internal/application/shopping"
	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/infrastructure/canonical"
	"github.com/forkful/v2/internal/infrastructure/catalog"
	"github.com/forkful/v2/internal/infrastructure/config"
	"github.com/forkful/v2/internal/infrastructure/http/apiserver"
	"github.com/forkful/v2/internal/infrastructure/mealplan"
	"github.com/forkful/v2/internal/infrastructure/monitoring"
	gormRepo "github.com/forkful/v2/internal/infrastructure/persistence/gorm"
	"github.com/forkful/v2/internal/infrastructure/persistence/memory"
	redisRepo "github.com/forkful/v2/internal/infrastructure/persistence/redis"
	"github.com/forkful/v2/internal/infrastructure/persistence/sqlite"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/forkful/v2/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	MetricsModule,

	// Catalog and plan sources
	SourceModule,

	// Repository modules
	RepositoryModule,

	// Service modules
	ServiceModule,

	// HTTP modules
	HTTPModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the SQLite database with GORM
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := sqlite.SetupDatabase(cfg.Database.Path, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Path),
			zap.Bool("in_memory", cfg.Database.Path == ""),
		)

		return db, nil
	},
)

// CacheModule provides caching. Redis when configured, in-memory otherwise.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		if cfg.Redis.Enable {
			client, err := redisRepo.NewClient(cfg, log)
			if err == nil {
				return redisRepo.NewCacheRepository(client, log)
			}
			log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
		}
		log.Info("Using in-memory cache")
		return memory.NewCacheRepository()
	},
)

// MetricsModule provides the Prometheus metrics collector
var MetricsModule = fx.Provide(
	monitoring.NewMetricsCollector,
)

// SourceModule provides the vendor registry, product catalog, canonicalizer
// and the seeded meal plan store
var SourceModule = fx.Provide(
	catalog.NewRegistry,
	canonical.NewCanonicalizer,
	func(cfg *config.Config, cache outbound.CacheRepository, log *zap.Logger) outbound.ProductCatalog {
		return catalog.NewCachedCatalog(catalog.NewProductPools(), cache, cfg.Cache.CatalogTTL, log)
	},
	mealplan.NewSeededStore,
	func(store *mealplan.Store) outbound.MealPlanStore { return store },
	func(store *mealplan.Store) outbound.RecipeSource { return store },
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewShoppingListRepository,
	gormRepo.NewOrderRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	shoppingApp.NewShoppingService,
	func(cfg *config.Config) fulfillmentApp.Settings {
		return fulfillmentApp.Settings{
			MatchConcurrency: cfg.Matching.Concurrency,
			CheckoutDefaults: grocer.CheckoutConfig{
				PreferredStore: cfg.Checkout.PreferredStore,
				PreferredCity:  cfg.Checkout.PreferredCity,
			},
		}
	},
	fulfillmentApp.NewFulfillmentService,
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Forkful application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			// Start HTTP server
			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Forkful application")

			// Shutdown HTTP server
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			// Close database connections
			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			// Flush logs
			_ = log.Sync()

			return nil
		},
	})
}
