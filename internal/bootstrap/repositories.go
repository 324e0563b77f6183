package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/BabyBank_Go/internal/backend"
	"github.com/osse101/BabyBank_Go/internal/cache"
	"github.com/osse101/BabyBank_Go/internal/config"
	"github.com/osse101/BabyBank_Go/internal/database"
	"github.com/osse101/BabyBank_Go/internal/database/postgres"
	"github.com/osse101/BabyBank_Go/internal/handler"
	"github.com/osse101/BabyBank_Go/internal/listing"
	"github.com/osse101/BabyBank_Go/internal/repository"
	"github.com/osse101/BabyBank_Go/internal/repository/memory"
	"github.com/osse101/BabyBank_Go/internal/storage"
)

// Repositories holds the stores selected by configuration together with
// the readiness checks and cleanup of the connections behind them.
type Repositories struct {
	Listings  repository.Listing
	Accounts  repository.Account
	Submitter listing.Submitter

	ReadinessChecks map[string]handler.HealthChecker
	closers         []func()
}

// InitializeRepositories builds the listing and account stores for cfg.Backend.
// When REDIS_ADDR is set, listing searches go through the Redis result cache.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	repos := &Repositories{ReadinessChecks: make(map[string]handler.HealthChecker)}

	switch cfg.Backend {
	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		repos.closers = append(repos.closers, pool.Close)
		if err := database.Migrate(ctx, pool); err != nil {
			repos.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		repos.Listings = postgres.NewListingRepository(pool)
		repos.Accounts = postgres.NewAccountRepository(pool)
		repos.ReadinessChecks[CheckDatabase] = handler.HealthCheckFunc(pool.Ping)

	case config.BackendHTTP:
		client := backend.NewClient(backend.Config{
			BaseURL:    cfg.BackendURL,
			APIKey:     cfg.BackendAPIKey,
			Timeout:    cfg.BackendTimeout,
			RetryCount: cfg.BackendRetries,
		})
		repos.Listings = client
		// The remote API has no account endpoints; members stay local to this process
		repos.Accounts = memory.NewAccounts()
		repos.Submitter = client

	default:
		repos.Listings = memory.NewListings()
		repos.Accounts = memory.NewAccounts()
	}

	if cfg.RedisAddr != "" {
		client, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			repos.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		repos.closers = append(repos.closers, func() { _ = client.Close() })
		repos.Listings = cache.NewListingRepository(repos.Listings, client, cfg.SearchCacheTTL)
		repos.ReadinessChecks[CheckRedis] = handler.HealthCheckFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		slog.Info(LogMsgSearchCacheEnabled, "addr", cfg.RedisAddr, "ttl", cfg.SearchCacheTTL)
	}

	// Built after the cache wrap so posted listings invalidate cached searches
	if repos.Submitter == nil {
		repos.Submitter = listing.NewRepositorySubmitter(repos.Listings)
	}

	slog.Info(LogMsgBackendSelected, "backend", cfg.Backend)
	return repos, nil
}

// Close releases connections in reverse order of creation
func (r *Repositories) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
	r.closers = nil
}

// InitializeImageStore returns the S3 image store, or nil when storage is not configured
func InitializeImageStore(cfg *config.Config) (listing.ImageStore, error) {
	client, err := storage.New(storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateStorage, err)
	}
	if client == nil {
		slog.Warn(LogMsgImageStorageDisabled)
		return nil, nil
	}
	slog.Info(LogMsgImageStorageEnabled, "bucket", cfg.S3Bucket)
	return client, nil
}
