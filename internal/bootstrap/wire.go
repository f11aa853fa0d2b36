// Package bootstrap wires configuration, infrastructure, application
// services and the HTTP transport into a runnable App.
package bootstrap

import (
	"context"
	"database/sql"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/developerUmair/ecommerce-backend/internal/application/auth"
	"github.com/developerUmair/ecommerce-backend/internal/application/catalog"
	"github.com/developerUmair/ecommerce-backend/internal/config"
	redisc "github.com/developerUmair/ecommerce-backend/internal/infrastructure/caching/redis"
	"github.com/developerUmair/ecommerce-backend/internal/infrastructure/db/postgres"
	"github.com/developerUmair/ecommerce-backend/internal/infrastructure/security"
	"github.com/developerUmair/ecommerce-backend/internal/infrastructure/storage"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/handlers"
	appmw "github.com/developerUmair/ecommerce-backend/internal/transport/http/middleware"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/router"
	"github.com/developerUmair/ecommerce-backend/migrations"
)

type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB

	cache *redisc.Client
}

// New builds the full dependency graph. It fails fast on the database and
// the media host; the Redis cache is optional and degrades to direct reads.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := config.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	// Infrastructure
	userRepo := postgres.NewUserRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	productRepo := postgres.NewProductRepo(db)

	s3, err := storage.NewS3Client(cfg, zlog.Logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := s3.EnsureBucket(ctx); err != nil {
		zlog.Warn().Err(err).Msg("media bucket check failed; uploads may fail")
	}

	var cache *redisc.Client
	var catalogCache catalog.Cache
	if cfg.RedisAddr != "" {
		cache, err = redisc.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			zlog.Warn().Err(err).Msg("redis unreachable; catalog cache disabled")
		} else {
			catalogCache = cache
			zlog.Info().Str("addr", cfg.RedisAddr).Msg("redis cache ready")
		}
	}

	// Application
	hasher := security.NewBcryptHasher(security.DefaultCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	authSvc := auth.NewService(userRepo, hasher, signer, auth.Config{TokenTTL: cfg.TokenTTL})
	catalogSvc := catalog.NewService(categoryRepo, productRepo, s3, catalogCache,
		catalog.Config{CacheTTL: cfg.CacheTTL}, zlog.Logger)

	// Transport
	authH := handlers.NewAuthHandler(authSvc)
	categoriesH := handlers.NewCategoriesHandler(catalogSvc)
	productsH := handlers.NewProductsHandler(catalogSvc, cfg.MaxUploadSize)
	healthH := handlers.NewHealthHandler(db)
	authMW := appmw.NewAuth(signer, authSvc)

	handler := router.New(authH, categoriesH, productsH, healthH, authMW, cfg)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config: cfg,
		Server: srv,
		DB:     db,
		cache:  cache,
	}, nil
}

// Close releases infrastructure handles.
func (a *App) Close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}
