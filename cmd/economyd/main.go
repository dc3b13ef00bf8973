package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"game-economy/config"
	httpHandler "game-economy/internal/adapter/http/handler"
	"game-economy/internal/adapter/http/middleware"
	"game-economy/internal/adapter/metrics"
	"game-economy/internal/adapter/storage/memory"
	pgStorage "game-economy/internal/adapter/storage/postgres"
	redisStorage "game-economy/internal/adapter/storage/redis"
	"game-economy/internal/core/ports"
	"game-economy/internal/service"
	"game-economy/pkg/logger"

	"github.com/gin-gonic/gin"
)

const idempotencyTTL = 24 * time.Hour

func main() {
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret (ECO_JWT_SECRET) must be set")
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting game economy")

	ctx := context.Background()

	settings, err := service.SettingsFromConfig(cfg.Economy)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid economy configuration")
	}

	var (
		accounts   ports.PlayerAccountRepository
		banks      ports.BankRepository
		transactor ports.DBTransactor
		checkers   []ports.HealthChecker
	)

	switch cfg.Storage.Driver {
	case "memory":
		store := memory.NewStore()
		accounts = memory.NewPlayerAccountRepo(store)
		banks = memory.NewBankRepo(store)
		transactor = store
		checkers = append(checkers, store)
		log.Warn().Msg("Using in-memory storage; balances are lost on exit")
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		if cfg.Storage.Migrate {
			if err := pgStorage.Migrate(ctx, pool, log); err != nil {
				log.Fatal().Err(err).Msg("Failed to apply migrations")
			}
		}

		accounts = pgStorage.NewPlayerAccountRepo(pool)
		banks = pgStorage.NewBankRepo(pool)
		transactor = pgStorage.NewTransactor(pool)
		checkers = append(checkers, pgStorage.NewLedgerHealthCheck(pool))
	default:
		log.Fatal().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver")
	}

	var recorder *metrics.Recorder
	var metricsRecorder ports.MetricsRecorder
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder()
		metricsRecorder = recorder
	}

	routerDeps := httpHandler.RouterDeps{
		TokenSvc:       service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer),
		IdempotencyTTL: idempotencyTTL,
		Metrics:        recorder,
		MetricsPath:    cfg.Metrics.Path,
		Logger:         log,
	}
	if cfg.RateLimit.Enabled {
		routerDeps.RateLimit = middleware.RateLimitRule{Limit: cfg.RateLimit.RequestsPerMinute, Window: time.Minute}
	}

	var cache ports.BalanceCache
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		cache = redisStorage.NewBalanceCache(rdb, cfg.Economy.CacheTTL)
		routerDeps.Idempotency = redisStorage.NewIdempotencyCache(rdb)
		routerDeps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewCacheHealthCheck(rdb))
	} else {
		routerDeps.LocalLimiter = middleware.NewHostLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, 0)
		log.Info().Msg("Redis disabled: no balance cache, in-process rate limiting")
	}

	svc := service.NewEconomyService(
		accounts,
		banks,
		transactor,
		cache,
		metricsRecorder,
		settings,
		logger.Component(log, "economy"),
	)
	routerDeps.Economy = svc
	routerDeps.HealthCheckers = checkers

	log.Info().
		Str("economy", svc.Name()).
		Str("default_currency", svc.DefaultCurrency()).
		Bool("banks", svc.HasBankSupport()).
		Bool("worlds", svc.HasWorldSupport()).
		Bool("multi_currency", svc.HasMultiCurrencySupport()).
		Msg("Economy ready")

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(routerDeps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
