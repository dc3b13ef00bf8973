package handler

import (
	"time"

	"game-economy/internal/adapter/http/middleware"
	"game-economy/internal/adapter/metrics"
	redisStore "game-economy/internal/adapter/storage/redis"
	"game-economy/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxRequestBody = 64 << 10

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Economy  ports.EconomyService
	TokenSvc ports.TokenService

	RateLimit      middleware.RateLimitRule   // zero Limit = rate limiting disabled
	RateLimitStore *redisStore.RateLimitStore // nil = in-process limiter
	LocalLimiter   *middleware.HostLimiter    // used when RateLimitStore is nil
	Idempotency    ports.IdempotencyCache     // nil = Idempotency-Key ignored
	IdempotencyTTL time.Duration

	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Recorder // nil = metrics disabled
	MetricsPath    string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxRequestBody))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	// Health check (deep: storage and redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1",
		middleware.JWTAuth(deps.TokenSvc, deps.Logger),
		rateLimiter(deps),
		middleware.AuditLog(deps.Logger),
	)

	// Idempotency-Key is honored on ledger mutations only.
	idem := func(c *gin.Context) { c.Next() }
	if deps.Idempotency != nil {
		idem = middleware.Idempotency(deps.Idempotency, deps.IdempotencyTTL, deps.Logger)
	}

	economyHandler := NewEconomyHandler(deps.Economy)
	v1.GET("/economy", economyHandler.Info)
	currencies := v1.Group("/currencies")
	{
		currencies.GET("", economyHandler.ListCurrencies)
		currencies.GET("/:currency", economyHandler.GetCurrency)
		currencies.GET("/:currency/format", economyHandler.Format)
	}

	playerHandler := NewPlayerHandler(deps.Economy)
	players := v1.Group("/players/:player")
	{
		players.GET("/balance", playerHandler.GetBalance)
		players.GET("/has", playerHandler.Has)
		players.GET("/accounts", playerHandler.GetAccount)
		players.POST("/accounts", playerHandler.CreateAccount)
		players.POST("/withdraw", idem, playerHandler.Withdraw)
		players.POST("/deposit", idem, playerHandler.Deposit)
	}

	bankHandler := NewBankHandler(deps.Economy)
	banks := v1.Group("/banks")
	{
		banks.GET("", bankHandler.List)
		banks.POST("", bankHandler.Create)
		banks.DELETE("/:name", bankHandler.Delete)
		banks.GET("/:name/owner/:player", bankHandler.IsOwner)
		banks.GET("/:name/balance", bankHandler.Balance)
		banks.GET("/:name/has", bankHandler.Has)
		banks.POST("/:name/withdraw", idem, bankHandler.Withdraw)
		banks.POST("/:name/deposit", idem, bankHandler.Deposit)
	}

	return r
}

func rateLimiter(deps RouterDeps) gin.HandlerFunc {
	switch {
	case deps.RateLimit.Limit <= 0:
		return func(c *gin.Context) { c.Next() }
	case deps.RateLimitStore != nil:
		return middleware.RateLimiter(deps.RateLimitStore, deps.RateLimit, deps.Logger)
	case deps.LocalLimiter != nil:
		return middleware.LocalRateLimiter(deps.LocalLimiter)
	default:
		return func(c *gin.Context) { c.Next() }
	}
}
