package handler

import (
	"offpay/internal/adapter/http/middleware"
	redisStore "offpay/internal/adapter/storage/redis"
	"offpay/internal/core/domain"
	"offpay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	SettlementSvc  ports.SettlementService
	AssetSvc       ports.AssetService
	TokenSvc       ports.TokenService
	FactRepo       ports.FactRepository
	Pool           ports.CustodialPool
	AdminAddress   domain.Address
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Operator login ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/login", rl("auth_login"), authHandler.Login)

	// --- Holder ledger operations (the revealed secret authorizes payments;
	// balance moves require a funded external account, so no API auth here) ---
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	ledger := v1.Group("/ledger")
	{
		ledger.POST("/deposit", rl("ledger"), ledgerHandler.Deposit)
		ledger.POST("/withdraw", rl("ledger"), ledgerHandler.Withdraw)
		ledger.POST("/tail/refresh", rl("ledger"), ledgerHandler.RefreshTail)
		ledger.PUT("/limits/payment", rl("ledger"), ledgerHandler.SetPaymentLimit)
		ledger.PUT("/limits/tail-updates", rl("ledger"), ledgerHandler.SetTailUpdateLimit)
	}

	// --- Two-phase settlement ---
	settlementHandler := NewSettlementHandler(deps.SettlementSvc)
	settlement := v1.Group("/settlement")
	{
		settlement.POST("/precommit", rl("settlement"), settlementHandler.Precommit)
		settlement.POST("/complete", rl("settlement"), settlementHandler.Complete)
	}

	// --- Public reads ---
	queryHandler := NewQueryHandler(deps.LedgerSvc, deps.AssetSvc)
	v1.GET("/accounts/:address", rl("queries"), queryHandler.GetAccount)
	v1.GET("/accounts/:address/balance/:asset", rl("queries"), queryHandler.GetBalance)
	v1.GET("/assets/:id", rl("queries"), queryHandler.GetAsset)

	// --- Admin (JWT-authenticated operator) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminHandler := NewAdminHandler(deps.AssetSvc, deps.FactRepo, deps.Pool, deps.AdminAddress)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/assets", rl("admin"), adminHandler.AddAsset)
		admin.PUT("/fee-rate", rl("admin"), adminHandler.SetFeeRate)
		admin.GET("/facts", rl("admin"), adminHandler.ListFacts)
		admin.GET("/pool/:asset", rl("admin"), adminHandler.PoolBalance)
	}

	return r
}
