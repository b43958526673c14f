package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"offpay/config"
	httpHandler "offpay/internal/adapter/http/handler"
	pgStorage "offpay/internal/adapter/storage/postgres"
	redisStorage "offpay/internal/adapter/storage/redis"
	"offpay/internal/core/domain"
	"offpay/internal/core/ports"
	"offpay/internal/service"
	"offpay/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("chain_mode", cfg.Settlement.ChainMode).
		Msg("Starting Offpay Ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	assetRepo := pgStorage.NewAssetRepo(pool)
	paramsRepo := pgStorage.NewParamsRepo(pool)
	factRepo := pgStorage.NewFactRepo(pool)
	custodyRepo := pgStorage.NewCustodyRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Seed system params on first boot; subsequent boots keep the
	// stored fee rate.
	feeRate, err := paramsRepo.Ensure(ctx, cfg.Settlement.FeeRateBps)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize system params")
	}
	log.Info().Int64("fee_rate_bps", feeRate).Msg("System params ready")

	// Initialize Redis stores
	precommitStore := redisStorage.NewPrecommitStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	chainSvc := service.NewHashChainService(domain.ChainMode(cfg.Settlement.ChainMode))
	clock := service.SystemClock{}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(cfg.Operator.Username, cfg.Operator.PasswordHash, hashSvc, tokenSvc)
	ledgerSvc := service.NewLedgerService(
		accountRepo,
		assetRepo,
		factRepo,
		custodyRepo,
		transactor,
		clock,
		log,
	)
	settlementSvc := service.NewSettlementService(
		accountRepo,
		assetRepo,
		paramsRepo,
		factRepo,
		precommitStore,
		custodyRepo,
		transactor,
		chainSvc,
		clock,
		domain.Address(cfg.Ledger.PaymasterAddress),
		cfg.Settlement.PrecommitWindow,
		log,
	)
	assetSvc := service.NewAssetService(assetRepo, paramsRepo, clock, domain.Address(cfg.Ledger.AdminAddress), log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		SettlementSvc:  settlementSvc,
		AssetSvc:       assetSvc,
		TokenSvc:       tokenSvc,
		FactRepo:       factRepo,
		Pool:           custodyRepo,
		AdminAddress:   domain.Address(cfg.Ledger.AdminAddress),
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
