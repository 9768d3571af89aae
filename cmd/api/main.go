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

	"banking-core/config"
	"banking-core/internal/adapter/boletogen"
	httpHandler "banking-core/internal/adapter/http/handler"
	"banking-core/internal/adapter/ledger"
	pgStorage "banking-core/internal/adapter/storage/postgres"
	redisStorage "banking-core/internal/adapter/storage/redis"
	"banking-core/internal/core/ports"
	"banking-core/internal/service"
	"banking-core/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting banking core")

	ctx := context.Background()

	if cfg.Database.MigrateOnStart {
		if err := pgStorage.Migrate(cfg.Database.MigrationURL(), log); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Repositories
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	boletoRepo := pgStorage.NewBoletoRepo(pool)
	salaryRepo := pgStorage.NewSalaryRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	personRepo := pgStorage.NewPersonRepo(pool)
	domainRepo := pgStorage.NewDomainRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis-backed coordination
	locker := redisStorage.NewWalletLock(rdb, cfg.Lock.TTL, cfg.Lock.Wait, log)
	journal := redisStorage.NewReconciliationJournal(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Remote systems
	ledgerClient := ledger.NewClient(cfg.Ledger, log)
	generator := boletogen.NewClient(cfg.Boleto, log)

	// Orchestrators
	accountables := service.NewAccountableService(domainRepo, personRepo, log)
	paymentSvc := service.NewPaymentService(
		paymentRepo,
		personRepo,
		walletRepo,
		accountables,
		ledgerClient,
		locker,
		journal,
		transactor,
		cfg.Ledger.RootAsset,
		log,
	)
	boletoSvc := service.NewBoletoService(
		boletoRepo,
		domainRepo,
		personRepo,
		accountables,
		ledgerClient,
		generator,
		journal,
		transactor,
		cfg.Boleto.BankName,
		log,
	)
	payrollSvc := service.NewPayrollService(salaryRepo, personRepo, paymentSvc, transactor, cfg.Payroll.Workers, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		BoletoSvc:      boletoSvc,
		PayrollSvc:     payrollSvc,
		Journal:        journal,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
		Mode:   cfg.Server.Mode,
		Logger: log,
	})

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
