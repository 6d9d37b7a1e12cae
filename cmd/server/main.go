package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"openskies/airfield/internal/api"
	"openskies/airfield/internal/auth"
	"openskies/airfield/internal/common"
	"openskies/airfield/internal/config"
	"openskies/airfield/internal/db"
	"openskies/airfield/internal/db/repositories"
	"openskies/airfield/internal/logging"
	"openskies/airfield/internal/metrics"
	"openskies/airfield/internal/routes"
	"openskies/airfield/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Airfield starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	sqlxDB, err := db.InitPostgres(cfg.PostgresDSN())
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (sqlx)", "error", err.Error())
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM and migrate the user store
	gormDB, err := db.InitPostgresORM(cfg.PostgresDSN())
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (GORM)", "error", err.Error())
	}
	logging.Info("Connected to Postgres (GORM)")

	loginEvents, err := repositories.NewLoginEventRepo(sqlxDB)
	if err != nil {
		logging.Fatal("Failed to prepare login audit table", "error", err.Error())
	}

	userRepo := repositories.NewUserRepository(gormDB)
	authorizer := auth.NewAuthorizer(userRepo)

	cacheSvc := common.NewCacheService(300, 600)

	// Sessions live in Redis when configured, otherwise in-process
	deps := &api.Dependencies{
		Users:       userRepo,
		LoginEvents: loginEvents,
		Authorizer:  authorizer,
		Signer:      common.NewTokenSigner([]byte(cfg.SessionSecret)),
		SqlxDB:      sqlxDB,
		UpSince:     time.Now(),
	}

	if cfg.RedisConfigured() {
		redisClient := common.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		deps.Redis = redisClient
		deps.Sessions = common.NewSessionService(redisClient)
	} else {
		logging.Warn("REDIS_HOST not set, sessions will not survive a restart")
		deps.Sessions = common.NewCacheSessionStore(cacheSvc)
	}

	// Load the airport collection and start the persistence worker
	airports, err := store.LoadFile(cfg.AirportsFile)
	if err != nil {
		logging.Fatal("Failed to load airports file",
			"path", cfg.AirportsFile,
			"error", err.Error(),
		)
	}
	logging.Info("Loaded airports file",
		"path", cfg.AirportsFile,
		"records", len(airports),
	)

	metricsReg := metrics.NewMetricsRegistry()
	deps.Metrics = metricsReg

	persister := store.NewFilePersister(cfg.AirportsFile, metricsReg)
	deps.Airports = store.NewStore(airports, persister, cacheSvc)
	metricsReg.StoreRecords.Set(float64(len(airports)))

	router := routes.RegisterRoutes(deps)

	// Metrics endpoint lives outside the chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metricsReg.Registry, promhttp.HandlerOpts{}))
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server exited with error", "error", err.Error())
	}

	// Drain any pending snapshot before giving up the process
	persister.Close()

	if deps.Redis != nil {
		_ = deps.Redis.Close()
	}
}
