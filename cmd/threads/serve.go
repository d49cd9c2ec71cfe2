package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	fiberadapter "github.com/meharsulaiman/threads-backend/adapters/fiber"
	pgxstore "github.com/meharsulaiman/threads-backend/adapters/pgx"
	"github.com/meharsulaiman/threads-backend/config"
	"github.com/meharsulaiman/threads-backend/pkg/crypto"
	"github.com/meharsulaiman/threads-backend/pkg/logging"
	"github.com/meharsulaiman/threads-backend/pkg/metrics"
	"github.com/meharsulaiman/threads-backend/pkg/token"
	"github.com/meharsulaiman/threads-backend/services"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.Setup("threads", version, cfg.LogFormat, os.Stderr)
	slog.SetDefault(log)

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	codec, err := token.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("build token codec: %w", err)
	}

	store := pgxstore.New(pool)
	hasher := crypto.NewBcrypt(cfg.BcryptCost)

	auth := services.NewAuthService(store, hasher, codec)
	users := services.NewUserService(store, hasher)
	posts := services.NewPostService(store, store)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	app := fiber.New(fiber.Config{AppName: "threads"})
	app.Use(requestid.New())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := fiberadapter.New(auth, users, posts, log, m)
	api.RegisterRoutes(app)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.Addr)
		errCh <- app.Listen(cfg.Addr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
		return app.Shutdown()
	}
}
