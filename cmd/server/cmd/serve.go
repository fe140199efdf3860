package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"academic-events/bootstrap"
	"academic-events/config"
	"academic-events/database"
	"academic-events/internal/booking"
	"academic-events/internal/metrics"
	"academic-events/internal/repository"
	"academic-events/internal/services"
)

var serverPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server and serve the /api/v1 resources.

Examples:
  # MongoDB from MONGO_URI
  server serve

  # In-memory store, handy for local development
  server serve --store memory --port 9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "listen port (default: PORT or 8000)")
}

func runServer(ctx context.Context) error {
	cfg, loaded := loadConfig()
	if serverPort != "" {
		cfg.Port = serverPort
	}

	logger := config.NewLogger(cfg.Logging)
	if !loaded {
		logger.Warn().Msg(".env file not found, using system environment variables")
	}
	metrics.Init(cfg.AppName, cfg.AppVersion, cfg.StoreDriver)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	locker, closeLocker, err := openLocker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLocker()

	app := newApp(cfg, services.New(repos, locker, logger), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("listening")
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, logger zerolog.Logger) (repository.Repositories, func(), error) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Warn().Msg("using in-memory store, data is lost on exit")
		return repository.NewMemoryRepositories(), func() {}, nil
	case "mongo":
	default:
		return repository.Repositories{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return repository.Repositories{}, nil, err
	}
	closeFn := func() {
		if err := database.DisconnectMongo(client); err != nil {
			logger.Error().Err(err).Msg("mongo disconnect")
		}
	}

	db := client.Database(cfg.MongoDB)
	names, err := bootstrap.EnsureIndexes(ctx, db)
	if err != nil {
		closeFn()
		return repository.Repositories{}, nil, fmt.Errorf("ensure indexes failed: %w", err)
	}
	logger.Info().Str("db", cfg.MongoDB).Strs("indexes", names).Msg("connected to MongoDB")

	return repository.NewMongoRepositories(db), closeFn, nil
}

func openLocker(ctx context.Context, cfg config.Config, logger zerolog.Logger) (booking.Locker, func(), error) {
	if cfg.RedisAddr == "" {
		return booking.NewLocal(), func() {}, nil
	}

	rdb, err := booking.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("booking locks held in redis")
	return booking.NewRedis(rdb, cfg.BookingLockTTL), func() { _ = rdb.Close() }, nil
}
