package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"academic-events/bootstrap"
	"academic-events/config"
	"academic-events/database"
)

var indexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the MongoDB indexes and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, loaded := loadConfig()
		logger := config.NewLogger(cfg.Logging)
		if !loaded {
			logger.Warn().Msg(".env file not found, using system environment variables")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		return ensureIndexes(ctx, cfg, logger, cmd.OutOrStdout())
	},
}

// ensureIndexes creates the indexes and prints one index name per line.
func ensureIndexes(ctx context.Context, cfg config.Config, logger zerolog.Logger, out io.Writer) error {
	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.DisconnectMongo(client); err != nil {
			logger.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	names, err := bootstrap.EnsureIndexes(ctx, client.Database(cfg.MongoDB))
	if err != nil {
		return fmt.Errorf("ensure indexes failed: %w", err)
	}
	logger.Info().Str("db", cfg.MongoDB).Strs("indexes", names).Msg("indexes ensured")
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
