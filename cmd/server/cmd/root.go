package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"academic-events/config"
)

var (
	// Global flags, each overriding its environment variable when set.
	logLevel    string
	logFormat   string
	storeDriver string

	rootCmd = &cobra.Command{
		Use:   "server",
		Short: "Academic events API server",
		Long: `Academic events API server.

Stores events, facilities, organizations, faculties, users and evaluations
in MongoDB and enforces the event booking rules before every write.

Configuration comes from the environment (and a .env file when present).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", "", "document store (mongo, memory)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(indexesCmd)
}

// loadConfig reads the environment and applies the global flags.
func loadConfig() (config.Config, bool) {
	cfg, loaded := config.LoadConfig()
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if storeDriver != "" {
		cfg.StoreDriver = storeDriver
	}
	return cfg, loaded
}
