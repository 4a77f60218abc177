package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fyyur/backend/internal/config"
	"github.com/fyyur/backend/internal/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the fyyur command tree. Without a subcommand it serves.
func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "fyyur",
		Short:         "Fyyur venue and artist booking catalog",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	return root
}

// bootstrap loads the environment, configuration and logger shared by
// every command.
func bootstrap() (*config.Config, zerolog.Logger, io.Closer) {
	envErr := godotenv.Load()

	cfg := config.New()
	logger, closer := logging.Init(cfg)
	if envErr != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}
	return cfg, logger, closer
}
