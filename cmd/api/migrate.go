package main

import (
	"github.com/fyyur/backend/internal/models"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the venues, artists and shows tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closer := bootstrap()
			defer closer.Close()

			db, err := models.InitDB(cfg, logger)
			if err != nil {
				return err
			}
			if err := models.Migrate(db); err != nil {
				return err
			}
			logger.Info().Msg("migrations applied")
			return nil
		},
	}
}
