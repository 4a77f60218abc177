package main

import (
	"fmt"

	"github.com/fyyur/backend/internal/models"
	"github.com/fyyur/backend/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML catalog of venues, artists and shows",
		Long: `Load a YAML catalog of venues, artists and shows in one transaction.
Without --file the built-in sample catalog is loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(file)
			if err != nil {
				return err
			}

			cfg, logger, closer := bootstrap()
			defer closer.Close()

			db, err := models.InitDB(cfg, logger)
			if err != nil {
				return err
			}
			if err := models.Migrate(db); err != nil {
				return err
			}

			res, err := seed.NewLoader(nil).Load(db.WithContext(cmd.Context()), catalog)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			logger.Info().
				Int("venues", res.Venues).
				Int("artists", res.Artists).
				Int("shows", res.Shows).
				Msg("catalog seeded")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a catalog YAML file")
	return cmd
}

func loadCatalog(file string) (*seed.Catalog, error) {
	if file == "" {
		return seed.Default()
	}
	return seed.ParseFile(file)
}
