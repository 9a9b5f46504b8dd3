package cmd

import (
	"context"
	"fmt"

	"teapot-fortune/core/database"
	"teapot-fortune/feature/fortune"

	"github.com/spf13/cobra"
)

// fortuneCmd prints a single fortune to stdout
var fortuneCmd = &cobra.Command{
	Use:   "fortune",
	Short: "Print one random fortune",
	Long:  `Selects one random entry from the database, the same way the server does, and prints its body.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		db, err := openDatabase(ctx, cfg, logg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		ctx, cancel := context.WithTimeout(ctx, cfg.Server.RequestTimeout())
		defer cancel()

		repo := fortune.NewRepository(db, cfg.Database.Table, cfg.Database.FallbackMaxID)
		entry, err := fortune.NewService(repo, cfg.Fortune, logg).Fortune(ctx)
		if err != nil {
			return fmt.Errorf("fortune selection failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), entry.Body)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(fortuneCmd)
}
