package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/fquintieri/storegen/internal/config"
	"github.com/fquintieri/storegen/internal/database"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the store schema",
	Long: `Apply the five-table store schema for the configured provider,
including the product last-modified refresh rule that downstream
change-capture tooling relies on. Existing tables are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()

		adapter := database.NewAdapter(cfg.Database.Provider)
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		if err := adapter.ApplySchema(ctx); err != nil {
			return err
		}

		color.Green("✅ Schema applied for provider %s", cfg.Database.Provider)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
