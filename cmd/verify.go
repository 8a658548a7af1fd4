package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/fquintieri/storegen/internal/config"
	"github.com/fquintieri/storegen/internal/database"
	"github.com/fquintieri/storegen/internal/verify"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check dataset invariants",
	Long: `Run invariant checks against the populated database: the reserved
order-less customer and empty category exist and carry the highest ids, no
order line references the dead product range, every order has lines, and
every order total matches the sum of its lines.`,
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

		color.Cyan("🔍 Verifying dataset invariants...")

		results, ok := verify.Run(ctx, adapter, cfg.Database.Provider, cfg.Generator.DeadProducts)
		for _, r := range results {
			switch {
			case r.Err != nil:
				color.Red("  ❌ %s: %v", r.Check.Name, r.Err)
			case r.Passed():
				color.Green("  ✅ %s", r.Check.Name)
			default:
				color.Red("  ❌ %s (expected %d, got %d)", r.Check.Name, r.Check.Want, r.Got)
			}
		}

		if !ok {
			return fmt.Errorf("dataset verification failed")
		}

		color.Green("\n✅ All invariants hold")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
