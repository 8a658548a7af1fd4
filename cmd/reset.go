package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/fquintieri/storegen/internal/config"
	"github.com/fquintieri/storegen/internal/database"
	"github.com/spf13/cobra"
)

var resetDrop bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all generated rows",
	Long: `
Clear every generated table and restart its identity sequence, restoring the
schema to the empty pre-run state a fresh generation expects.

⚠️  WARNING: This permanently deletes all generated data!

Use --force to skip the confirmation prompt, --drop to drop the tables
entirely instead of clearing them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			color.Yellow("⚠️  This will permanently delete all generated data.")
			fmt.Print("Type 'yes' to continue: ")
			reader := bufio.NewReader(os.Stdin)
			answer, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if strings.TrimSpace(answer) != "yes" {
				color.Cyan("Aborted.")
				return nil
			}
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

		if resetDrop {
			if err := adapter.DropSchema(ctx); err != nil {
				return err
			}
			color.Green("✅ Tables dropped")
			return nil
		}

		if err := adapter.TruncateAll(ctx); err != nil {
			return err
		}
		color.Green("✅ Tables cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetDrop, "drop", false, "Drop the tables instead of clearing them")
}
