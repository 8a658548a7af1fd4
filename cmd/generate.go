package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/fquintieri/storegen/internal/config"
	"github.com/fquintieri/storegen/internal/database"
	"github.com/fquintieri/storegen/internal/generator"
	"github.com/spf13/cobra"
)

var (
	genSeed   int64
	genReport string
	genDryRun bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Populate the database with a synthetic dataset",
	Long: `Run the full generation batch: plan randomized sizes, generate
categories, customers, products, order headers and order lines in dependency
order, then reconcile order totals. The whole run is one transaction; any
failure or interrupt rolls everything back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if genDryRun {
			gen := generator.New(cfg, nil, genSeed)
			plan, err := gen.PlanOnly()
			if err != nil {
				return err
			}
			color.Cyan("📊 Planned sizes (dry run, nothing written):")
			color.White("  categories:  %d (+1 empty, id %d)", plan.Categories, plan.EmptyCategoryID)
			color.White("  customers:   %d (id %d stays order-less)", plan.Customers, plan.OrderlessCustomerID)
			color.White("  products:    %d (%d never sold)", plan.Products, plan.DeadProducts)
			color.White("  orders:      %d", plan.Orders)
			return nil
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		// An interrupt cancels the context, which rolls the run back.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		adapter := database.NewAdapter(cfg.Database.Provider)
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		gen := generator.New(cfg, adapter, genSeed)
		summary, err := gen.Run(ctx)
		if err != nil {
			return err
		}

		summary.Print()

		if genReport != "" {
			if err := summary.WriteReport(genReport); err != nil {
				return err
			}
			color.Green("📄 Report written to %s", genReport)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "RNG seed (0 = time-based)")
	generateCmd.Flags().StringVar(&genReport, "report", "", "Write final row counts to a YAML file")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Plan sizes without writing anything")
}
