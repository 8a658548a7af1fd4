package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.4.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════╗",
		"║  ███████╗████████╗ ██████╗ ██████╗ ███████╗      ║",
		"║  ██╔════╝╚══██╔══╝██╔═══██╗██╔══██╗██╔════╝      ║",
		"║  ███████╗   ██║   ██║   ██║██████╔╝█████╗        ║",
		"║  ╚════██║   ██║   ██║   ██║██╔══██╗██╔══╝        ║",
		"║  ███████║   ██║   ╚██████╔╝██║  ██║███████╗      ║",
		"║  ╚══════╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚══════╝ gen  ║",
		"║                                                  ║",
		"║     🛒 Synthetic Store Dataset Generator 🛒      ║",
		"╚══════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "storegen",
	Short: "Populate an e-commerce schema with realistic synthetic data",
	Long: `
storegen fills a five-table store schema (categories, customers, products,
order headers, order lines) with a large, internally consistent dataset:
long-tail customer and product selection, controlled null injection,
deliberately dead rows, and randomized sizes on every run.

Database Support:
- PostgreSQL (COPY bulk loading)
- MySQL
- SQLite (embedded databases)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("storegen CLI version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./storegen.config.json)")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("storegen.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
