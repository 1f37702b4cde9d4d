package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vendorahq/vendora/internal/app"
	"github.com/vendorahq/vendora/internal/config"
)

var (
	cfgFile     string
	workdirFlag string
	backendFlag string
	ephemeral   bool
)

// vendoraApp is initialized before every command and released afterwards.
var vendoraApp *app.Application

var rootCmd = &cobra.Command{
	Use:   "vendora",
	Short: "Local inventory and sales tracker for small distribution businesses",
	Long: `Vendora tracks point-of-sale locations, products with tiered pricing,
deliveries, purchase orders and sales. All data lives in a single local
document; nothing ever leaves the machine.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if workdirFlag != "" {
			cfg.System.Workdir = workdirFlag
		}
		if backendFlag != "" {
			cfg.Storage.Backend = backendFlag
		}
		if ephemeral {
			cfg.Storage.Backend = config.BackendMemory
		}
		vendoraApp = app.NewApplication(cfg)
		return vendoraApp.Init()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if vendoraApp != nil {
			vendoraApp.Release()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <workdir>/vendora.yml)")
	rootCmd.PersistentFlags().StringVar(&workdirFlag, "workdir", "", "working directory (default ~/.vendora)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: bolt, file or memory")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep all data in memory, discard on exit")

	rootCmd.AddCommand(locationCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(deliveryCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(saleCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
