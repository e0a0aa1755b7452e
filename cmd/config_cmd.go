package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthbudget/hearth/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Projection months: %d\n", cfg.General.Months)
	fmt.Printf("    Rent split mode:   %s\n", cfg.General.RentMode)
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:  %s\n", cfg.Storage.Backend)
	fmt.Printf("    Document: %s\n", cfg.DocumentPath())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:  %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Locale: %s\n", cfg.Appearance.Locale)
	fmt.Println()

	fmt.Println("  Run `hearth setup` to reconfigure.")
	return nil
}
