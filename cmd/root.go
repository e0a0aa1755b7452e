// Package cmd implements the hearth command tree.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/hearthbudget/hearth/internal/cli"
	"github.com/hearthbudget/hearth/internal/config"
	"github.com/hearthbudget/hearth/internal/model"
	"github.com/hearthbudget/hearth/internal/plan"
	"github.com/hearthbudget/hearth/internal/store"
	"github.com/hearthbudget/hearth/pkg/logging"
)

var (
	flagDataPath string
	flagMonths   int
	flagRentMode string
	flagDebug    bool
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "hearth",
	Short: "Household budget planner",
	Long:  "Plan a monthly household budget: normalize paychecks, split rent, allocate categories, and project debt payoff and savings growth.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup(flagDebug, flagQuiet)
	},
	RunE: runPlan,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataPath, "data", "d", "", "Household document path (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&flagMonths, "months", "n", 0, "Projection horizon in months (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagRentMode, "rent-mode", "r", "", "Rent split policy: fair or equal (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig resolves config with flag overrides applied.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataPath != "" {
		cfg.Storage.Path = flagDataPath
	}
	if flagMonths > 0 {
		cfg.General.Months = flagMonths
	}
	if flagRentMode != "" {
		cfg.General.RentMode = flagRentMode
	}
	cli.SetLocale(cfg.Appearance.Locale)
	return cfg, nil
}

// loadHousehold is the shared loading path used by all commands: open
// the configured store, load the sanitized household, apply the rent
// mode override.
func loadHousehold(ctx context.Context) (*model.Household, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}

	st, err := store.Open(cfg)
	if err != nil {
		return nil, cfg, err
	}
	defer st.Close()

	h, err := st.Load(ctx)
	if err != nil {
		return nil, cfg, err
	}

	if mode := model.RentMode(cfg.General.RentMode); mode.Valid() {
		h.RentMode = mode
	}
	return h, cfg, nil
}

// buildPlan loads the household and derives the full plan.
func buildPlan(ctx context.Context) (*plan.Plan, config.Config, error) {
	h, cfg, err := loadHousehold(ctx)
	if err != nil {
		return nil, cfg, err
	}
	pl, err := plan.Build(h, cfg.General.Months)
	if err != nil {
		return nil, cfg, err
	}
	return pl, cfg, nil
}
