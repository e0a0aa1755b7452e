package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthbudget/hearth/internal/config"
	"github.com/hearthbudget/hearth/internal/model"
	"github.com/hearthbudget/hearth/internal/store"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to hearth!")
	fmt.Println()

	// 1. Rent
	fmt.Println("  1. Monthly rent (total for the household)")
	fmt.Print("     > ")
	rent := readAmount(reader, 0)
	fmt.Println()

	// 2. Rent split mode
	fmt.Println("  2. Rent split")
	fmt.Println("     (1) Fair (proportional to income) [default]")
	fmt.Println("     (2) Equal")
	fmt.Print("     > ")
	mode := model.RentFair
	if readChoice(reader) == "2" {
		mode = model.RentEqual
	}
	cfg.General.RentMode = string(mode)
	fmt.Println()

	// 3. People
	household := &model.Household{Rent: rent, RentMode: mode}
	for {
		n := len(household.People) + 1
		fmt.Printf("  3. Person %d (leave name blank to finish)\n", n)
		fmt.Print("     Name > ")
		name, _ := reader.ReadString('\n')
		name = strings.TrimSpace(name)
		if name == "" {
			if len(household.People) > 0 {
				break
			}
			fmt.Println("     At least one person is required.")
			continue
		}
		household.People = append(household.People, promptPerson(reader, name))
		fmt.Println()
	}
	fmt.Println()

	// 4. Storage backend
	fmt.Println("  4. Storage backend")
	fmt.Println("     (1) JSON file [default]")
	fmt.Println("     (2) SQLite")
	fmt.Print("     > ")
	if readChoice(reader) == "2" {
		cfg.Storage.Backend = "sqlite"
	} else {
		cfg.Storage.Backend = "json"
	}
	fmt.Println()

	// 5. Theme
	fmt.Println("  5. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	switch readChoice(reader) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	s, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Save(cmd.Context(), household); err != nil {
		return fmt.Errorf("saving household: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Config saved to %s\n", config.ConfigPath())
	fmt.Printf("  Household saved to %s\n", cfg.DocumentPath())
	fmt.Println("  Run `hearth setup` anytime to start over, or `hearth tui` to adjust.")
	fmt.Println()

	return nil
}

func promptPerson(reader *bufio.Reader, name string) model.Person {
	p := model.Person{Name: name}

	fmt.Println("     Pay period: (1) Semimonthly [default]  (2) Weekly  (3) Biweekly")
	fmt.Print("     > ")
	switch readChoice(reader) {
	case "2":
		p.PayPeriod = model.Weekly
	case "3":
		p.PayPeriod = model.Biweekly
	default:
		p.PayPeriod = model.Semimonthly
	}

	fmt.Println("     Recent paycheck amounts, comma separated (e.g. 2342.97, 2342.97)")
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if v, err := strconv.ParseFloat(field, 64); err == nil && v > 0 {
			p.Paychecks = append(p.Paychecks, v)
		}
	}

	fmt.Print("     Monthly groceries > ")
	p.Groceries = readAmount(reader, 0)
	fmt.Print("     Monthly gas > ")
	p.Gas = readAmount(reader, 0)
	fmt.Print("     Savings rate %% (0-100, default 20) > ")
	p.SavingsRate = readAmount(reader, 20) / 100
	fmt.Print("     Wants rate %% (0-100, default 20) > ")
	p.WantsRate = readAmount(reader, 20) / 100
	fmt.Print("     Current debt balance > ")
	p.StartingDebt = readAmount(reader, 0)
	fmt.Print("     Current savings balance > ")
	p.StartingSavings = readAmount(reader, 0)

	return p
}

func readChoice(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func readAmount(reader *bufio.Reader, fallback float64) float64 {
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "$"))
	if line == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
