package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cashed/ledger"
)

var (
	balanceLevel int
	monthLevel   int
	monthArg     string
)

var balanceCmd = &cobra.Command{
	Use:   "balance FILE",
	Short: "Show the balance report (assets and liabilities, with equity)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := parseLedgerFile(args[0])
		if err != nil {
			return err
		}
		cash, err := ledger.Build(cfg, time.Time{}, time.Time{})
		if err != nil {
			return err
		}
		return ledger.Report(os.Stdout, cash, []string{"a", "l"}, true, balanceLevel)
	},
}

var monthCmd = &cobra.Command{
	Use:   "month FILE",
	Short: "Show expenses and income for one month",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := monthRange(monthArg, time.Now())
		if err != nil {
			return err
		}

		cfg, err := parseLedgerFile(args[0])
		if err != nil {
			return err
		}
		cash, err := ledger.Build(cfg, start, end)
		if err != nil {
			return err
		}
		return ledger.Report(os.Stdout, cash, []string{"e", "i"}, false, monthLevel)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Parse a ledger file and report the first error, if any",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := parseLedgerFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d operations, base currency %s\n",
			args[0], len(cfg.Ops), currencyOrDefault(cfg.Currency))
		return nil
	},
}

func init() {
	balanceCmd.Flags().IntVarP(&balanceLevel, "level", "l", -1, "max account depth to show (-1 for all)")
	monthCmd.Flags().IntVarP(&monthLevel, "level", "l", -1, "max account depth to show (-1 for all)")
	monthCmd.Flags().StringVarP(&monthArg, "month", "m", "current", "month to report: current, prev or YYYY-MM")
	rootCmd.AddCommand(balanceCmd, monthCmd, checkCmd)
}

func parseLedgerFile(path string) (*ledger.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, err := ledger.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "USD"
	}
	return currency
}

// monthRange resolves the --month argument against now.
func monthRange(arg string, now time.Time) (start, end time.Time, err error) {
	switch arg {
	case "current":
		start, end = ledger.MonthRange(now)
	case "prev":
		end, _ = ledger.MonthRange(now)
		start = ledger.PrevMonth(end)
	default:
		month, perr := time.Parse("2006-01", arg)
		if perr != nil {
			return start, end, fmt.Errorf("bad month %q: want current, prev or YYYY-MM", arg)
		}
		start, end = ledger.MonthRange(month)
	}
	return start, end, nil
}
