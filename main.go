package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cashed",
	Short: "Plain-text cash ledger reports and editor",
	Long: `cashed works with plain-text cash ledgers: files of dated transactions
between colon-qualified accounts under the four roots a (assets),
e (expenses), l (liabilities) and i (income).

It prints balance and monthly reports, checks files for parse errors, and
opens a terminal editor with ledger syntax highlighting.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
