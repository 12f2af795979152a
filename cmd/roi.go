package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ytd"
	"github.com/etnz/ytd/renderer"
	"github.com/google/subcommands"
)

type roiCmd struct {
	raw          bool
	transactions bool
}

func (*roiCmd) Name() string     { return "roi" }
func (*roiCmd) Synopsis() string { return "report the annualized year-to-date return on investment" }
func (*roiCmd) Usage() string {
	return `roi [-md] [-transactions]

  Computes the return of the current position since January 1st, annualized
  to LENGTH_OF_YEAR days, and prints the report.
`
}

func (c *roiCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "md", false, "Print raw markdown")
	f.BoolVar(&c.transactions, "transactions", false, "List the reverted transactions")
}

func (c *roiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clock, err := Clock()
	if err != nil {
		return usageError(f, err)
	}
	prefs, err := Preferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading preferences: %v\n", err)
		return subcommands.ExitFailure
	}
	txs, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	current, err := DecodePosition()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading position: %v\n", err)
		return subcommands.ExitFailure
	}
	market, err := DecodeMarket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading market: %v\n", err)
		return subcommands.ExitFailure
	}

	s := ytd.NewReportingService(prefs, market, clock, Logger())
	report, err := s.Report(current, txs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderYTD(report, renderer.RenderOptions{SkipTransactions: !c.transactions}), c.raw)
	return subcommands.ExitSuccess
}
