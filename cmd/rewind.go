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

type rewindCmd struct {
	raw bool
}

func (*rewindCmd) Name() string     { return "rewind" }
func (*rewindCmd) Synopsis() string { return "show the position as of the first day of the year" }
func (*rewindCmd) Usage() string {
	return `rewind [-md]

  Reverts every transaction of the year from the current position and prints
  the position as it was on January 1st.
`
}

func (c *rewindCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "md", false, "Print raw markdown")
}

func (c *rewindCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clock, err := Clock()
	if err != nil {
		return usageError(f, err)
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

	today := clock.Today()
	initial, err := ytd.Rewind(current, txs, today)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPosition("Position on "+today.StartOfYear().String(), initial), c.raw)
	return subcommands.ExitSuccess
}
