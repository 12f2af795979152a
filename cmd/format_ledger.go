package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ytd"
	"github.com/google/subcommands"
)

type formatLedgerCmd struct {
	output string
}

func (*formatLedgerCmd) Name() string { return "fmt" }
func (*formatLedgerCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*formatLedgerCmd) Usage() string {
	return `fmt [-o <file>]

  Validates every transaction of the ledger, sorts them by date and writes
  them back in a canonical JSONL format. Transactions on the same day keep
  their order. By default the ledger is formatted in-place; use "-o -" to
  print it instead.
`
}

func (c *formatLedgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for stdout. Defaults to the ledger file itself")
}

func (c *formatLedgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = *ledgerFile
	}
	if output == "-" {
		if err := ytd.EncodeLedger(os.Stdout, txs); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := encodeLedgerFile(output, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Ledger file '%s' has been formatted.\n", output)
	return subcommands.ExitSuccess
}

// encodeLedgerFile replaces the content of filename with txs.
func encodeLedgerFile(filename string, txs []ytd.Transaction) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filename, err)
	}
	if err := ytd.EncodeLedger(f, txs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
