package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ytd"
	"github.com/etnz/ytd/date"
	"github.com/google/subcommands"
)

// recordTransaction appends a transaction to the ledger file and applies it
// to the position file.
func recordTransaction(tx ytd.Transaction) subcommands.ExitStatus {
	log := Logger()
	p, err := DecodePosition()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading position: %v\n", err)
		return subcommands.ExitFailure
	}

	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := ytd.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	log.Debug().Stringer("transaction", tx).Str("ledger", *ledgerFile).Msg("appended")

	tx.Apply(p)
	if err := EncodePosition(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing position file %q: %v\n", *positionFile, err)
		return subcommands.ExitFailure
	}
	log.Debug().Stringer("position", p).Msg("updated")

	fmt.Printf("Successfully appended transaction to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// tradeFlags are the flags of transactions exchanging cash for securities.
type tradeFlags struct {
	date     string
	security string
	quantity string
	cash     string
	memo     string
}

func (c *tradeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.security, "s", "", "Security ticker")
	f.StringVar(&c.quantity, "q", "", "Number of shares")
	f.StringVar(&c.cash, "c", "", "Total cash exchanged")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

// transaction parses the flags into a transaction of type kind.
func (c *tradeFlags) transaction(kind ytd.TransactionType) (ytd.Transaction, error) {
	day, err := date.Parse(c.date)
	if err != nil {
		return ytd.Transaction{}, err
	}
	sec, err := ytd.ParseSecurity(c.security)
	if err != nil {
		return ytd.Transaction{}, err
	}
	q, err := ytd.ParseQuantity(c.quantity)
	if err != nil {
		return ytd.Transaction{}, err
	}
	cash, err := ytd.ParseAmount(c.cash)
	if err != nil {
		return ytd.Transaction{}, err
	}
	return ytd.NewTransaction(kind, day, c.memo, cash, sec, q)
}

// --- Buy Command ---

type buyCmd struct{ tradeFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `buy -d <date> -s <security> -q <quantity> -c <cash> [-m <memo>]

  Purchases shares of a security. The cash is debited from the account.
`
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.transaction(ytd.Buy)
	if err != nil {
		return usageError(f, err)
	}
	return recordTransaction(tx)
}

// --- Sell Command ---

type sellCmd struct{ tradeFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `sell -d <date> -s <security> -q <quantity> -c <cash> [-m <memo>]

  Sells shares of a security. The proceeds are credited to the account.
`
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.transaction(ytd.Sell)
	if err != nil {
		return usageError(f, err)
	}
	return recordTransaction(tx)
}

// cashFlags are the flags of transactions moving cash only.
type cashFlags struct {
	date string
	cash string
	memo string
}

func (c *cashFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.cash, "c", "", "Amount of cash")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note")
}

func (c *cashFlags) transaction(kind ytd.TransactionType) (ytd.Transaction, error) {
	day, err := date.Parse(c.date)
	if err != nil {
		return ytd.Transaction{}, err
	}
	cash, err := ytd.ParseAmount(c.cash)
	if err != nil {
		return ytd.Transaction{}, err
	}
	return ytd.NewTransaction(kind, day, c.memo, cash, 0, ytd.ZeroQuantity())
}

// --- Deposit Command ---

type depositCmd struct{ cashFlags }

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a cash deposit into the account" }
func (*depositCmd) Usage() string {
	return `deposit -d <date> -c <cash> [-m <memo>]

  Records a cash deposit into the account.
`
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.transaction(ytd.Deposit)
	if err != nil {
		return usageError(f, err)
	}
	return recordTransaction(tx)
}

// --- Withdraw Command ---

type withdrawCmd struct{ cashFlags }

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a cash withdrawal from the account" }
func (*withdrawCmd) Usage() string {
	return `withdraw -d <date> -c <cash> [-m <memo>]

  Records a cash withdrawal from the account.
`
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.transaction(ytd.Withdrawal)
	if err != nil {
		return usageError(f, err)
	}
	return recordTransaction(tx)
}
