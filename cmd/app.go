// Package cmd implements the CLI application computing the year-to-date
// return of an account.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ytd"
	"github.com/etnz/ytd/date"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&formatLedgerCmd{}, "transactions")

	c.Register(&pricesCmd{}, "market")

	c.Register(&rewindCmd{}, "reports")
	c.Register(&roiCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile   = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing transactions (JSONL format)")
	positionFile = flag.String("position-file", "position.json", "Path to the current position file (JSON format)")
	marketFile   = flag.String("market-file", "market.jsonl", "Path to the market file containing daily prices (JSONL format)")
	prefsFile    = flag.String("prefs", "", "Path to a YAML preferences file. Missing preferences are read from the environment")
	logLevel     = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	todayFlag    = flag.String("today", "", "Use this day (YYYY-MM-DD) as today")
)

// Logger returns the application logger, writing to stderr.
func Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Clock returns the application clock, fixed when -today is set.
func Clock() (ytd.Clock, error) {
	if *todayFlag == "" {
		return ytd.SystemClock{}, nil
	}
	day, err := date.Parse(*todayFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid -today: %w", err)
	}
	return ytd.FixedClock(day), nil
}

// Preferences loads the .env file and the -prefs file.
func Preferences() (*ytd.Preferences, error) {
	if err := ytd.LoadEnv(); err != nil {
		return nil, fmt.Errorf("cannot load .env: %w", err)
	}
	if *prefsFile == "" {
		return ytd.NewPreferences(), nil
	}
	return ytd.LoadPreferences(*prefsFile)
}

// DecodeLedger reads the transactions of the application ledger file.
// A missing ledger has no transactions.
func DecodeLedger() ([]ytd.Transaction, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	txs, err := ytd.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("ledger %q: %w", *ledgerFile, err)
	}
	return txs, nil
}

// DecodePosition reads the application position file.
// A missing file is an empty position.
func DecodePosition() (*ytd.Position, error) {
	f, err := os.Open(*positionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return ytd.NewPosition(ytd.ZeroAmount()), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := ytd.DecodePosition(f)
	if err != nil {
		return nil, fmt.Errorf("position %q: %w", *positionFile, err)
	}
	return p, nil
}

// EncodePosition replaces the application position file.
func EncodePosition(p *ytd.Position) error {
	f, err := os.Create(*positionFile)
	if err != nil {
		return err
	}
	if err := ytd.EncodePosition(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DecodeMarket reads the application market file.
func DecodeMarket() (*ytd.Market, error) {
	f, err := os.Open(*marketFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ytd.DecodeMarket(f)
	if err != nil {
		return nil, fmt.Errorf("market %q: %w", *marketFile, err)
	}
	return m, nil
}

// EncodeMarket replaces the application market file.
func EncodeMarket(m *ytd.Market) error {
	f, err := os.Create(*marketFile)
	if err != nil {
		return err
	}
	if err := ytd.EncodeMarket(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printMarkdown renders markdown for the terminal, or prints it as is when
// raw is true or the rendering fails.
func printMarkdown(md string, raw bool) {
	if raw {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "warning: cannot render markdown: %v\n", err)
	fmt.Print(md)
}

// usageError prints an error about flags or arguments.
func usageError(f *flag.FlagSet, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	f.Usage()
	return subcommands.ExitUsageError
}
