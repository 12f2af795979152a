package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/ytd"
	"github.com/etnz/ytd/date"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	seed       uint64
	importFile string
	path       string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "generate or import the market file" }
func (*pricesCmd) Usage() string {
	return `prices [-seed <n>] | -import <file> -path <jsonpath>

  Writes the market file. By default, prices are simulated for every security
  from the first day of the year to today. With -import, prices are read from
  a JSON document, the JSONPath expression selecting the price records.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.seed, "seed", uint64(time.Now().UnixNano()), "Seed of the simulated prices")
	f.StringVar(&c.importFile, "import", "", "JSON document to import prices from")
	f.StringVar(&c.path, "path", "$[*]", "JSONPath expression selecting the price records in the imported document")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := Logger()
	clock, err := Clock()
	if err != nil {
		return usageError(f, err)
	}

	var m *ytd.Market
	if c.importFile != "" {
		m, err = importMarket(c.importFile, c.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing prices: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		period := date.YearToDate(clock.Today())
		m = ytd.GenerateMarket(c.seed, period)
		log.Info().Uint64("seed", c.seed).Stringer("range", period).Msg("simulated prices")
	}

	if err := EncodeMarket(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing market file %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %d prices to %s\n", m.Len(), *marketFile)
	return subcommands.ExitSuccess
}

func importMarket(filename, expr string) (*ytd.Market, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ytd.ImportMarket(f, expr)
}
