package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/finances"
	"github.com/google/subcommands"
)

type ratesCmd struct {
	base string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "fetch daily exchange rates" }
func (*ratesCmd) Usage() string {
	return `fin rates [-base <currency>] <quote>...

  Fetches the daily exchange rate from the base currency to each quote
  currency. Responses are cached until the end of the day.

Usage Examples:
$ fin rates -base EUR USD GBP
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "EUR", "Base currency of the rates.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes := f.Args()
	if len(quotes) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no quote currency given")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, quote := range quotes {
		quote = strings.ToUpper(quote)
		rate, err := finances.FetchExchangeRate(strings.ToUpper(c.base), quote)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s/%s: %v\n", c.base, quote, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s/%s %.4f\n", strings.ToUpper(c.base), quote, rate)
	}
	return status
}
