package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type valueCmd struct {
	date       string
	investment string
	amount     float64
	currency   string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "record the current market value of an investment" }
func (*valueCmd) Usage() string {
	return `fin value -i <investment> -a <amount> [-d <date>]

  Records a market revaluation of the whole holding. Profit and loss figures
  are derived from the latest recorded value.

Usage Examples:
$ fin value -i nifty50 -a 2450
`
}

func (p *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Valuation date (defaults to today).")
	f.StringVar(&p.investment, "i", "", "Name of the investment revalued.")
	f.Float64Var(&p.amount, "a", 0, "Current market value of the holding.")
	f.StringVar(&p.currency, "c", "EUR", "Currency of the value.")
}

func (p *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.investment == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendRecords(fintrack.NewValueRecord(day, p.investment, fintrack.M(p.amount, p.currency)))
}
