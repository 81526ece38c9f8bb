package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show a one-page financial snapshot" }
func (*summaryCmd) Usage() string {
	return `fin summary [-d <date>]

  Shows a snapshot of the whole ledger as of a date: budget headroom, debt
  balances, portfolio value, next expected income and net position.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Snapshot date (defaults to today).")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(fintrack.NewSummary(ledger, day)))
	return subcommands.ExitSuccess
}
