package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type incomesCmd struct {
	date string
}

func (*incomesCmd) Name() string     { return "incomes" }
func (*incomesCmd) Synopsis() string { return "list recorded incomes" }
func (*incomesCmd) Usage() string {
	return `fin incomes [-d <date>]

  Lists all recorded incomes with their recurrence, and the next expected
  income after the given date.
`
}

func (p *incomesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date (defaults to today).")
}

func (p *incomesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.IncomesMarkdown(ledger.Incomes(), day))
	return subcommands.ExitSuccess
}
