package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type budgetsCmd struct {
	date string
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list budgets with progress and status" }
func (*budgetsCmd) Usage() string {
	return `fin budgets [-d <date>]

  Lists active budgets with spent amount, remaining headroom, progress and
  status as of the given date.
`
}

func (p *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date (defaults to today).")
}

func (p *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.BudgetsMarkdown(ledger.Budgets(), day))
	return subcommands.ExitSuccess
}
