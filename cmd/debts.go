package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type debtsCmd struct {
	date string
}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "list debts with balance, progress and projected payoff" }
func (*debtsCmd) Usage() string {
	return `fin debts [-d <date>]

  Lists all debts with remaining balance, total paid, progress and the
  projected payoff date starting from the given date.
`
}

func (p *debtsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Projection start date (defaults to today).")
}

func (p *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.DebtsMarkdown(ledger.Debts(), day))
	return subcommands.ExitSuccess
}
