package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type payoffCmd struct {
	date string
}

func (*payoffCmd) Name() string     { return "payoff" }
func (*payoffCmd) Synopsis() string { return "project the payoff schedule for a debt" }
func (*payoffCmd) Usage() string {
	return `fin payoff <debt> [-d <date>]

  Projects month by month when a debt reaches zero, assuming the minimum
  payment and the declared interest rate. A payment that does not cover the
  accruing interest never pays off.
`
}

func (p *payoffCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Projection start date (defaults to today).")
}

func (p *payoffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one debt name is expected.")
		return subcommands.ExitUsageError
	}
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

	debt, ok := ledger.Debt(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown debt %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PayoffMarkdown(debt, day))
	return subcommands.ExitSuccess
}
