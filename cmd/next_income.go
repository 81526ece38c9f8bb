package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type nextIncomeCmd struct {
	date string
}

func (*nextIncomeCmd) Name() string     { return "next-income" }
func (*nextIncomeCmd) Synopsis() string { return "show the next expected income" }
func (*nextIncomeCmd) Usage() string {
	return `fin next-income [-d <date>]

  Shows the recurring income expected soonest, strictly after the given date.
`
}

func (p *nextIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date (defaults to today).")
}

func (p *nextIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	next := fintrack.NextExpectedIncome(ledger.Incomes(), day)
	if next == nil {
		fmt.Println("No recurring income expected.")
		return subcommands.ExitSuccess
	}

	fmt.Printf("Next expected income: %s from %s on %s (%s)\n",
		next.Amount, next.Source, next.NextOccurrence, next.Frequency)
	return subcommands.ExitSuccess
}
