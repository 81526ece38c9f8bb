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

type reconcileCmd struct {
	date string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "recompute budget spent amounts from recorded expenses" }
func (*reconcileCmd) Usage() string {
	return `fin reconcile [-d <date>]

  Recomputes every budget's spent amount from scratch, summing the recorded
  expenses matching the budget's category and window. Reports budgets whose
  running total had drifted from the recomputed one, then lists all budgets.
`
}

func (p *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date for the listing (defaults to today).")
}

func (p *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	before := make(map[string]fintrack.Money)
	for _, b := range ledger.Budgets() {
		before[b.Name] = b.Spent
	}

	drifted := 0
	for _, b := range ledger.Reconcile() {
		if !b.Spent.Equal(before[b.Name]) {
			fmt.Printf("budget %q: spent %s recomputed to %s\n", b.Name, before[b.Name], b.Spent)
			drifted++
		}
	}
	if drifted == 0 {
		fmt.Println("All budgets consistent with recorded expenses.")
	}

	printMarkdown(renderer.BudgetsMarkdown(ledger.Budgets(), day))
	return subcommands.ExitSuccess
}
