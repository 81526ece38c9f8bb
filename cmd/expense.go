package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	date     string
	memo     string
	category string
	amount   float64
	currency string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `fin expense -cat <category> -a <amount> [-d <date>] [-m <memo>]

  Records a single expense. The expense feeds every active budget whose
  category matches and whose window contains the date; crossing an enabled
  budget threshold prints an alert.

Usage Examples:
$ fin expense -cat Food -a 42.50 -m "farmers market"
`
}

func (p *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Expense date (defaults to today).")
	f.StringVar(&p.memo, "m", "", "Free-form memo.")
	f.StringVar(&p.category, "cat", "", "Spending category.")
	f.Float64Var(&p.amount, "a", 0, "Expense amount.")
	f.StringVar(&p.currency, "c", "EUR", "Currency of the amount.")
}

func (p *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -cat is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendRecords(fintrack.NewExpense(day, p.memo, p.category, fintrack.M(p.amount, p.currency)))
}
