package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type newBudgetCmd struct {
	date     string
	name     string
	category string
	amount   float64
	currency string
	period   string
	from     string
	to       string
	alerts   string
}

func (*newBudgetCmd) Name() string     { return "new-budget" }
func (*newBudgetCmd) Synopsis() string { return "declare a spending budget for a category" }
func (*newBudgetCmd) Usage() string {
	return `fin new-budget -name <name> -cat <category> -a <amount> [-p <period> | -from <date> -to <date>]

  Declares a budget capping spending for one category over a window of time.
  The window is either a predefined period around the declaration date, or an
  explicit date range. Expenses in the same category and window count against
  the cap, and crossing an enabled threshold raises an alert.

Usage Examples:
# A monthly groceries budget for the current month.
$ fin new-budget -name groceries -cat Food -a 450

# A quarterly budget on an explicit window, alerting only when exceeded.
$ fin new-budget -name travel -cat Travel -a 1200 -from 2026-01-01 -to 2026-03-31 -alerts exceeded
`
}

func (p *newBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Declaration date (defaults to today).")
	f.StringVar(&p.name, "name", "", "Unique budget name.")
	f.StringVar(&p.category, "cat", "", "Spending category the budget caps.")
	f.Float64Var(&p.amount, "a", 0, "Budget cap amount.")
	f.StringVar(&p.currency, "c", "EUR", "Currency of the cap.")
	f.StringVar(&p.period, "p", "month", "Predefined period (week, month, quarter, year).")
	f.StringVar(&p.from, "from", "", "Explicit window start. Overrides -p, requires -to.")
	f.StringVar(&p.to, "to", "", "Explicit window end.")
	f.StringVar(&p.alerts, "alerts", "50,75,100,exceeded", "Comma-separated thresholds to alert on.")
}

func (p *newBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -cat are required.")
		return subcommands.ExitUsageError
	}

	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	var window fintrack.Range
	if p.from != "" || p.to != "" {
		if p.from == "" || p.to == "" {
			fmt.Fprintln(os.Stderr, "Error: -from and -to must be used together.")
			return subcommands.ExitUsageError
		}
		from, err := fintrack.ParseDate(p.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitFailure
		}
		to, err := fintrack.ParseDate(p.to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitFailure
		}
		window = fintrack.NewRange(from, to)
	} else {
		period, err := fintrack.ParsePeriod(p.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitFailure
		}
		window = period.Range(day)
	}

	rec := fintrack.NewDeclareBudget(day, p.name, p.category, fintrack.M(p.amount, p.currency), window)
	rec.Alert50, rec.Alert75, rec.Alert100, rec.AlertExceeded = false, false, false, false
	for _, a := range strings.Split(p.alerts, ",") {
		switch strings.TrimSpace(a) {
		case "50":
			rec.Alert50 = true
		case "75":
			rec.Alert75 = true
		case "100":
			rec.Alert100 = true
		case "exceeded":
			rec.AlertExceeded = true
		case "":
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown alert threshold %q (want 50, 75, 100 or exceeded)\n", a)
			return subcommands.ExitUsageError
		}
	}

	return appendRecords(rec)
}
