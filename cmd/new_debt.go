package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type newDebtCmd struct {
	date       string
	name       string
	debtType   string
	creditor   string
	amount     float64
	currency   string
	rate       float64
	minPayment float64
	cadence    string
}

func (*newDebtCmd) Name() string     { return "new-debt" }
func (*newDebtCmd) Synopsis() string { return "declare a debt to track" }
func (*newDebtCmd) Usage() string {
	return `fin new-debt -name <name> -a <amount> -rate <percent> -min <payment> [-cadence <period>]

  Declares a debt with its original amount, annual interest rate and minimum
  payment. Payments recorded with 'pay' reduce the balance; 'payoff' projects
  the payoff date from the remaining balance.

Usage Examples:
$ fin new-debt -name visa -type credit-card -creditor "Big Bank" -a 1200 -rate 12 -min 100
`
}

func (p *newDebtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Declaration date (defaults to today).")
	f.StringVar(&p.name, "name", "", "Unique debt name.")
	f.StringVar(&p.debtType, "type", "personal-loan", "Kind of debt (credit-card, mortgage, personal-loan...).")
	f.StringVar(&p.creditor, "creditor", "", "Who the debt is owed to.")
	f.Float64Var(&p.amount, "a", 0, "Original debt amount.")
	f.StringVar(&p.currency, "c", "EUR", "Currency of the debt.")
	f.Float64Var(&p.rate, "rate", 0, "Annual interest rate in percent.")
	f.Float64Var(&p.minPayment, "min", 0, "Minimum payment per cadence.")
	f.StringVar(&p.cadence, "cadence", "month", "Payment cadence (week, month, quarter, year).")
}

func (p *newDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}
	cadence, err := fintrack.ParsePeriod(p.cadence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cadence: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fintrack.NewDeclareDebt(day, p.name, p.debtType, p.creditor,
		fintrack.M(p.amount, p.currency), fintrack.Percent(p.rate),
		fintrack.M(p.minPayment, p.currency), cadence)
	return appendRecords(rec)
}
