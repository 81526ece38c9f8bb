package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type payCmd struct {
	date     string
	memo     string
	debt     string
	amount   float64
	currency string
	ptype    string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against a debt" }
func (*payCmd) Usage() string {
	return `fin pay -debt <name> -a <amount> [-type regular|extra|minimum] [-d <date>]

  Records a payment reducing a debt's balance. A payment larger than the
  remaining balance is rejected; a payment matching it exactly marks the debt
  as paid off.

Usage Examples:
$ fin pay -debt visa -a 150 -type extra -m "bonus month"
`
}

func (p *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Payment date (defaults to today).")
	f.StringVar(&p.memo, "m", "", "Free-form memo.")
	f.StringVar(&p.debt, "debt", "", "Name of the debt being paid.")
	f.Float64Var(&p.amount, "a", 0, "Payment amount.")
	f.StringVar(&p.currency, "c", "EUR", "Currency of the payment.")
	f.StringVar(&p.ptype, "type", "regular", "Payment type (regular, extra, minimum).")
}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.debt == "" {
		fmt.Fprintln(os.Stderr, "Error: -debt is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	var ptype fintrack.PaymentType
	switch p.ptype {
	case "regular":
		ptype = fintrack.PaymentRegular
	case "extra":
		ptype = fintrack.PaymentExtra
	case "minimum":
		ptype = fintrack.PaymentMinimum
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown payment type %q (want regular, extra or minimum)\n", p.ptype)
		return subcommands.ExitUsageError
	}

	return appendRecords(fintrack.NewPaymentRecord(day, p.memo, p.debt, fintrack.M(p.amount, p.currency), ptype))
}
