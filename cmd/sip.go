package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type sipCmd struct {
	date       string
	memo       string
	investment string
	amount     float64
	nav        float64
	currency   string
	units      float64
}

func (*sipCmd) Name() string     { return "sip" }
func (*sipCmd) Synopsis() string { return "record a SIP installment" }
func (*sipCmd) Usage() string {
	return `fin sip -i <investment> -nav <price> [-a <amount>] [-q <units>]

  Records one installment of an investment's systematic investment plan at the
  given net asset value. The amount defaults to the plan's installment amount,
  and the units default to amount divided by NAV.

Usage Examples:
$ fin sip -i nifty50 -nav 21.50
`
}

func (p *sipCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Installment date (defaults to today).")
	f.StringVar(&p.memo, "m", "", "Free-form memo.")
	f.StringVar(&p.investment, "i", "", "Name of the investment with a SIP plan.")
	f.Float64Var(&p.amount, "a", 0, "Amount invested. Defaults to the plan amount.")
	f.Float64Var(&p.nav, "nav", 0, "Net asset value per unit at the installment.")
	f.StringVar(&p.currency, "c", "EUR", "Currency of the amount and NAV.")
	f.Float64Var(&p.units, "q", 0, "Units bought. Defaults to amount/NAV.")
}

func (p *sipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.investment == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	amount := fintrack.M(p.amount, p.currency)
	if p.amount == 0 {
		// default to the plan's installment amount.
		ledger, err := DecodeLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		inv, ok := ledger.Investment(p.investment)
		if !ok || inv.SIP == nil {
			fmt.Fprintf(os.Stderr, "Error: investment %q has no SIP plan to default the amount from\n", p.investment)
			return subcommands.ExitFailure
		}
		amount = inv.SIP.Amount
	}
	rec := fintrack.NewSIPRecord(day, p.memo, p.investment, amount,
		fintrack.M(p.nav, p.currency), fintrack.Q(p.units))
	return appendRecords(rec)
}
