package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type newInvestmentCmd struct {
	date     string
	name     string
	invType  string
	sip      float64
	currency string
	sipStart string
	sipFreq  string
}

func (*newInvestmentCmd) Name() string     { return "new-investment" }
func (*newInvestmentCmd) Synopsis() string { return "declare an investment holding" }
func (*newInvestmentCmd) Usage() string {
	return `fin new-investment -name <name> [-type <kind>] [-sip <amount> -sip-start <date>]

  Declares an investment so that trades, valuations and SIP installments can
  reference it. Passing -sip attaches a systematic investment plan: a fixed
  amount invested at a fixed recurrence.

Usage Examples:
$ fin new-investment -name nifty50 -type mutual-fund -sip 200 -sip-start 2026-01-05 -sip-freq monthly
`
}

func (p *newInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Declaration date (defaults to today).")
	f.StringVar(&p.name, "name", "", "Unique investment name.")
	f.StringVar(&p.invType, "type", "stock", "Kind of investment (stock, mutual-fund, etf, bond...).")
	f.Float64Var(&p.sip, "sip", 0, "SIP installment amount. Zero means no plan.")
	f.StringVar(&p.currency, "c", "EUR", "Currency of the SIP amount.")
	f.StringVar(&p.sipStart, "sip-start", "", "First SIP installment date.")
	f.StringVar(&p.sipFreq, "sip-freq", "monthly", "SIP recurrence (weekly, monthly).")
}

func (p *newInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fintrack.NewDeclareInvestment(day, p.name, p.invType)
	if p.sip > 0 {
		start, err := parseDay(p.sipStart)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -sip-start: %v\n", err)
			return subcommands.ExitFailure
		}
		freq, err := fintrack.ParseFrequency(p.sipFreq)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -sip-freq: %v\n", err)
			return subcommands.ExitFailure
		}
		rec.SIPAmount = fintrack.M(p.sip, p.currency)
		rec.SIPStart = start
		rec.SIPFrequency = freq
	}

	return appendRecords(rec)
}
