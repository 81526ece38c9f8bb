package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	date     string
	memo     string
	amount   float64
	currency string
	category string
	source   string
	freq     string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income" }
func (*incomeCmd) Usage() string {
	return `fin income -a <amount> [-freq one-time|weekly|monthly] [-d <date>]

  Records an income. Recurring incomes (weekly, monthly) get a next expected
  occurrence derived from their date; 'next-income' reports the soonest one.

Usage Examples:
$ fin income -a 3000 -cat Salary -source ACME -freq monthly
`
}

func (p *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Income date (defaults to today).")
	f.StringVar(&p.memo, "m", "", "Free-form memo.")
	f.Float64Var(&p.amount, "a", 0, "Income amount.")
	f.StringVar(&p.currency, "c", "EUR", "Currency of the amount.")
	f.StringVar(&p.category, "cat", "", "Income category.")
	f.StringVar(&p.source, "source", "", "Who pays the income.")
	f.StringVar(&p.freq, "freq", "one-time", "Recurrence (one-time, weekly, monthly).")
}

func (p *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}
	freq, err := fintrack.ParseFrequency(p.freq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing frequency: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fintrack.NewIncomeRecord(day, p.memo, fintrack.M(p.amount, p.currency), p.category, p.source, freq)
	return appendRecords(rec)
}
