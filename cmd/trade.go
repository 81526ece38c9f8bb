package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

// tradeFlags are the flags shared by buy and sell.
type tradeFlags struct {
	date       string
	memo       string
	investment string
	quantity   float64
	price      float64
	currency   string
}

func (p *tradeFlags) set(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Trade date (defaults to today).")
	f.StringVar(&p.memo, "m", "", "Free-form memo.")
	f.StringVar(&p.investment, "i", "", "Name of the investment traded.")
	f.Float64Var(&p.quantity, "q", 0, "Number of units traded.")
	f.Float64Var(&p.price, "p", 0, "Price per unit.")
	f.StringVar(&p.currency, "c", "EUR", "Currency of the price.")
}

func (p *tradeFlags) record(rec fintrack.RecordType) (fintrack.TradeRecord, error) {
	if p.investment == "" {
		return fintrack.TradeRecord{}, fmt.Errorf("-i is required")
	}
	day, err := parseDay(p.date)
	if err != nil {
		return fintrack.TradeRecord{}, fmt.Errorf("parsing date: %w", err)
	}
	return fintrack.NewTradeRecord(rec, day, p.memo, p.investment,
		fintrack.Q(p.quantity), fintrack.M(p.price, p.currency)), nil
}

type buyCmd struct{ tradeFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of investment units" }
func (*buyCmd) Usage() string {
	return `fin buy -i <investment> -q <quantity> -p <price>

  Records a purchase, increasing the investment's units and cost basis.

Usage Examples:
$ fin buy -i nifty50 -q 10 -p 152.30
`
}
func (p *buyCmd) SetFlags(f *flag.FlagSet) { p.set(f) }

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := p.record(fintrack.RecBuy)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendRecords(rec)
}

type sellCmd struct{ tradeFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of investment units" }
func (*sellCmd) Usage() string {
	return `fin sell -i <investment> -q <quantity> -p <price>

  Records a sale, decreasing the investment's units and a proportional share
  of its cost basis. Selling more units than held sells everything.

Usage Examples:
$ fin sell -i nifty50 -q 5 -p 160
`
}
func (p *sellCmd) SetFlags(f *flag.FlagSet) { p.set(f) }

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := p.record(fintrack.RecSell)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendRecords(rec)
}
