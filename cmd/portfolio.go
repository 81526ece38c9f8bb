package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type portfolioCmd struct {
	date string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "show investment holdings with returns" }
func (*portfolioCmd) Usage() string {
	return `fin portfolio [-d <date>]

  Shows every investment with invested amount, current value, absolute and
  annualized returns, plus SIP details for holdings carrying a plan.
`
}

func (p *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date for annualized returns (defaults to today).")
}

func (p *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.PortfolioMarkdown(ledger.Investments(), day))
	return subcommands.ExitSuccess
}
