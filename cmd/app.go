// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newBudgetCmd{}, "budgets")
	c.Register(&expenseCmd{}, "budgets")
	c.Register(&budgetsCmd{}, "budgets")
	c.Register(&reconcileCmd{}, "budgets")

	c.Register(&newDebtCmd{}, "debts")
	c.Register(&payCmd{}, "debts")
	c.Register(&debtsCmd{}, "debts")
	c.Register(&payoffCmd{}, "debts")

	c.Register(&incomeCmd{}, "income")
	c.Register(&incomesCmd{}, "income")
	c.Register(&nextIncomeCmd{}, "income")

	c.Register(&newInvestmentCmd{}, "investments")
	c.Register(&buyCmd{}, "investments")
	c.Register(&sellCmd{}, "investments")
	c.Register(&sipCmd{}, "investments")
	c.Register(&valueCmd{}, "investments")
	c.Register(&portfolioCmd{}, "investments")

	c.Register(&summaryCmd{}, "reports")

	c.Register(&importCmd{}, "journal")
	c.Register(&fmtCmd{}, "journal")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "fintrack.jsonl", "Path to the journal file containing records (JSONL format)")

// DecodeLedger loads the journal from the app default ledger file.
func DecodeLedger() (l *fintrack.Ledger, err error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, journal does not exist, starting from an empty one instead")
		return fintrack.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open journal file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return fintrack.DecodeLedger(f)
}

// appendRecords validates records against the current journal and appends them
// to the app default ledger file. Alerts raised while applying are printed.
func appendRecords(records ...fintrack.Record) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	alerts, err := ledger.Append(records...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid record: %v\n", err)
		return subcommands.ExitFailure
	}

	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, r := range records {
		if err := fintrack.EncodeRecord(f, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", filename, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Successfully appended %d record(s) to %s\n", len(records), filename)
	if md := renderer.AlertsMarkdown(alerts); md != "" {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// parseDay parses a date flag, an empty value meaning today.
func parseDay(s string) (fintrack.Date, error) {
	if s == "" {
		return fintrack.Today(), nil
	}
	return fintrack.ParseDate(s)
}
