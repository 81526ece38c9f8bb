package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type importCmd struct {
	file     string
	url      string
	dryRun   bool
	rows     string
	date     string
	amount   string
	category string
	memo     string
	currency string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from an external JSON export" }
func (*importCmd) Usage() string {
	return `fin import (-file <path> | -url <address>) -rows <jsonpath> -date <jsonpath> -amount <jsonpath>

  Imports expenses from a bank statement or another tracker's JSON export.
  JSONPath expressions locate the rows and the fields inside each row, so a
  new export shape only needs different paths. Negative amounts (bank
  outflows) are imported as positive expenses.

Usage Examples:
$ fin import -file statement.json -rows '$.transactions[*]' -date '$.bookingDate' \
    -amount '$.amount.value' -cat '$.category' -memo '$.remittanceInfo'
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "file", "", "Path of the JSON export to import.")
	f.StringVar(&p.url, "url", "", "Address of the JSON export to download. Overrides -file.")
	f.BoolVar(&p.dryRun, "n", false, "Print the expenses without appending them.")
	f.StringVar(&p.rows, "rows", "$[*]", "JSONPath selecting the transaction rows.")
	f.StringVar(&p.date, "date", "$.date", "JSONPath of the date inside a row.")
	f.StringVar(&p.amount, "amount", "$.amount", "JSONPath of the amount inside a row.")
	f.StringVar(&p.category, "cat", "", "JSONPath of the category inside a row (optional).")
	f.StringVar(&p.memo, "memo", "", "JSONPath of the memo inside a row (optional).")
	f.StringVar(&p.currency, "c", "EUR", "Currency applied to every imported amount.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mapping := fintrack.ExpenseMapping{
		Rows:     p.rows,
		Date:     p.date,
		Amount:   p.amount,
		Category: p.category,
		Memo:     p.memo,
		Currency: p.currency,
	}

	var expenses []fintrack.Expense
	var err error
	switch {
	case p.url != "":
		expenses, err = fintrack.FetchExpenses(p.url, mapping)
	case p.file != "":
		var r *os.File
		r, err = os.Open(p.file)
		if err == nil {
			expenses, err = fintrack.ImportExpenses(r, mapping)
			r.Close()
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: one of -file or -url is required.")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error importing expenses:", err)
		return subcommands.ExitFailure
	}
	if len(expenses) == 0 {
		fmt.Println("No expenses found in the export.")
		return subcommands.ExitSuccess
	}

	if p.dryRun {
		for _, e := range expenses {
			fmt.Printf("%s %s %s %s\n", e.Date, e.Amount, e.Category, e.Memo)
		}
		return subcommands.ExitSuccess
	}

	records := make([]fintrack.Record, len(expenses))
	for i, e := range expenses {
		records[i] = e
	}
	return appendRecords(records...)
}
