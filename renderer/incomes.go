package renderer

import (
	"bytes"
	"fmt"

	"github.com/fintrack/fintrack"
	md "github.com/nao1215/markdown"
)

// IncomesMarkdown renders the income history and the next expected income
// relative to the given date.
func IncomesMarkdown(incomes []fintrack.Income, now fintrack.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Income on %s", now))

	table := md.TableSet{
		Header: []string{"Date", "Source", "Category", "Amount", "Frequency", "Next"},
	}
	for _, i := range incomes {
		next := "-"
		if i.Recurring {
			next = i.NextOccurrence.String()
		}
		table.Rows = append(table.Rows, []string{
			i.Date.String(),
			i.Source,
			i.Category,
			i.Amount.String(),
			string(i.Frequency),
			next,
		})
	}
	doc.Table(table)

	if next := fintrack.NextExpectedIncome(incomes, now); next != nil {
		doc.PlainText(fmt.Sprintf("Next expected: %s from %s on %s",
			next.Amount, next.Source, next.NextOccurrence))
	} else {
		doc.PlainText("No upcoming recurring income.")
	}

	return doc.String()
}
