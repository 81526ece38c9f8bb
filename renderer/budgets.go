package renderer

import (
	"bytes"
	"fmt"

	"github.com/fintrack/fintrack"
	md "github.com/nao1215/markdown"
)

// BudgetsMarkdown renders the budget table for the given date. The status
// column carries the progress tier so the display layer can color it.
func BudgetsMarkdown(budgets []fintrack.Budget, on fintrack.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budgets on %s", on))

	table := md.TableSet{
		Header: []string{"Budget", "Category", "Period", "Spent", "Cap", "Progress", "Status"},
	}
	for _, b := range budgets {
		if !b.Active {
			continue
		}
		table.Rows = append(table.Rows, []string{
			b.Name,
			b.Category,
			b.Period.Identifier(),
			b.Spent.String(),
			b.Amount.String(),
			b.Progress().String(),
			b.Status().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// AlertsMarkdown renders the alerts an expense triggered, empty when there
// are none.
func AlertsMarkdown(alerts []fintrack.Alert) string {
	if len(alerts) == 0 {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Alerts")
	items := make([]string, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, fmt.Sprintf("%s: budget %q at %s on %s", a.Type, a.Budget, a.Percentage, a.Date))
	}
	doc.BulletList(items...)
	return doc.String()
}
