package renderer

import (
	"bytes"
	"fmt"

	"github.com/fintrack/fintrack"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *fintrack.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Net position: %s", s.NetPosition.SignedString()))

	doc.H2("Budgets")
	doc.Table(md.TableSet{
		Header: []string{"Cap", "Spent", "Headroom", "Over budget"},
		Rows: [][]string{{
			s.BudgetCap.String(),
			s.BudgetSpent.String(),
			s.BudgetHeadroom().String(),
			fmt.Sprintf("%d", s.OverBudget),
		}},
	})

	doc.H2("Debts")
	doc.Table(md.TableSet{
		Header: []string{"Outstanding", "Paid to date", "Active"},
		Rows: [][]string{{
			s.DebtBalance.String(),
			s.DebtPaid.String(),
			fmt.Sprintf("%d", s.ActiveDebts),
		}},
	})

	doc.H2("Portfolio")
	doc.Table(md.TableSet{
		Header: []string{"Holdings", "Invested", "Value", "P/L", "P/L %"},
		Rows: [][]string{{
			fmt.Sprintf("%d", s.Portfolio.Count),
			s.Portfolio.TotalInvested.String(),
			s.Portfolio.CurrentValue.String(),
			s.Portfolio.TotalPnL.SignedString(),
			s.Portfolio.PnLPercent.SignedString(),
		}},
	})

	if s.NextIncome != nil {
		doc.PlainText(fmt.Sprintf("Next expected income: %s from %s on %s",
			s.NextIncome.Amount, s.NextIncome.Source, s.NextIncome.NextOccurrence))
	}

	return doc.String()
}
