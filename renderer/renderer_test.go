package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/fintrack/fintrack"
)

func demoLedger(t *testing.T) *fintrack.Ledger {
	t.Helper()
	l := fintrack.NewLedger()
	jan := fintrack.NewRange(fintrack.NewDate(2026, time.January, 1), fintrack.NewDate(2026, time.January, 31))
	_, err := l.Append(
		fintrack.NewDeclareBudget(fintrack.NewDate(2026, time.January, 1), "groceries", "Food", fintrack.M(500, "EUR"), jan),
		fintrack.NewDeclareDebt(fintrack.NewDate(2026, time.January, 1), "visa", "credit-card", "MyBank", fintrack.M(1200, "EUR"), 12, fintrack.M(100, "EUR"), fintrack.Monthly),
		fintrack.NewDeclareInvestment(fintrack.NewDate(2026, time.January, 1), "ACME", "stock"),
		fintrack.NewIncomeRecord(fintrack.NewDate(2026, time.January, 1), "", fintrack.M(3000, "EUR"), "salary", "ACME Corp", fintrack.EveryMonth),
		fintrack.NewExpense(fintrack.NewDate(2026, time.January, 10), "market", "Food", fintrack.M(200, "EUR")),
		fintrack.NewTradeRecord(fintrack.RecBuy, fintrack.NewDate(2026, time.January, 12), "", "ACME", fintrack.Q(10), fintrack.M(100, "EUR")),
		fintrack.NewValueRecord(fintrack.NewDate(2026, time.January, 31), "ACME", fintrack.M(1100, "EUR")),
	)
	if err != nil {
		t.Fatalf("demo journal failed: %v", err)
	}
	return l
}

func TestBudgetsMarkdown(t *testing.T) {
	l := demoLedger(t)
	got := BudgetsMarkdown(l.Budgets(), fintrack.NewDate(2026, time.January, 20))

	for _, want := range []string{"# Budgets on 2026-01-20", "groceries", "Food", "2026-January", "under"} {
		if !strings.Contains(got, want) {
			t.Errorf("BudgetsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestAlertsMarkdown(t *testing.T) {
	if got := AlertsMarkdown(nil); got != "" {
		t.Errorf("AlertsMarkdown(nil) = %q, want empty", got)
	}

	alerts := []fintrack.Alert{{
		Budget:     "groceries",
		Type:       fintrack.AlertThreshold75,
		Percentage: 80,
		Date:       fintrack.NewDate(2026, time.January, 20),
	}}
	got := AlertsMarkdown(alerts)
	if !strings.Contains(got, "threshold-75") || !strings.Contains(got, "groceries") {
		t.Errorf("AlertsMarkdown() missing the alert in:\n%s", got)
	}
}

func TestDebtsMarkdown(t *testing.T) {
	l := demoLedger(t)
	got := DebtsMarkdown(l.Debts(), fintrack.NewDate(2026, time.January, 20))

	for _, want := range []string{"# Debts on 2026-01-20", "visa", "MyBank", "active", "Total owed"} {
		if !strings.Contains(got, want) {
			t.Errorf("DebtsMarkdown() missing %q in:\n%s", want, got)
		}
	}
	// 1200 at 12% with a 100 minimum converges, the cell holds a date.
	if strings.Contains(got, "never") {
		t.Errorf("DebtsMarkdown() projected never for a converging debt:\n%s", got)
	}
}

func TestDebtsMarkdown_NonConvergent(t *testing.T) {
	d := fintrack.Debt{
		Name:           "stuck",
		OriginalAmount: fintrack.M(1200, "EUR"),
		Balance:        fintrack.M(1200, "EUR"),
		InterestRate:   12,
		MinimumPayment: fintrack.M(0, "EUR"),
		Cadence:        fintrack.Monthly,
		Status:         fintrack.DebtActive,
	}
	got := DebtsMarkdown([]fintrack.Debt{d}, fintrack.NewDate(2026, time.January, 20))
	if !strings.Contains(got, "never") {
		t.Errorf("DebtsMarkdown() should name the non-convergence:\n%s", got)
	}
}

func TestIncomesMarkdown(t *testing.T) {
	l := demoLedger(t)
	got := IncomesMarkdown(l.Incomes(), fintrack.NewDate(2026, time.January, 20))

	for _, want := range []string{"ACME Corp", "monthly", "Next expected", "2026-01-31"} {
		if !strings.Contains(got, want) {
			t.Errorf("IncomesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestPortfolioMarkdown(t *testing.T) {
	l := demoLedger(t)
	got := PortfolioMarkdown(l.Investments(), fintrack.NewDate(2026, time.January, 31))

	for _, want := range []string{"# Portfolio on 2026-01-31", "ACME", "stock", "Total (1)"} {
		if !strings.Contains(got, want) {
			t.Errorf("PortfolioMarkdown() missing %q in:\n%s", want, got)
		}
	}
	// no SIP plan anywhere, no SIP section.
	if strings.Contains(got, "## SIP") {
		t.Errorf("PortfolioMarkdown() rendered a SIP section without a plan:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	l := demoLedger(t)
	s := fintrack.NewSummary(l, fintrack.NewDate(2026, time.January, 20))
	got := SummaryMarkdown(s)

	for _, want := range []string{"# Financial Summary on 2026-01-20", "Net position", "Budgets", "Debts", "Portfolio", "Next expected income"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
