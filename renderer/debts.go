package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fintrack/fintrack"
)

// DebtsMarkdown renders the debt table with per-debt payoff projections
// starting from the given date.
func DebtsMarkdown(debts []fintrack.Debt, from fintrack.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Debts on %s\n\n", from)
	fmt.Fprintln(&b, "| Debt | Creditor | Balance | Original | Rate | Paid | Status | Payoff |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|:---|:---|")

	total := fintrack.M(0, "")
	for _, d := range debts {
		payoff := payoffCell(d, from)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			d.Name,
			d.Creditor,
			d.Balance.String(),
			d.OriginalAmount.String(),
			d.InterestRate.String(),
			d.Progress().String(),
			string(d.Status),
			payoff,
		)
		if d.Status == fintrack.DebtActive {
			total = total.Add(d.Balance)
		}
	}
	fmt.Fprintf(&b, "| **Total owed** | | **%s** | | | | | |\n", total)

	return b.String()
}

// payoffCell formats the projection result, naming non-convergence instead
// of failing the whole report.
func payoffCell(d fintrack.Debt, from fintrack.Date) string {
	if d.Status != fintrack.DebtActive {
		return "-"
	}
	day, err := d.PayoffProjection(from)
	if err != nil {
		var ncerr *fintrack.NonConvergentError
		if errors.As(err, &ncerr) {
			return "never (payment below interest)"
		}
		return err.Error()
	}
	return day.String()
}

// PayoffMarkdown renders the projection for a single debt.
func PayoffMarkdown(d fintrack.Debt, from fintrack.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Payoff projection for %s\n\n", d.Name)
	fmt.Fprintf(&b, "Balance %s at %s annual interest, paying %s per %s.\n\n",
		d.Balance, d.InterestRate, d.MinimumPayment, d.Cadence.Name())
	fmt.Fprintf(&b, "Estimated payoff: %s\n", payoffCell(d, from))
	return b.String()
}
