package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fintrack/fintrack"
)

// PortfolioMarkdown renders the holdings table, the SIP sub-ledgers, and the
// portfolio totals as of the given date.
func PortfolioMarkdown(investments []fintrack.Investment, now fintrack.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio on %s\n\n", now)
	fmt.Fprintln(&b, "| Investment | Type | Units | Invested | Value | P/L | P/L % | Annualized |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")

	for _, v := range investments {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			v.Name,
			v.Type,
			v.Quantity,
			v.InvestedAmount.String(),
			v.CurrentValue.String(),
			v.ProfitLoss().SignedString(),
			v.ProfitLossPercent().SignedString(),
			v.AnnualizedReturn(now).SignedString(),
		)
	}

	s := fintrack.NewPortfolioSummary(investments, nil)
	fmt.Fprintf(&b, "| **Total (%d)** | | | **%s** | **%s** | **%s** | **%s** | |\n",
		s.Count,
		s.TotalInvested,
		s.CurrentValue,
		s.TotalPnL.SignedString(),
		s.PnLPercent.SignedString(),
	)

	for _, v := range investments {
		ConditionalBlock(&b, func(w io.Writer) bool {
			if v.SIP == nil || len(v.SIP.Transactions) == 0 {
				return false
			}
			fmt.Fprintf(w, "\n## SIP %s\n\n", v.Name)
			fmt.Fprintln(w, "| Date | Amount | NAV | Units |")
			fmt.Fprintln(w, "|:---|---:|---:|---:|")
			for _, tx := range v.SIP.Transactions {
				fmt.Fprintf(w, "| %s | %s | %s | %s |\n", tx.Date, tx.Amount, tx.NAV, tx.Units)
			}
			fmt.Fprintf(w, "\nInvested %s over %d contributions at an average NAV of %s.\n",
				v.TotalSIPInvested(), len(v.SIP.Transactions), v.AverageNAV())
			return true
		})
	}

	return b.String()
}
