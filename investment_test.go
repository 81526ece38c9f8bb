package fintrack

import (
	"errors"
	"testing"
	"time"
)

func TestInvestment_BuyAndSell(t *testing.T) {
	v := Investment{Name: "ACME", Type: "stock"}

	// Buy 10 @ 100: basis 1000.
	v, err := v.ApplyTransaction(InvestmentTx{
		Type: TxBuy, Quantity: Q(10), Price: M(100, "EUR"), Date: NewDate(2026, time.January, 10),
	})
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if !v.InvestedAmount.Equal(M(1000, "EUR")) {
		t.Errorf("InvestedAmount = %s, want 1000", v.InvestedAmount)
	}
	if !v.Quantity.Equal(Q(10)) {
		t.Errorf("Quantity = %s, want 10", v.Quantity)
	}
	if want := NewDate(2026, time.January, 10); v.PurchaseDate != want {
		t.Errorf("PurchaseDate = %s, want %s", v.PurchaseDate, want)
	}

	// Buy 10 @ 200: basis 3000, purchase price tracks the latest buy.
	v, err = v.ApplyTransaction(InvestmentTx{
		Type: TxBuy, Quantity: Q(10), Price: M(200, "EUR"), Date: NewDate(2026, time.February, 10),
	})
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if !v.InvestedAmount.Equal(M(3000, "EUR")) {
		t.Errorf("InvestedAmount = %s, want 3000", v.InvestedAmount)
	}
	if !v.PurchasePrice.Equal(M(200, "EUR")) {
		t.Errorf("PurchasePrice = %s, want 200", v.PurchasePrice)
	}
	if want := NewDate(2026, time.January, 10); v.PurchaseDate != want {
		t.Errorf("PurchaseDate = %s, want the first buy %s", v.PurchaseDate, want)
	}

	// Sell 5 of 20: the basis sheds 5/20 of itself, 3000 - 750 = 2250 on
	// 15 units.
	v, err = v.ApplyTransaction(InvestmentTx{
		Type: TxSell, Quantity: Q(5), Price: M(250, "EUR"), Date: NewDate(2026, time.March, 1),
	})
	if err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if !v.InvestedAmount.Equal(M(2250, "EUR")) {
		t.Errorf("InvestedAmount = %s, want 2250 after selling a quarter", v.InvestedAmount)
	}
	if !v.Quantity.Equal(Q(15)) {
		t.Errorf("Quantity = %s, want 15", v.Quantity)
	}
}

func TestInvestment_OversellIsCapped(t *testing.T) {
	v := Investment{Name: "ACME"}
	v, _ = v.ApplyTransaction(InvestmentTx{
		Type: TxBuy, Quantity: Q(10), Price: M(100, "EUR"), Date: NewDate(2026, time.January, 10),
	})

	// Selling 25 with only 10 held liquidates the position and zeroes the
	// basis, it never goes negative.
	v, err := v.ApplyTransaction(InvestmentTx{
		Type: TxSell, Quantity: Q(25), Price: M(120, "EUR"), Date: NewDate(2026, time.February, 1),
	})
	if err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if !v.Quantity.IsZero() {
		t.Errorf("Quantity = %s, want 0 after overselling", v.Quantity)
	}
	if !v.InvestedAmount.IsZero() {
		t.Errorf("InvestedAmount = %s, want 0 after full liquidation", v.InvestedAmount)
	}

	// the history books the 10 units actually sold, 10*120 = 1200, never
	// proceeds for the requested excess.
	last := v.Transactions[len(v.Transactions)-1]
	if !last.Quantity.Equal(Q(10)) {
		t.Errorf("recorded Quantity = %s, want the 10 units actually sold", last.Quantity)
	}
	if !last.Amount.Equal(M(1200, "EUR")) {
		t.Errorf("recorded Amount = %s, want 1200 from the units actually sold", last.Amount)
	}
}

func TestInvestment_SplitAndBonus(t *testing.T) {
	v := Investment{Name: "ACME"}
	v, _ = v.ApplyTransaction(InvestmentTx{
		Type: TxBuy, Quantity: Q(10), Price: M(300, "EUR"), Date: NewDate(2026, time.January, 10),
	})

	// 3-for-1 split: 30 units, purchase price 100, basis untouched.
	v, err := v.ApplyTransaction(InvestmentTx{
		Type: TxSplit, Quantity: Q(3), Date: NewDate(2026, time.February, 1),
	})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if !v.Quantity.Equal(Q(30)) {
		t.Errorf("Quantity = %s, want 30 after a 3-for-1 split", v.Quantity)
	}
	if !v.PurchasePrice.Equal(M(100, "EUR")) {
		t.Errorf("PurchasePrice = %s, want 100 after the split", v.PurchasePrice)
	}
	if !v.InvestedAmount.Equal(M(3000, "EUR")) {
		t.Errorf("InvestedAmount = %s, want 3000 untouched by the split", v.InvestedAmount)
	}

	// 5 bonus units: free, so again only the quantity moves.
	v, err = v.ApplyTransaction(InvestmentTx{
		Type: TxBonus, Quantity: Q(5), Date: NewDate(2026, time.March, 1),
	})
	if err != nil {
		t.Fatalf("bonus failed: %v", err)
	}
	if !v.Quantity.Equal(Q(35)) {
		t.Errorf("Quantity = %s, want 35 after the bonus", v.Quantity)
	}
	if !v.InvestedAmount.Equal(M(3000, "EUR")) {
		t.Errorf("InvestedAmount = %s, want 3000 untouched by the bonus", v.InvestedAmount)
	}
}

func TestInvestment_DividendTouchesNothing(t *testing.T) {
	v := Investment{Name: "ACME"}
	v, _ = v.ApplyTransaction(InvestmentTx{
		Type: TxBuy, Quantity: Q(10), Price: M(100, "EUR"), Date: NewDate(2026, time.January, 10),
	})

	v, err := v.ApplyTransaction(InvestmentTx{
		Type: TxDividend, Amount: M(50, "EUR"), Date: NewDate(2026, time.February, 1),
	})
	if err != nil {
		t.Fatalf("dividend failed: %v", err)
	}
	if !v.Quantity.Equal(Q(10)) || !v.InvestedAmount.Equal(M(1000, "EUR")) {
		t.Errorf("dividend moved quantity or basis: %s units, %s basis", v.Quantity, v.InvestedAmount)
	}
	if len(v.Transactions) != 2 {
		t.Errorf("Transactions = %d entries, want the dividend on the history", len(v.Transactions))
	}
}

func TestInvestment_InvalidTransactions(t *testing.T) {
	v := Investment{Name: "ACME"}

	testCases := []struct {
		name string
		tx   InvestmentTx
	}{
		{name: "buy with zero quantity", tx: InvestmentTx{Type: TxBuy, Quantity: Q(0), Price: M(100, "EUR")}},
		{name: "buy with zero price", tx: InvestmentTx{Type: TxBuy, Quantity: Q(10), Price: M(0, "EUR")}},
		{name: "sell with negative quantity", tx: InvestmentTx{Type: TxSell, Quantity: Q(-5), Price: M(100, "EUR")}},
		{name: "dividend without amount", tx: InvestmentTx{Type: TxDividend}},
		{name: "split with zero ratio", tx: InvestmentTx{Type: TxSplit, Quantity: Q(0)}},
		{name: "unknown type", tx: InvestmentTx{Type: "short", Quantity: Q(1), Price: M(1, "EUR")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := v.ApplyTransaction(tc.tx)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ApplyTransaction() error = %v, want a ValidationError", err)
			}
			if len(updated.Transactions) != 0 {
				t.Errorf("a rejected transaction landed on the history")
			}
		})
	}
}

func TestInvestment_MixedCurrencyRejected(t *testing.T) {
	v := Investment{Name: "ACME"}
	v, err := v.ApplyTransaction(InvestmentTx{
		Type: TxBuy, Quantity: Q(10), Price: M(100, "EUR"), Date: NewDate(2026, time.January, 10),
	})
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}

	testCases := []struct {
		name string
		tx   InvestmentTx
	}{
		{name: "buy in another currency", tx: InvestmentTx{Type: TxBuy, Quantity: Q(1), Price: M(100, "USD")}},
		{name: "sell in another currency", tx: InvestmentTx{Type: TxSell, Quantity: Q(1), Price: M(100, "USD")}},
		{name: "dividend in another currency", tx: InvestmentTx{Type: TxDividend, Amount: M(10, "USD")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := v.ApplyTransaction(tc.tx)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ApplyTransaction() error = %v, want a ValidationError", err)
			}
			if len(updated.Transactions) != 1 {
				t.Errorf("a rejected transaction landed on the history")
			}
		})
	}

	if _, err := v.Revalue(M(1200, "USD")); err == nil {
		t.Error("Revalue() accepted a value in another currency")
	}
}

func TestInvestment_HistoryStaysDateOrdered(t *testing.T) {
	v := Investment{Name: "ACME"}
	days := []Date{
		NewDate(2026, time.March, 1),
		NewDate(2026, time.January, 10),
		NewDate(2026, time.February, 5),
	}
	for _, day := range days {
		var err error
		v, err = v.ApplyTransaction(InvestmentTx{Type: TxBuy, Quantity: Q(1), Price: M(100, "EUR"), Date: day})
		if err != nil {
			t.Fatalf("buy failed: %v", err)
		}
	}
	for i := 1; i < len(v.Transactions); i++ {
		if v.Transactions[i].Date.Before(v.Transactions[i-1].Date) {
			t.Fatalf("history out of order at %d: %s before %s", i, v.Transactions[i].Date, v.Transactions[i-1].Date)
		}
	}
}

func TestInvestment_SIP(t *testing.T) {
	v := Investment{
		Name: "indexfund",
		Type: "mutual-fund",
		SIP: &SIPPlan{
			Amount:    M(100, "EUR"),
			Start:     NewDate(2026, time.January, 1),
			Frequency: EveryMonth,
		},
	}

	// 100 at NAV 20 defaults to 5 units.
	v, err := v.ApplySIP(M(100, "EUR"), M(20, "EUR"), Q(0), "", NewDate(2026, time.January, 1))
	if err != nil {
		t.Fatalf("ApplySIP() failed: %v", err)
	}
	// explicit units win over the derived default.
	v, err = v.ApplySIP(M(100, "EUR"), M(25, "EUR"), Q(3.9), "", NewDate(2026, time.February, 1))
	if err != nil {
		t.Fatalf("ApplySIP() failed: %v", err)
	}

	if got := len(v.SIP.Transactions); got != 2 {
		t.Fatalf("SIP transactions = %d, want 2", got)
	}
	if !v.SIP.Transactions[0].Units.Equal(Q(5)) {
		t.Errorf("derived units = %s, want 5", v.SIP.Transactions[0].Units)
	}
	if !v.SIP.Transactions[1].Units.Equal(Q(3.9)) {
		t.Errorf("explicit units = %s, want 3.9", v.SIP.Transactions[1].Units)
	}
	// the SIP ledger is parallel: top-level figures stay untouched.
	if !v.Quantity.IsZero() || !v.InvestedAmount.IsZero() {
		t.Errorf("SIP moved the top-level position: %s units, %s basis", v.Quantity, v.InvestedAmount)
	}
	if got, want := v.TotalSIPInvested(), M(200, "EUR"); !got.Equal(want) {
		t.Errorf("TotalSIPInvested() = %s, want %s", got, want)
	}
	// mean of 20 and 25.
	if got, want := v.AverageNAV(), M(22.5, "EUR"); !got.Equal(want) {
		t.Errorf("AverageNAV() = %s, want %s", got, want)
	}

	// an installment in another currency never reaches the plan ledger.
	if _, err := v.ApplySIP(M(100, "USD"), M(20, "USD"), Q(0), "", NewDate(2026, time.March, 1)); err == nil {
		t.Error("ApplySIP() accepted an installment in another currency")
	}
}

func TestInvestment_SIPRequiresAPlan(t *testing.T) {
	v := Investment{Name: "ACME", Type: "stock"}
	_, err := v.ApplySIP(M(100, "EUR"), M(20, "EUR"), Q(0), "", NewDate(2026, time.January, 1))
	var serr *InvalidStateError
	if !errors.As(err, &serr) {
		t.Fatalf("ApplySIP() error = %v, want an InvalidStateError", err)
	}
}

func TestInvestment_DerivedReturns(t *testing.T) {
	v := Investment{Name: "ACME"}
	v, _ = v.ApplyTransaction(InvestmentTx{
		Type: TxBuy, Quantity: Q(10), Price: M(100, "EUR"), Date: NewDate(2025, time.January, 1),
	})
	v, err := v.Revalue(M(1200, "EUR"))
	if err != nil {
		t.Fatalf("Revalue() failed: %v", err)
	}

	if got, want := v.ProfitLoss(), M(200, "EUR"); !got.Equal(want) {
		t.Errorf("ProfitLoss() = %s, want %s", got, want)
	}
	if got := v.ProfitLossPercent(); !got.Equal(20) {
		t.Errorf("ProfitLossPercent() = %s, want 20%%", got)
	}

	// exactly one 365-day year: annualized equals the total return.
	now := NewDate(2026, time.January, 1)
	if got := v.DaysHeld(now); got != 365 {
		t.Errorf("DaysHeld() = %d, want 365", got)
	}
	if got := v.AnnualizedReturn(now); !got.Equal(20) {
		t.Errorf("AnnualizedReturn() = %s, want 20%%", got)
	}
}

func TestInvestment_DerivedReturnsDegenerate(t *testing.T) {
	var v Investment
	now := NewDate(2026, time.January, 1)
	if got := v.ProfitLossPercent(); got != 0 {
		t.Errorf("ProfitLossPercent() = %s, want 0 on a zero basis", got)
	}
	if got := v.DaysHeld(now); got != 0 {
		t.Errorf("DaysHeld() = %d, want 0 before any buy", got)
	}
	if got := v.AnnualizedReturn(now); got != 0 {
		t.Errorf("AnnualizedReturn() = %s, want 0 before any buy", got)
	}
}

func TestNewPortfolioSummary(t *testing.T) {
	investments := []Investment{
		{Name: "ACME", Type: "stock", InvestedAmount: M(1000, "EUR"), CurrentValue: M(1200, "EUR")},
		{Name: "indexfund", Type: "mutual-fund", InvestedAmount: M(2000, "EUR"), CurrentValue: M(1800, "EUR")},
		{Name: "world", Type: "etf", InvestedAmount: M(1000, "EUR"), CurrentValue: M(1000, "EUR")},
	}

	testCases := []struct {
		name         string
		filter       func(Investment) bool
		wantInvested Money
		wantValue    Money
		wantCount    int
	}{
		{
			name:         "nil filter takes everything",
			wantInvested: M(4000, "EUR"),
			wantValue:    M(4000, "EUR"),
			wantCount:    3,
		},
		{
			name:         "filter by type",
			filter:       func(v Investment) bool { return v.Type == "stock" },
			wantInvested: M(1000, "EUR"),
			wantValue:    M(1200, "EUR"),
			wantCount:    1,
		},
		{
			name:      "empty selection never divides",
			filter:    func(Investment) bool { return false },
			wantCount: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewPortfolioSummary(investments, tc.filter)
			if s.Count != tc.wantCount {
				t.Errorf("Count = %d, want %d", s.Count, tc.wantCount)
			}
			if !s.TotalInvested.Equal(tc.wantInvested) {
				t.Errorf("TotalInvested = %s, want %s", s.TotalInvested, tc.wantInvested)
			}
			if !s.CurrentValue.Equal(tc.wantValue) {
				t.Errorf("CurrentValue = %s, want %s", s.CurrentValue, tc.wantValue)
			}
			if tc.wantCount == 0 && s.PnLPercent != 0 {
				t.Errorf("PnLPercent = %s, want 0 on an empty selection", s.PnLPercent)
			}
		})
	}
}
