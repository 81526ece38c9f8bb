package fintrack

import (
	"errors"
	"testing"
	"time"
)

// january is the budget window most ledger tests run in.
var january = NewRange(NewDate(2026, time.January, 1), NewDate(2026, time.January, 31))

// setupLedger replays a small journal: one food budget, one debt, one
// investment, one salary.
func setupLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	_, err := l.Append(
		NewDeclareBudget(NewDate(2026, time.January, 1), "groceries", "Food", M(500, "EUR"), january),
		NewDeclareDebt(NewDate(2026, time.January, 1), "visa", "credit-card", "MyBank", M(1200, "EUR"), 12, M(100, "EUR"), Monthly),
		NewDeclareInvestment(NewDate(2026, time.January, 1), "ACME", "stock"),
		NewIncomeRecord(NewDate(2026, time.January, 1), "", M(3000, "EUR"), "salary", "ACME Corp", EveryMonth),
	)
	if err != nil {
		t.Fatalf("setup journal failed: %v", err)
	}
	return l
}

func TestLedger_ExpenseFeedsMatchingBudget(t *testing.T) {
	l := setupLedger(t)

	alerts, err := l.Append(NewExpense(NewDate(2026, time.January, 10), "market", "food & dining", M(300, "EUR")))
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	// 300/500 = 60% crosses the 50 threshold.
	if len(alerts) != 1 || alerts[0].Type != AlertThreshold50 {
		t.Errorf("alerts = %v, want a single %s", alerts, AlertThreshold50)
	}

	b, ok := l.Budget("groceries")
	if !ok {
		t.Fatal("budget groceries not found")
	}
	if !b.Spent.Equal(M(300, "EUR")) {
		t.Errorf("Spent = %s, want 300", b.Spent)
	}
	if len(l.Expenses()) != 1 {
		t.Errorf("Expenses = %d records, want the raw record kept", len(l.Expenses()))
	}
}

func TestLedger_UnmatchedExpenseIsStillKept(t *testing.T) {
	l := setupLedger(t)

	// no transportation budget exists, the record lands raw and untracked.
	_, err := l.Append(NewExpense(NewDate(2026, time.January, 10), "train", "Transportation", M(40, "EUR")))
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if len(l.Expenses()) != 1 {
		t.Fatalf("Expenses = %d records, want 1", len(l.Expenses()))
	}
	b, _ := l.Budget("groceries")
	if !b.Spent.IsZero() {
		t.Errorf("Spent = %s, want 0 for an unrelated category", b.Spent)
	}
}

func TestLedger_OverlappingActiveBudgetIsRejected(t *testing.T) {
	l := setupLedger(t)

	overlap := NewRange(NewDate(2026, time.January, 20), NewDate(2026, time.February, 20))
	_, err := l.Append(NewDeclareBudget(NewDate(2026, time.January, 20), "groceries2", "Food", M(300, "EUR"), overlap))
	if err == nil {
		t.Fatal("Append() expected an error for an overlapping active budget, got none")
	}

	// an inactive twin is fine.
	inactive := NewDeclareBudget(NewDate(2026, time.January, 20), "groceries3", "Food", M(300, "EUR"), overlap)
	off := false
	inactive.Active = &off
	if _, err := l.Append(inactive); err != nil {
		t.Fatalf("Append() failed for an inactive overlapping budget: %v", err)
	}

	// a different category is fine too.
	if _, err := l.Append(NewDeclareBudget(NewDate(2026, time.January, 20), "commute", "Transportation", M(100, "EUR"), overlap)); err != nil {
		t.Fatalf("Append() failed for a different category: %v", err)
	}
}

func TestLedger_InactiveBudgetIgnoresExpenses(t *testing.T) {
	l := NewLedger()
	decl := NewDeclareBudget(NewDate(2026, time.January, 1), "paused", "Food", M(500, "EUR"), january)
	off := false
	decl.Active = &off
	if _, err := l.Append(decl); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if _, err := l.Append(NewExpense(NewDate(2026, time.January, 10), "", "Food", M(100, "EUR"))); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	b, _ := l.Budget("paused")
	if !b.Spent.IsZero() {
		t.Errorf("Spent = %s, want 0 on an inactive budget", b.Spent)
	}
}

func TestLedger_MixedCurrencyExpenseRejected(t *testing.T) {
	l := setupLedger(t)
	records := len(l.Records())

	// a USD expense against the EUR groceries budget must bounce as a
	// ValidationError, never crash the replay.
	_, err := l.Append(NewExpense(NewDate(2026, time.January, 10), "", "Food", M(10, "USD")))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Append() error = %v, want a ValidationError", err)
	}
	if len(l.Records()) != records {
		t.Errorf("Records = %d, want %d: a rejected expense must not be kept", len(l.Records()), records)
	}
	b, _ := l.Budget("groceries")
	if !b.Spent.IsZero() {
		t.Errorf("Spent = %s, want 0 untouched", b.Spent)
	}
}

func TestLedger_MixedCurrencyPaymentRejected(t *testing.T) {
	l := setupLedger(t)

	_, err := l.Append(NewPaymentRecord(NewDate(2026, time.January, 15), "", "visa", M(100, "USD"), PaymentRegular))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Append() error = %v, want a ValidationError", err)
	}
	d, _ := l.Debt("visa")
	if !d.Balance.Equal(M(1200, "EUR")) {
		t.Errorf("Balance = %s, want 1200 untouched", d.Balance)
	}
}

func TestLedger_AppendIsAtomic(t *testing.T) {
	l := setupLedger(t)
	records := len(l.Records())

	// the payment overdraws the balance: the whole record must bounce.
	_, err := l.Append(NewPaymentRecord(NewDate(2026, time.January, 15), "", "visa", M(5000, "EUR"), PaymentRegular))
	if err == nil {
		t.Fatal("Append() expected an error, got none")
	}
	if len(l.Records()) != records {
		t.Errorf("Records = %d, want %d: a failed record must not be kept", len(l.Records()), records)
	}
	d, _ := l.Debt("visa")
	if !d.Balance.Equal(M(1200, "EUR")) {
		t.Errorf("Balance = %s, want 1200 untouched", d.Balance)
	}
}

func TestLedger_PaymentFlow(t *testing.T) {
	l := setupLedger(t)

	_, err := l.Append(
		NewPaymentRecord(NewDate(2026, time.January, 15), "", "visa", M(200, "EUR"), PaymentRegular),
		NewPaymentRecord(NewDate(2026, time.January, 31), "windfall", "visa", M(1000, "EUR"), PaymentExtra),
	)
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	d, _ := l.Debt("visa")
	if d.Status != DebtPaid {
		t.Errorf("Status = %s, want %s", d.Status, DebtPaid)
	}
	if !d.Balance.IsZero() {
		t.Errorf("Balance = %s, want 0", d.Balance)
	}
}

func TestLedger_PaymentRequiresDeclaredDebt(t *testing.T) {
	l := NewLedger()
	_, err := l.Append(NewPaymentRecord(NewDate(2026, time.January, 15), "", "ghost", M(10, "EUR"), PaymentRegular))
	if err == nil {
		t.Error("Append() expected an error for an undeclared debt, got none")
	}
}

func TestLedger_TradeFlow(t *testing.T) {
	l := setupLedger(t)

	_, err := l.Append(
		NewTradeRecord(RecBuy, NewDate(2026, time.January, 10), "", "ACME", Q(10), M(100, "EUR")),
		NewValueRecord(NewDate(2026, time.January, 31), "ACME", M(1100, "EUR")),
	)
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	v, _ := l.Investment("ACME")
	if !v.InvestedAmount.Equal(M(1000, "EUR")) {
		t.Errorf("InvestedAmount = %s, want 1000", v.InvestedAmount)
	}
	if !v.CurrentValue.Equal(M(1100, "EUR")) {
		t.Errorf("CurrentValue = %s, want 1100", v.CurrentValue)
	}
	if got, want := v.ProfitLoss(), M(100, "EUR"); !got.Equal(want) {
		t.Errorf("ProfitLoss() = %s, want %s", got, want)
	}
}

func TestLedger_IncomeIsClassifiedOnAppend(t *testing.T) {
	l := setupLedger(t)
	incomes := l.Incomes()
	if len(incomes) != 1 {
		t.Fatalf("Incomes = %d, want 1", len(incomes))
	}
	if !incomes[0].Recurring {
		t.Error("salary should be recurring")
	}
	if want := NewDate(2026, time.January, 31); incomes[0].NextOccurrence != want {
		t.Errorf("NextOccurrence = %s, want %s", incomes[0].NextOccurrence, want)
	}
}

func TestLedger_DuplicateDeclarationsAreRejected(t *testing.T) {
	l := setupLedger(t)
	testCases := []struct {
		name string
		rec  Record
	}{
		{name: "budget", rec: NewDeclareBudget(NewDate(2026, time.February, 1), "groceries", "Food", M(100, "EUR"), NewRange(NewDate(2026, time.March, 1), NewDate(2026, time.March, 31)))},
		{name: "debt", rec: NewDeclareDebt(NewDate(2026, time.February, 1), "visa", "credit-card", "OtherBank", M(100, "EUR"), 5, M(10, "EUR"), Monthly)},
		{name: "investment", rec: NewDeclareInvestment(NewDate(2026, time.February, 1), "ACME", "stock")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := l.Append(tc.rec); err == nil {
				t.Errorf("Append() expected an error for a duplicate %s, got none", tc.name)
			}
		})
	}
}
