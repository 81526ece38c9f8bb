package fintrack

import (
	"testing"
	"time"
)

func TestLedger_ReconcileRebuildsSpentFromRawRecords(t *testing.T) {
	l := setupLedger(t)
	_, err := l.Append(
		NewExpense(NewDate(2026, time.January, 5), "", "Food", M(100, "EUR")),
		NewExpense(NewDate(2026, time.January, 12), "", "groceries", M(80, "EUR")),
		NewExpense(NewDate(2026, time.January, 20), "", "Transportation", M(40, "EUR")),
	)
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	// drift the derived figure, then let the sweep repair it.
	b, _ := l.Budget("groceries")
	b.Spent = M(999, "EUR")
	l.budgets["groceries"] = b

	l.Reconcile()

	b, _ = l.Budget("groceries")
	if !b.Spent.Equal(M(180, "EUR")) {
		t.Errorf("Spent = %s, want 180 re-aggregated from the raw records", b.Spent)
	}
}

func TestLedger_ReconcileSkipsInactiveBudgets(t *testing.T) {
	l := NewLedger()
	decl := NewDeclareBudget(NewDate(2026, time.January, 1), "paused", "Food", M(500, "EUR"), january)
	off := false
	decl.Active = &off
	_, err := l.Append(
		decl,
		NewExpense(NewDate(2026, time.January, 10), "", "Food", M(100, "EUR")),
	)
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	// the apply path never feeds an inactive budget, and the sweep must
	// agree: spent stays zero even with a matching expense on record.
	l.Reconcile()

	b, _ := l.Budget("paused")
	if !b.Spent.IsZero() {
		t.Errorf("Spent = %s, want 0 on an inactive budget after the sweep", b.Spent)
	}
}

func TestLedger_ReconcileIsIdempotent(t *testing.T) {
	l := setupLedger(t)
	if _, err := l.Append(NewExpense(NewDate(2026, time.January, 5), "", "Food", M(100, "EUR"))); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	first := l.Reconcile()
	second := l.Reconcile()
	if len(first) != len(second) {
		t.Fatalf("Reconcile() budget counts differ: %d then %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Spent.Equal(second[i].Spent) {
			t.Errorf("budget %q: spent %s then %s, want the sweep idempotent", first[i].Name, first[i].Spent, second[i].Spent)
		}
	}
}

func TestLedger_ReconcileHonorsPeriodAndCategory(t *testing.T) {
	l := NewLedger()
	_, err := l.Append(
		NewDeclareBudget(NewDate(2026, time.January, 1), "groceries", "Food", M(500, "EUR"), january),
		NewDeclareBudget(NewDate(2026, time.February, 1), "groceries-feb", "Food",
			M(500, "EUR"), NewRange(NewDate(2026, time.February, 1), NewDate(2026, time.February, 28))),
		NewExpense(NewDate(2026, time.January, 10), "", "Food", M(100, "EUR")),
		NewExpense(NewDate(2026, time.February, 10), "", "Food", M(70, "EUR")),
	)
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	l.Reconcile()

	jan, _ := l.Budget("groceries")
	feb, _ := l.Budget("groceries-feb")
	if !jan.Spent.Equal(M(100, "EUR")) {
		t.Errorf("january spent = %s, want 100", jan.Spent)
	}
	if !feb.Spent.Equal(M(70, "EUR")) {
		t.Errorf("february spent = %s, want 70", feb.Spent)
	}
}
