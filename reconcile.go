package fintrack

// Reconcile recomputes every budget's cumulative spent from the authoritative
// raw expense records: it zeroes all budgets first, then re-aggregates every
// matching expense using the canonical category predicate and period
// containment.
//
// This is an explicit, non-incremental bulk operation. It is not safe to
// interleave with concurrent single-expense applications on the same ledger:
// whichever finishes last wins the budget's spent figure. That tradeoff is
// deliberate; within this package a Ledger is single-writer, and callers that
// share one must serialize the sweep against appends themselves.
//
// The sweep never emits alerts: thresholds are crossing events tied to a user
// mutation, and re-deriving state is not one. Inactive budgets are zeroed but
// not re-aggregated: the apply path never feeds them, and the sweep must
// reproduce exactly what replaying the journal would.
func (l *Ledger) Reconcile() []Budget {
	for name, b := range l.budgets {
		b.Spent = M(0, b.Amount.Currency())
		if b.Active {
			for _, e := range l.expenses {
				// currency agreement matters: an expense recorded before the
				// budget existed may carry a currency the budget cannot sum.
				if SameCategory(b.Category, e.Category) && b.Period.Contains(e.Date) && e.Amount.SameCurrency(b.Amount) {
					b.Spent = b.Spent.Add(e.Amount)
				}
			}
		}
		l.budgets[name] = b
	}
	return l.Budgets()
}
