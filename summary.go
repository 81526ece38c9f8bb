package fintrack

// Summary is the whole-ledger financial snapshot on a given date: budget
// headroom, outstanding debt, portfolio totals, the next expected income,
// and the resulting net position.
type Summary struct {
	Date Date

	// Budgets covering the date.
	BudgetCap   Money
	BudgetSpent Money
	OverBudget  int // budgets past their cap

	// Debts still carrying a balance.
	DebtBalance Money
	DebtPaid    Money
	ActiveDebts int

	Portfolio  PortfolioSummary
	NextIncome *Income

	// NetPosition is the portfolio's current value minus outstanding debt.
	NetPosition Money
}

// NewSummary computes the snapshot for the ledger as of the given date.
//
// Only active budgets whose period contains the date count toward headroom;
// expired or future budgets are deliberately out of the picture. Debts keep
// counting until paid off.
func NewSummary(l *Ledger, on Date) *Summary {
	s := &Summary{Date: on}

	for _, b := range l.Budgets() {
		if !b.Active || !b.Period.Contains(on) {
			continue
		}
		s.BudgetCap = s.BudgetCap.Add(b.Amount)
		s.BudgetSpent = s.BudgetSpent.Add(b.Spent)
		if b.IsOverBudget() {
			s.OverBudget++
		}
	}

	for _, d := range l.Debts() {
		s.DebtPaid = s.DebtPaid.Add(d.TotalPaid())
		if d.Status != DebtActive {
			continue
		}
		s.DebtBalance = s.DebtBalance.Add(d.Balance)
		s.ActiveDebts++
	}

	s.Portfolio = NewPortfolioSummary(l.Investments(), nil)
	s.NextIncome = NextExpectedIncome(l.Incomes(), on)
	s.NetPosition = s.Portfolio.CurrentValue.Sub(s.DebtBalance)
	return s
}

// BudgetHeadroom returns how much of the aggregated caps is still unspent,
// floored at zero.
func (s *Summary) BudgetHeadroom() Money {
	left := s.BudgetCap.Sub(s.BudgetSpent)
	if left.IsNegative() {
		return M(0, s.BudgetCap.Currency())
	}
	return left
}
