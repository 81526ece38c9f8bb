package fintrack

import (
	"fmt"
	"sort"
)

// Ledger is the replayed state of a journal: every budget, debt, income
// record, and investment, plus the raw expense records the reconciliation
// sweep re-aggregates from.
//
// A Ledger is the unit of consistency. Appending a record either fully
// applies (state mutated, record kept) or fails and leaves the state
// untouched. Different ledgers are independent; the engine takes no locks.
type Ledger struct {
	records     []Record
	budgets     map[string]Budget
	debts       map[string]Debt
	investments map[string]Investment
	incomes     []Income
	expenses    []Expense
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		budgets:     make(map[string]Budget),
		debts:       make(map[string]Debt),
		investments: make(map[string]Investment),
	}
}

// Budget returns the budget declared with this name.
func (l *Ledger) Budget(name string) (Budget, bool) {
	b, ok := l.budgets[name]
	return b, ok
}

// Budgets returns all budgets sorted by name.
func (l *Ledger) Budgets() []Budget {
	out := make([]Budget, 0, len(l.budgets))
	for _, b := range l.budgets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Debt returns the debt declared with this name.
func (l *Ledger) Debt(name string) (Debt, bool) {
	d, ok := l.debts[name]
	return d, ok
}

// Debts returns all debts sorted by name.
func (l *Ledger) Debts() []Debt {
	out := make([]Debt, 0, len(l.debts))
	for _, d := range l.debts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Investment returns the investment declared with this name.
func (l *Ledger) Investment(name string) (Investment, bool) {
	v, ok := l.investments[name]
	return v, ok
}

// Investments returns all investments sorted by name.
func (l *Ledger) Investments() []Investment {
	out := make([]Investment, 0, len(l.investments))
	for _, v := range l.investments {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Incomes returns the income records in journal order.
func (l *Ledger) Incomes() []Income { return l.incomes }

// Expenses returns the raw expense records in journal order.
func (l *Ledger) Expenses() []Expense { return l.expenses }

// Records returns the journal records in replay order.
func (l *Ledger) Records() []Record { return l.records }

// Append validates the record against the current state, applies it, and
// keeps it in the journal. It returns any budget alerts the record derived.
// On error no state is mutated and the record is discarded.
func (l *Ledger) Append(records ...Record) ([]Alert, error) {
	var alerts []Alert
	for _, r := range records {
		if err := r.Validate(l); err != nil {
			return alerts, err
		}
		a, err := l.apply(r)
		if err != nil {
			return alerts, err
		}
		alerts = append(alerts, a...)
		l.records = append(l.records, r)
	}
	return alerts, nil
}

// apply mutates the ledger state for one validated record.
func (l *Ledger) apply(r Record) ([]Alert, error) {
	switch rec := r.(type) {
	case DeclareBudget:
		l.budgets[rec.Name] = Budget{
			Name:          rec.Name,
			Category:      rec.Category,
			Amount:        rec.Amount,
			Period:        NewRange(rec.From, rec.To),
			Spent:         M(0, rec.Amount.Currency()),
			Alert50:       rec.Alert50,
			Alert75:       rec.Alert75,
			Alert100:      rec.Alert100,
			AlertExceeded: rec.AlertExceeded,
			Active:        rec.IsActive(),
		}
		return nil, nil

	case Expense:
		// The expense is kept as a raw record regardless of budget matches;
		// the reconciliation sweep re-aggregates from these.
		var alerts []Alert
		for name, b := range l.budgets {
			if !b.Active || !SameCategory(b.Category, rec.Category) || !b.Period.Contains(rec.Date) {
				continue
			}
			updated, a, err := b.ApplyExpense(rec.Amount, rec.Category, rec.Date)
			if err != nil {
				return nil, err
			}
			l.budgets[name] = updated
			alerts = append(alerts, a...)
		}
		l.expenses = append(l.expenses, rec)
		return alerts, nil

	case DeclareDebt:
		l.debts[rec.Name] = Debt{
			Name:           rec.Name,
			Type:           rec.DebtType,
			Creditor:       rec.Creditor,
			OriginalAmount: rec.Amount,
			Balance:        rec.Amount,
			InterestRate:   rec.InterestRate,
			MinimumPayment: rec.MinimumPayment,
			Cadence:        rec.Cadence,
			Status:         DebtActive,
		}
		return nil, nil

	case PaymentRecord:
		d := l.debts[rec.Debt]
		updated, err := d.AddPayment(rec.Amount, rec.PayType, rec.Memo, rec.Date)
		if err != nil {
			return nil, err
		}
		l.debts[rec.Debt] = updated
		return nil, nil

	case IncomeRecord:
		income := Income{
			Amount:    rec.Amount,
			Category:  rec.Category,
			Source:    rec.Source,
			Date:      rec.Date,
			Frequency: rec.Frequency,
		}
		l.incomes = append(l.incomes, income.Classify())
		return nil, nil

	case DeclareInvestment:
		v := Investment{Name: rec.Name, Type: rec.InvType}
		if rec.IsSIP() {
			v.SIP = &SIPPlan{
				Amount:    rec.SIPAmount,
				Start:     rec.SIPStart,
				Frequency: rec.SIPFrequency,
			}
		}
		l.investments[rec.Name] = v
		return nil, nil

	case TradeRecord:
		v := l.investments[rec.Investment]
		updated, err := v.ApplyTransaction(rec.tx())
		if err != nil {
			return nil, err
		}
		l.investments[rec.Investment] = updated
		return nil, nil

	case SIPRecord:
		v := l.investments[rec.Investment]
		updated, err := v.ApplySIP(rec.Amount, rec.NAV, rec.Units, rec.Memo, rec.Date)
		if err != nil {
			return nil, err
		}
		l.investments[rec.Investment] = updated
		return nil, nil

	case ValueRecord:
		v := l.investments[rec.Investment]
		updated, err := v.Revalue(rec.Amount)
		if err != nil {
			return nil, err
		}
		l.investments[rec.Investment] = updated
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown record type %q", r.What())
	}
}

// sortRecords orders the journal chronologically, keeping the original order
// for same-day records so declarations stay ahead of the first mutation.
func sortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].When().Before(records[j].When())
	})
}
