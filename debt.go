package fintrack

import "github.com/shopspring/decimal"

// PaymentType qualifies a debt payment.
type PaymentType string

const (
	PaymentRegular PaymentType = "regular"
	PaymentExtra   PaymentType = "extra"
	PaymentMinimum PaymentType = "minimum"
)

// Payment is one entry in a debt's payment history.
type Payment struct {
	Amount Money
	Date   Date
	Type   PaymentType
	Memo   string
}

// DebtStatus is the lifecycle state of a debt.
type DebtStatus string

const (
	DebtActive DebtStatus = "active"
	DebtPaid   DebtStatus = "paid-off"
	// DebtDefaulted is set externally; the engine never transitions into it.
	DebtDefaulted DebtStatus = "defaulted"
)

// A Debt tracks a balance owed to a creditor under a payment stream. The
// balance only ever decreases through AddPayment, and the status moves
// active to paid-off exactly when the balance reaches zero, never back.
type Debt struct {
	Name           string
	Type           string // e.g. "credit-card", "mortgage", "personal-loan"
	Creditor       string
	OriginalAmount Money
	Balance        Money
	InterestRate   Percent // annual, 0-100
	MinimumPayment Money
	Cadence        Period // payment cadence
	Status         DebtStatus
	Payments       []Payment
}

// AddPayment applies a payment to the debt and returns the updated debt.
//
// The debt must be active, and the amount must be in the debt's currency and
// satisfy 0 < amount ≤ balance.
// On any violation the debt is returned unchanged: a non-active status is an
// InvalidStateError, a bad amount a ValidationError. When the payment brings
// the balance to exactly zero the debt transitions to paid-off.
func (d Debt) AddPayment(amount Money, ptype PaymentType, memo string, on Date) (Debt, error) {
	const op = "add-payment"
	if d.Status != DebtActive {
		return d, invalidStatef(op, "debt %q is %s, only active debts accept payments", d.Name, d.Status)
	}
	if !amount.IsPositive() {
		return d, validationf(op, "amount must be positive, got %s", amount)
	}
	if !amount.SameCurrency(d.Balance) {
		return d, validationf(op, "amount currency %s does not match debt currency %s", amount.Currency(), d.Balance.Currency())
	}
	if amount.GreaterThan(d.Balance) {
		return d, validationf(op, "amount %s exceeds current balance %s", amount, d.Balance)
	}

	d.Payments = append(d.Payments, Payment{Amount: amount, Date: on, Type: ptype, Memo: memo})
	d.Balance = d.Balance.Sub(amount)
	if d.Balance.IsZero() {
		d.Status = DebtPaid
	}
	return d, nil
}

// TotalPaid returns the sum of all recorded payments.
func (d Debt) TotalPaid() Money {
	total := M(0, d.Balance.Currency())
	for _, p := range d.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Progress returns the share of the original amount already paid off.
func (d Debt) Progress() Percent {
	return d.OriginalAmount.Sub(d.Balance).PercentOf(d.OriginalAmount)
}

// monthlyEquivalentPayment converts the minimum payment at the debt's cadence
// into a monthly figure for the amortization estimate.
func (d Debt) monthlyEquivalentPayment() Money {
	switch d.Cadence {
	case Weekly:
		return d.MinimumPayment.Scale(decimal.NewFromInt(52).Div(decimal.NewFromInt(12)))
	case Quarterly:
		return d.MinimumPayment.Scale(decimal.NewFromInt(1).Div(decimal.NewFromInt(3)))
	case Yearly:
		return d.MinimumPayment.Scale(decimal.NewFromInt(1).Div(decimal.NewFromInt(12)))
	default:
		return d.MinimumPayment
	}
}

// maxPayoffMonths bounds the amortization simulation. A century of monthly
// periods is beyond any realistic consumer debt; hitting the bound means the
// balance is shrinking too slowly to call the projection meaningful.
const maxPayoffMonths = 1200

// PayoffProjection estimates the date the debt reaches a zero balance,
// starting from the given date: a declining-balance amortization where each
// simulated month interest accrues on the remaining balance and then the
// monthly-equivalent payment is applied.
//
// When the payment does not cover the accruing interest the balance never
// decreases; this is detected explicitly (non-decreasing balance, plus an
// iteration cap as a backstop) and reported as a NonConvergentError rather
// than looping.
func (d Debt) PayoffProjection(from Date) (Date, error) {
	if d.Balance.IsZero() {
		return from, nil
	}

	monthlyRate := decimal.NewFromFloat(float64(d.InterestRate)).Div(decimal.NewFromInt(100 * 12))
	payment := d.monthlyEquivalentPayment()
	if !payment.IsPositive() {
		return Date{}, &NonConvergentError{Debt: d.Name}
	}

	balance := d.Balance
	for month := 1; month <= maxPayoffMonths; month++ {
		next := balance.Add(balance.Scale(monthlyRate)).Sub(payment)
		if !next.IsPositive() {
			return from.AddMonth(month), nil
		}
		if next.GreaterThanOrEqual(balance) {
			return Date{}, &NonConvergentError{Debt: d.Name}
		}
		balance = next
	}
	return Date{}, &NonConvergentError{Debt: d.Name}
}
