package fintrack

import "github.com/shopspring/decimal"

// A Budget caps spending for one category over a bounded period. The cap and
// the cumulative spent are the only stored figures; progress, remaining
// headroom, and status tiers are always derived from them on demand.
type Budget struct {
	Name          string
	Category      string
	Amount        Money // the cap
	Period        Range // active window, boundaries included
	Spent         Money
	Alert50       bool
	Alert75       bool
	Alert100      bool
	AlertExceeded bool
	Active        bool
}

// AlertType identifies a budget alert event.
type AlertType string

const (
	AlertThreshold50  AlertType = "threshold-50"
	AlertThreshold75  AlertType = "threshold-75"
	AlertThreshold100 AlertType = "threshold-100"
	AlertOverrun      AlertType = "exceeded"
)

// Alert is a pure output event derived while applying an expense. Alerts are
// not persisted state; the caller decides notification and delivery.
type Alert struct {
	Budget     string
	Type       AlertType
	Percentage Percent // progress after the expense that triggered the alert
	Date       Date
}

// ApplyExpense applies an expense to the budget and returns the updated
// budget along with the alerts triggered by the new spending level.
//
// The expense must have a positive amount in the budget's currency, a
// category matching the budget's, and a date within the budget period
// (boundaries included). Any violation
// returns a ValidationError naming the specific mismatch, and the budget is
// returned unchanged.
//
// Each enabled threshold (50, 75, 100) fires at most once per monotonic
// crossing: an expense that keeps the progress at or above an already-crossed
// threshold does not re-fire it. The exceeded alert fires only on the
// transition from within-cap to over-cap.
func (b Budget) ApplyExpense(amount Money, category string, on Date) (Budget, []Alert, error) {
	const op = "apply-expense"
	if !amount.IsPositive() {
		return b, nil, validationf(op, "amount must be positive, got %s", amount)
	}
	if !amount.SameCurrency(b.Amount) {
		return b, nil, validationf(op, "amount currency %s does not match budget currency %s", amount.Currency(), b.Amount.Currency())
	}
	if !SameCategory(category, b.Category) {
		return b, nil, validationf(op, "category %q does not match budget category %q", category, b.Category)
	}
	if !b.Period.Contains(on) {
		return b, nil, validationf(op, "date %s is outside the budget period %s to %s", on, b.Period.From, b.Period.To)
	}

	previousSpent := b.Spent
	wasOver := b.Spent.GreaterThan(b.Amount)

	b.Spent = b.Spent.Add(amount)

	progress := b.Spent.PercentOf(b.Amount)

	// Crossings are decided in exact decimal, comparing spent*100 against
	// threshold*cap, so a spent landing exactly on a threshold never
	// mis-classifies through a float64 rounding.
	hundred := decimal.NewFromInt(100)
	var alerts []Alert
	crossing := func(enabled bool, threshold int64, t AlertType) {
		if !enabled {
			return
		}
		mark := b.Amount.Scale(decimal.NewFromInt(threshold))
		if previousSpent.Scale(hundred).GreaterThanOrEqual(mark) || b.Spent.Scale(hundred).LessThan(mark) {
			return
		}
		alerts = append(alerts, Alert{Budget: b.Name, Type: t, Percentage: progress, Date: on})
	}
	crossing(b.Alert50, 50, AlertThreshold50)
	crossing(b.Alert75, 75, AlertThreshold75)
	crossing(b.Alert100, 100, AlertThreshold100)
	if b.AlertExceeded && !wasOver && b.Spent.GreaterThan(b.Amount) {
		alerts = append(alerts, Alert{Budget: b.Name, Type: AlertOverrun, Percentage: progress, Date: on})
	}

	return b, alerts, nil
}

// Progress returns spent over cap as a percentage. It is not capped and may
// exceed 100.
func (b Budget) Progress() Percent {
	return b.Spent.PercentOf(b.Amount)
}

// Remaining returns the headroom left in the budget, floored at zero.
func (b Budget) Remaining() Money {
	if b.Spent.GreaterThanOrEqual(b.Amount) {
		return M(0, b.Amount.Currency())
	}
	return b.Amount.Sub(b.Spent)
}

// IsOverBudget reports whether spending exceeds the cap.
func (b Budget) IsOverBudget() bool {
	return b.Spent.GreaterThan(b.Amount)
}

// BudgetStatus tiers a budget by its progress percentage.
type BudgetStatus int

const (
	StatusUnder BudgetStatus = iota
	StatusOnTrack
	StatusNear
	StatusOver
)

func (s BudgetStatus) String() string {
	switch s {
	case StatusUnder:
		return "under"
	case StatusOnTrack:
		return "on-track"
	case StatusNear:
		return "near"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Color returns the display class conventionally mapped to the status tier.
func (s BudgetStatus) Color() string {
	switch s {
	case StatusUnder:
		return "success"
	case StatusOnTrack:
		return "info"
	case StatusNear:
		return "warning"
	case StatusOver:
		return "danger"
	default:
		return "muted"
	}
}

// Status returns the budget's tier for the current progress.
func (b Budget) Status() BudgetStatus {
	switch p := b.Progress(); {
	case p > 100:
		return StatusOver
	case p >= 85:
		return StatusNear
	case p >= 50:
		return StatusOnTrack
	default:
		return StatusUnder
	}
}
