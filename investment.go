package fintrack

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// TxType identifies an investment transaction.
type TxType string

const (
	TxBuy      TxType = "buy"
	TxSell     TxType = "sell"
	TxDividend TxType = "dividend"
	TxSplit    TxType = "split"
	TxBonus    TxType = "bonus"
)

// InvestmentTx is one entry in an investment's transaction history. The
// history is append-only and date-ordered; recording the same transaction
// twice records it twice.
type InvestmentTx struct {
	Type     TxType
	Quantity Quantity
	Price    Money
	Amount   Money
	Date     Date
	Memo     string
}

// SIPTx is one contribution in the SIP sub-ledger.
type SIPTx struct {
	Amount Money
	NAV    Money
	Units  Quantity
	Date   Date
	Memo   string
}

// SIPPlan is a recurring fixed-amount contribution plan layered on an
// investment. Its transactions are a parallel ledger: they never alter the
// top-level quantity or cost basis, aggregation happens at read time.
type SIPPlan struct {
	Amount       Money
	Start        Date
	Frequency    Frequency
	Transactions []SIPTx
}

// An Investment is a single holding. InvestedAmount is the cost basis and
// moves together with Quantity on buys and sells; CurrentValue comes from
// explicit valuation records (the engine never fetches prices). Profit/loss
// and return figures are always derived, never stored.
type Investment struct {
	Name           string
	Type           string // e.g. "stock", "mutual-fund", "etf"
	InvestedAmount Money
	CurrentValue   Money
	Quantity       Quantity
	PurchasePrice  Money // latest buy price
	PurchaseDate   Date  // first buy, anchors the holding duration
	SIP            *SIPPlan
	Transactions   []InvestmentTx
}

// ApplyTransaction applies a buy, sell, dividend, split, or bonus to the
// investment and returns the updated investment.
//
// Buy adds quantity*price to the cost basis; Sell reduces the cost basis by
// the fraction of the pre-sale quantity being sold (weighted-average-cost
// reduction, not lot tracking) and floors the quantity at zero. Dividend
// records cash received without touching basis or quantity. Split rescales
// the quantity by the given ratio; Bonus adds free units. Every transaction
// is appended to the date-ordered history.
func (v Investment) ApplyTransaction(tx InvestmentTx) (Investment, error) {
	const op = "apply-transaction"
	switch tx.Type {
	case TxBuy:
		if !tx.Quantity.IsPositive() || !tx.Price.IsPositive() {
			return v, validationf(op, "buy requires positive quantity and price, got %s at %s", tx.Quantity, tx.Price)
		}
		if !tx.Price.SameCurrency(v.InvestedAmount) {
			return v, validationf(op, "price currency %s does not match holding currency %s", tx.Price.Currency(), v.InvestedAmount.Currency())
		}
		tx.Amount = tx.Price.Mul(tx.Quantity)
		v.InvestedAmount = v.InvestedAmount.Add(tx.Amount)
		v.Quantity = v.Quantity.Add(tx.Quantity)
		v.PurchasePrice = tx.Price
		if v.PurchaseDate.IsZero() {
			v.PurchaseDate = tx.Date
		}

	case TxSell:
		if !tx.Quantity.IsPositive() || !tx.Price.IsPositive() {
			return v, validationf(op, "sell requires positive quantity and price, got %s at %s", tx.Quantity, tx.Price)
		}
		if !tx.Price.SameCurrency(v.InvestedAmount) {
			return v, validationf(op, "price currency %s does not match holding currency %s", tx.Price.Currency(), v.InvestedAmount.Currency())
		}
		held := v.Quantity
		sold := tx.Quantity
		if sold.GreaterThan(held) {
			sold = held
		}
		// The history books what actually happened: proceeds for the units
		// disposed of, never for the requested excess.
		tx.Quantity = sold
		tx.Amount = tx.Price.Mul(sold)
		if held.IsPositive() {
			// Weighted-average-cost law: the basis shrinks by the fraction
			// of the pre-sale position being disposed of.
			fraction := sold.Div(held)
			v.InvestedAmount = v.InvestedAmount.Sub(v.InvestedAmount.Mul(fraction))
		}
		v.Quantity = held.Sub(sold)

	case TxDividend:
		if !tx.Amount.IsPositive() {
			return v, validationf(op, "dividend requires a positive amount, got %s", tx.Amount)
		}
		if !tx.Amount.SameCurrency(v.InvestedAmount) {
			return v, validationf(op, "dividend currency %s does not match holding currency %s", tx.Amount.Currency(), v.InvestedAmount.Currency())
		}

	case TxSplit:
		if !tx.Quantity.IsPositive() {
			return v, validationf(op, "split requires a positive ratio, got %s", tx.Quantity)
		}
		v.Quantity = v.Quantity.Mul(tx.Quantity)
		if !v.PurchasePrice.IsZero() {
			v.PurchasePrice = v.PurchasePrice.Div(tx.Quantity)
		}

	case TxBonus:
		if !tx.Quantity.IsPositive() {
			return v, validationf(op, "bonus requires a positive quantity, got %s", tx.Quantity)
		}
		v.Quantity = v.Quantity.Add(tx.Quantity)

	default:
		return v, validationf(op, "unknown transaction type %q", tx.Type)
	}

	v.Transactions = append(v.Transactions, tx)
	sort.SliceStable(v.Transactions, func(i, j int) bool {
		return v.Transactions[i].Date.Before(v.Transactions[j].Date)
	})
	return v, nil
}

// ApplySIP appends a contribution to the SIP sub-ledger and returns the
// updated investment. The investment must carry a SIP plan, otherwise an
// InvalidStateError is returned. Units default to amount/nav when zero.
//
// SIP contributions are tracked in a parallel ledger and do not alter the
// general transaction history, the top-level quantity, or the cost basis.
func (v Investment) ApplySIP(amount, nav Money, units Quantity, memo string, on Date) (Investment, error) {
	const op = "apply-sip"
	if v.SIP == nil {
		return v, invalidStatef(op, "investment %q has no SIP plan", v.Name)
	}
	if !amount.IsPositive() {
		return v, validationf(op, "amount must be positive, got %s", amount)
	}
	if !nav.IsPositive() {
		return v, validationf(op, "nav must be positive, got %s", nav)
	}
	if !amount.SameCurrency(v.SIP.Amount) || !nav.SameCurrency(v.SIP.Amount) {
		return v, validationf(op, "currency does not match the plan currency %s", v.SIP.Amount.Currency())
	}
	if units.IsZero() {
		units = amount.DivPrice(nav)
	}

	plan := *v.SIP
	plan.Transactions = append(append([]SIPTx(nil), plan.Transactions...), SIPTx{
		Amount: amount, NAV: nav, Units: units, Date: on, Memo: memo,
	})
	v.SIP = &plan
	return v, nil
}

// Revalue sets the current value of the holding from an explicit valuation.
// The value must be in the holding's currency.
func (v Investment) Revalue(value Money) (Investment, error) {
	if !value.SameCurrency(v.InvestedAmount) {
		return v, validationf("revalue", "value currency %s does not match holding currency %s", value.Currency(), v.InvestedAmount.Currency())
	}
	v.CurrentValue = value
	return v, nil
}

// ProfitLoss returns current value minus cost basis.
func (v Investment) ProfitLoss() Money {
	return v.CurrentValue.Sub(v.InvestedAmount)
}

// ProfitLossPercent returns the profit/loss relative to the cost basis.
// It is 0 when the cost basis is 0, regardless of the current value.
func (v Investment) ProfitLossPercent() Percent {
	return v.ProfitLoss().PercentOf(v.InvestedAmount)
}

// DaysHeld returns the number of days the position has been held as of now,
// rounded up. It is 0 before the first buy.
func (v Investment) DaysHeld(now Date) int {
	if v.PurchaseDate.IsZero() {
		return 0
	}
	days := v.PurchaseDate.DaysUntil(now)
	if days < 0 {
		days = -days
	}
	return days
}

// AnnualizedReturn compounds the total return over the holding duration to a
// yearly rate. It is 0 when the position has been held for 0 days, which
// avoids the degenerate exponent.
func (v Investment) AnnualizedReturn(now Date) Percent {
	days := v.DaysHeld(now)
	if days == 0 || v.InvestedAmount.IsZero() {
		return 0
	}
	total := v.ProfitLoss().AsFloat() / v.InvestedAmount.AsFloat()
	return Percent((math.Pow(1+total, 365/float64(days)) - 1) * 100)
}

// TotalSIPInvested sums the SIP contribution amounts.
func (v Investment) TotalSIPInvested() Money {
	total := M(0, v.InvestedAmount.Currency())
	if v.SIP == nil {
		return total
	}
	for _, tx := range v.SIP.Transactions {
		total = total.Add(tx.Amount)
	}
	return total
}

// AverageNAV returns the mean NAV over the SIP contributions, zero when the
// sub-ledger is empty.
func (v Investment) AverageNAV() Money {
	if v.SIP == nil || len(v.SIP.Transactions) == 0 {
		return M(0, v.InvestedAmount.Currency())
	}
	sum := decimal.Zero
	for _, tx := range v.SIP.Transactions {
		sum = sum.Add(tx.NAV.value)
	}
	return M(sum.Div(decimal.NewFromInt(int64(len(v.SIP.Transactions)))), v.InvestedAmount.Currency())
}

// PortfolioSummary aggregates a set of holdings.
type PortfolioSummary struct {
	TotalInvested Money
	CurrentValue  Money
	TotalPnL      Money
	PnLPercent    Percent
	Count         int
}

// NewPortfolioSummary folds the filtered holdings into portfolio totals.
// A nil filter accepts every holding. PnLPercent is 0 when nothing is
// invested, so an empty portfolio never divides by zero.
func NewPortfolioSummary(investments []Investment, filter func(Investment) bool) PortfolioSummary {
	var s PortfolioSummary
	for _, v := range investments {
		if filter != nil && !filter(v) {
			continue
		}
		s.TotalInvested = s.TotalInvested.Add(v.InvestedAmount)
		s.CurrentValue = s.CurrentValue.Add(v.CurrentValue)
		s.Count++
	}
	s.TotalPnL = s.CurrentValue.Sub(s.TotalInvested)
	s.PnLPercent = s.TotalPnL.PercentOf(s.TotalInvested)
	return s
}
