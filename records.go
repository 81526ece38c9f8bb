package fintrack

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// RecordType is a typed string for identifying journal records.
type RecordType string

// Record types used for identifying journal lines.
const (
	RecBudget     RecordType = "budget"
	RecExpense    RecordType = "expense"
	RecDebt       RecordType = "debt"
	RecPayment    RecordType = "payment"
	RecIncome     RecordType = "income"
	RecInvestment RecordType = "investment"
	RecBuy        RecordType = "buy"
	RecSell       RecordType = "sell"
	RecDividend   RecordType = "dividend"
	RecSplit      RecordType = "split"
	RecBonus      RecordType = "bonus"
	RecSIP        RecordType = "sip"
	RecValue      RecordType = "value"
)

// Record defines the common interface for all journal records.
type Record interface {
	What() RecordType // What returns the record type (e.g. "expense", "payment").
	When() Date       // When returns the date the record applies on.
	Validate(l *Ledger) error
}

type baseRec struct {
	Record RecordType `json:"record"`         // Record specifies the type of journal line.
	Date   Date       `json:"date"`           // Date is when the record applies.
	Memo   string     `json:"memo,omitempty"` // Memo is an optional note.
}

func (r baseRec) What() RecordType { return r.Record }
func (r baseRec) When() Date       { return r.Date }

// validate checks the common record fields. It is meant to be embedded in
// other record validation methods.
func (r baseRec) validate() error {
	if r.Date.IsZero() {
		return errors.New("record date is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for baseRec.
func (r baseRec) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", r.Record)
	w.Append("date", r.Date)
	w.Optional("memo", r.Memo)
	return w.MarshalJSON()
}

// DeclareBudget creates a budget: a cap for one category over a period.
// The four alert switches control which crossing events the engine emits.
type DeclareBudget struct {
	baseRec
	Name          string
	Category      string
	Amount        Money
	From, To      Date
	Alert50       bool
	Alert75       bool
	Alert100      bool
	AlertExceeded bool
	Active        *bool // nil means active; resolved to an explicit value at decode
}

// NewDeclareBudget creates a budget declaration with every alert enabled.
func NewDeclareBudget(day Date, name, category string, amount Money, period Range) DeclareBudget {
	return DeclareBudget{
		baseRec:  baseRec{Record: RecBudget, Date: day},
		Name:     name,
		Category: category,
		Amount:   amount,
		From:     period.From,
		To:       period.To,
		Alert50:  true, Alert75: true, Alert100: true, AlertExceeded: true,
	}
}

func (r DeclareBudget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("name", r.Name)
	w.Append("category", r.Category)
	w.EmbedFrom(r.Amount)
	w.Append("from", r.From)
	w.Append("to", r.To)
	w.Append("alert50", r.Alert50)
	w.Append("alert75", r.Alert75)
	w.Append("alert100", r.Alert100)
	w.Append("alertExceeded", r.AlertExceeded)
	w.Append("active", r.IsActive())
	return w.MarshalJSON()
}

// IsActive resolves the tri-state active flag: absent means active.
func (r DeclareBudget) IsActive() bool { return r.Active == nil || *r.Active }

func (r DeclareBudget) Validate(l *Ledger) error {
	if err := r.baseRec.validate(); err != nil {
		return err
	}
	if r.Name == "" {
		return errors.New("budget name is missing")
	}
	if r.Category == "" {
		return validationf("declare-budget", "budget %q has no category", r.Name)
	}
	if !r.Amount.IsPositive() {
		return validationf("declare-budget", "budget cap must be positive, got %s", r.Amount)
	}
	if !r.From.Before(r.To) {
		return validationf("declare-budget", "budget period start %s must be before end %s", r.From, r.To)
	}
	if _, ok := l.Budget(r.Name); ok {
		return validationf("declare-budget", "budget %q already exists", r.Name)
	}
	if r.IsActive() {
		period := NewRange(r.From, r.To)
		for _, b := range l.Budgets() {
			if b.Active && SameCategory(b.Category, r.Category) && b.Period.Overlaps(period) {
				return validationf("declare-budget", "an active budget %q for category %q already covers an overlapping period", b.Name, b.Category)
			}
		}
	}
	return nil
}

// Expense is a raw spending record. On replay it is applied to every active
// budget whose category matches and whose period contains the date.
type Expense struct {
	baseRec
	Category string
	Amount   Money
}

// NewExpense creates an expense record.
func NewExpense(day Date, memo, category string, amount Money) Expense {
	return Expense{
		baseRec:  baseRec{Record: RecExpense, Date: day, Memo: memo},
		Category: category,
		Amount:   amount,
	}
}

func (r Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("category", r.Category)
	w.EmbedFrom(r.Amount)
	return w.MarshalJSON()
}

func (r Expense) Validate(l *Ledger) error {
	if err := r.baseRec.validate(); err != nil {
		return err
	}
	if r.Category == "" {
		return validationf("expense", "category is missing")
	}
	if !r.Amount.IsPositive() {
		return validationf("expense", "amount must be positive, got %s", r.Amount)
	}
	return nil
}

// DeclareDebt creates a debt with its payoff parameters.
type DeclareDebt struct {
	baseRec
	Name           string
	DebtType       string
	Creditor       string
	Amount         Money // original amount, also the opening balance
	InterestRate   Percent
	MinimumPayment Money
	Cadence        Period
}

// NewDeclareDebt creates a debt declaration.
func NewDeclareDebt(day Date, name, debtType, creditor string, amount Money, rate Percent, minPayment Money, cadence Period) DeclareDebt {
	return DeclareDebt{
		baseRec:        baseRec{Record: RecDebt, Date: day},
		Name:           name,
		DebtType:       debtType,
		Creditor:       creditor,
		Amount:         amount,
		InterestRate:   rate,
		MinimumPayment: minPayment,
		Cadence:        cadence,
	}
}

func (r DeclareDebt) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("name", r.Name)
	w.Optional("type", r.DebtType)
	w.Optional("creditor", r.Creditor)
	w.EmbedFrom(r.Amount)
	w.Append("interestRate", float64(r.InterestRate))
	w.Append("minimumPayment", r.MinimumPayment.value)
	w.Append("cadence", r.Cadence.String())
	return w.MarshalJSON()
}

func (r DeclareDebt) Validate(l *Ledger) error {
	if err := r.baseRec.validate(); err != nil {
		return err
	}
	if r.Name == "" {
		return errors.New("debt name is missing")
	}
	if !r.Amount.IsPositive() {
		return validationf("declare-debt", "original amount must be positive, got %s", r.Amount)
	}
	if r.InterestRate < 0 || r.InterestRate > 100 {
		return validationf("declare-debt", "interest rate must be within 0-100, got %s", r.InterestRate)
	}
	if r.MinimumPayment.IsNegative() {
		return validationf("declare-debt", "minimum payment cannot be negative, got %s", r.MinimumPayment)
	}
	if _, ok := l.Debt(r.Name); ok {
		return validationf("declare-debt", "debt %q already exists", r.Name)
	}
	return nil
}

// PaymentRecord applies a payment to a debt.
type PaymentRecord struct {
	baseRec
	Debt    string
	Amount  Money
	PayType PaymentType
}

// NewPaymentRecord creates a payment record.
func NewPaymentRecord(day Date, memo, debt string, amount Money, ptype PaymentType) PaymentRecord {
	return PaymentRecord{
		baseRec: baseRec{Record: RecPayment, Date: day, Memo: memo},
		Debt:    debt,
		Amount:  amount,
		PayType: ptype,
	}
}

func (r PaymentRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("debt", r.Debt)
	w.EmbedFrom(r.Amount)
	w.Optional("type", string(r.PayType))
	return w.MarshalJSON()
}

func (r PaymentRecord) Validate(l *Ledger) error {
	if err := r.baseRec.validate(); err != nil {
		return err
	}
	if r.Debt == "" {
		return errors.New("payment debt name is missing")
	}
	if _, ok := l.Debt(r.Debt); !ok {
		return validationf("payment", "debt %q not declared in ledger", r.Debt)
	}
	return nil
}

// IncomeRecord records an income entry; recurrence is derived on replay.
type IncomeRecord struct {
	baseRec
	Amount    Money
	Category  string
	Source    string
	Frequency Frequency
}

// NewIncomeRecord creates an income record.
func NewIncomeRecord(day Date, memo string, amount Money, category, source string, freq Frequency) IncomeRecord {
	return IncomeRecord{
		baseRec:   baseRec{Record: RecIncome, Date: day, Memo: memo},
		Amount:    amount,
		Category:  category,
		Source:    source,
		Frequency: freq,
	}
}

func (r IncomeRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.EmbedFrom(r.Amount)
	w.Optional("category", r.Category)
	w.Optional("source", r.Source)
	w.Append("frequency", string(r.Frequency))
	return w.MarshalJSON()
}

func (r IncomeRecord) Validate(l *Ledger) error {
	if err := r.baseRec.validate(); err != nil {
		return err
	}
	if !r.Amount.IsPositive() {
		return validationf("income", "amount must be positive, got %s", r.Amount)
	}
	if _, err := ParseFrequency(string(r.Frequency)); err != nil {
		return validationf("income", "%v", err)
	}
	return nil
}

// DeclareInvestment creates an investment, optionally with a SIP plan.
type DeclareInvestment struct {
	baseRec
	Name         string
	InvType      string
	SIPAmount    Money // zero when the investment carries no SIP plan
	SIPStart     Date
	SIPFrequency Frequency
}

// NewDeclareInvestment creates an investment declaration.
func NewDeclareInvestment(day Date, name, invType string) DeclareInvestment {
	return DeclareInvestment{
		baseRec: baseRec{Record: RecInvestment, Date: day},
		Name:    name,
		InvType: invType,
	}
}

// IsSIP reports whether the declaration carries a SIP plan.
func (r DeclareInvestment) IsSIP() bool { return r.SIPAmount.IsPositive() }

func (r DeclareInvestment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("name", r.Name)
	w.Optional("type", r.InvType)
	if r.IsSIP() {
		w.Append("sipAmount", r.SIPAmount.value)
		w.Optional("currency", r.SIPAmount.Currency())
		w.Append("sipStart", r.SIPStart)
		w.Append("sipFrequency", string(r.SIPFrequency))
	}
	return w.MarshalJSON()
}

func (r DeclareInvestment) Validate(l *Ledger) error {
	if err := r.baseRec.validate(); err != nil {
		return err
	}
	if r.Name == "" {
		return errors.New("investment name is missing")
	}
	if _, ok := l.Investment(r.Name); ok {
		return validationf("declare-investment", "investment %q already exists", r.Name)
	}
	if r.IsSIP() && r.SIPFrequency == OneTime {
		return validationf("declare-investment", "SIP frequency must be weekly or monthly")
	}
	return nil
}

// TradeRecord is a buy, sell, dividend, split, or bonus on an investment.
type TradeRecord struct {
	baseRec
	Investment string
	Quantity   Quantity
	Price      Money
	Amount     Money
}

// NewTradeRecord creates an investment transaction record. The record type
// must be one of buy, sell, dividend, split, or bonus.
func NewTradeRecord(rec RecordType, day Date, memo, investment string, quantity Quantity, price Money) TradeRecord {
	return TradeRecord{
		baseRec:    baseRec{Record: rec, Date: day, Memo: memo},
		Investment: investment,
		Quantity:   quantity,
		Price:      price,
	}
}

func (r TradeRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("investment", r.Investment)
	if !r.Quantity.IsZero() {
		w.Append("quantity", r.Quantity)
	}
	if !r.Price.IsZero() {
		w.Append("price", r.Price.value)
	}
	if !r.Amount.IsZero() {
		w.Append("amount", r.Amount.value)
	}
	w.Optional("currency", cur(r.Price, r.Amount))
	return w.MarshalJSON()
}

// tx converts the record to the engine's transaction form.
func (r TradeRecord) tx() InvestmentTx {
	return InvestmentTx{
		Type:     TxType(r.Record),
		Quantity: r.Quantity,
		Price:    r.Price,
		Amount:   r.Amount,
		Date:     r.Date,
		Memo:     r.Memo,
	}
}

func (r TradeRecord) Validate(l *Ledger) error {
	if err := r.baseRec.validate(); err != nil {
		return err
	}
	if r.Investment == "" {
		return errors.New("trade investment name is missing")
	}
	if _, ok := l.Investment(r.Investment); !ok {
		return validationf(string(r.Record), "investment %q not declared in ledger", r.Investment)
	}
	switch r.Record {
	case RecBuy, RecSell, RecDividend, RecSplit, RecBonus:
		return nil
	default:
		return fmt.Errorf("unknown trade record %q", r.Record)
	}
}

// SIPRecord is a contribution to an investment's SIP plan.
type SIPRecord struct {
	baseRec
	Investment string
	Amount     Money
	NAV        Money
	Units      Quantity
}

// NewSIPRecord creates a SIP contribution record. Units may be zero, in
// which case they are derived as amount/nav.
func NewSIPRecord(day Date, memo, investment string, amount, nav Money, units Quantity) SIPRecord {
	return SIPRecord{
		baseRec:    baseRec{Record: RecSIP, Date: day, Memo: memo},
		Investment: investment,
		Amount:     amount,
		NAV:        nav,
		Units:      units,
	}
}

func (r SIPRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("investment", r.Investment)
	w.EmbedFrom(r.Amount)
	w.Append("nav", r.NAV.value)
	if !r.Units.IsZero() {
		w.Append("units", r.Units)
	}
	return w.MarshalJSON()
}

func (r SIPRecord) Validate(l *Ledger) error {
	if err := r.baseRec.validate(); err != nil {
		return err
	}
	if r.Investment == "" {
		return errors.New("sip investment name is missing")
	}
	if _, ok := l.Investment(r.Investment); !ok {
		return validationf("sip", "investment %q not declared in ledger", r.Investment)
	}
	return nil
}

// ValueRecord sets the current value of an investment from an explicit
// valuation. The engine never fetches live prices; this record is how a
// holding's value enters the journal.
type ValueRecord struct {
	baseRec
	Investment string
	Amount     Money
}

// NewValueRecord creates a valuation record.
func NewValueRecord(day Date, investment string, amount Money) ValueRecord {
	return ValueRecord{
		baseRec:    baseRec{Record: RecValue, Date: day},
		Investment: investment,
		Amount:     amount,
	}
}

func (r ValueRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("investment", r.Investment)
	w.EmbedFrom(r.Amount)
	return w.MarshalJSON()
}

func (r ValueRecord) Validate(l *Ledger) error {
	if err := r.baseRec.validate(); err != nil {
		return err
	}
	if r.Investment == "" {
		return errors.New("value investment name is missing")
	}
	if _, ok := l.Investment(r.Investment); !ok {
		return validationf("value", "investment %q not declared in ledger", r.Investment)
	}
	if r.Amount.IsNegative() {
		return validationf("value", "valuation cannot be negative, got %s", r.Amount)
	}
	return nil
}

// Journal amounts are written as plain JSON numbers so they stay readable in diffs.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
