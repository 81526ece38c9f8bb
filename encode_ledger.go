package fintrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// amountRec is a specialized struct to read a journal amount in two fields.
type amountRec struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRec) Money() Money { return M(a.Amount, a.Currency) }

// DecodeRecord decodes a single journal line into the appropriate record type.
func DecodeRecord(line []byte) (Record, error) {
	var identifier struct {
		Record RecordType `json:"record"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
	}

	switch identifier.Record {
	case RecBudget:
		var temp struct {
			baseRec
			amountRec
			Name          string `json:"name"`
			Category      string `json:"category"`
			From          Date   `json:"from"`
			To            Date   `json:"to"`
			Alert50       bool   `json:"alert50"`
			Alert75       bool   `json:"alert75"`
			Alert100      bool   `json:"alert100"`
			AlertExceeded bool   `json:"alertExceeded"`
			Active        *bool  `json:"active"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, err
		}
		return DeclareBudget{
			baseRec:       temp.baseRec,
			Name:          temp.Name,
			Category:      temp.Category,
			Amount:        temp.Money(),
			From:          temp.From,
			To:            temp.To,
			Alert50:       temp.Alert50,
			Alert75:       temp.Alert75,
			Alert100:      temp.Alert100,
			AlertExceeded: temp.AlertExceeded,
			Active:        temp.Active,
		}, nil

	case RecExpense:
		var temp struct {
			baseRec
			amountRec
			Category string `json:"category"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, err
		}
		return Expense{baseRec: temp.baseRec, Category: temp.Category, Amount: temp.Money()}, nil

	case RecDebt:
		var temp struct {
			baseRec
			amountRec
			Name           string          `json:"name"`
			DebtType       string          `json:"type"`
			Creditor       string          `json:"creditor"`
			InterestRate   float64         `json:"interestRate"`
			MinimumPayment decimal.Decimal `json:"minimumPayment"`
			Cadence        string          `json:"cadence"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, err
		}
		cadence, err := ParsePeriod(temp.Cadence)
		if err != nil {
			return nil, fmt.Errorf("debt %q: %w", temp.Name, err)
		}
		return DeclareDebt{
			baseRec:        temp.baseRec,
			Name:           temp.Name,
			DebtType:       temp.DebtType,
			Creditor:       temp.Creditor,
			Amount:         temp.Money(),
			InterestRate:   Percent(temp.InterestRate),
			MinimumPayment: M(temp.MinimumPayment, temp.Currency),
			Cadence:        cadence,
		}, nil

	case RecPayment:
		var temp struct {
			baseRec
			amountRec
			Debt    string `json:"debt"`
			PayType string `json:"type"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, err
		}
		ptype := PaymentType(temp.PayType)
		if ptype == "" {
			ptype = PaymentRegular
		}
		return PaymentRecord{baseRec: temp.baseRec, Debt: temp.Debt, Amount: temp.Money(), PayType: ptype}, nil

	case RecIncome:
		var temp struct {
			baseRec
			amountRec
			Category  string `json:"category"`
			Source    string `json:"source"`
			Frequency string `json:"frequency"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, err
		}
		freq, err := ParseFrequency(temp.Frequency)
		if err != nil {
			return nil, err
		}
		return IncomeRecord{
			baseRec:   temp.baseRec,
			Amount:    temp.Money(),
			Category:  temp.Category,
			Source:    temp.Source,
			Frequency: freq,
		}, nil

	case RecInvestment:
		var temp struct {
			baseRec
			Name         string          `json:"name"`
			InvType      string          `json:"type"`
			SIPAmount    decimal.Decimal `json:"sipAmount"`
			Currency     string          `json:"currency"`
			SIPStart     Date            `json:"sipStart"`
			SIPFrequency string          `json:"sipFrequency"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, err
		}
		rec := DeclareInvestment{
			baseRec:   temp.baseRec,
			Name:      temp.Name,
			InvType:   temp.InvType,
			SIPAmount: M(temp.SIPAmount, temp.Currency),
			SIPStart:  temp.SIPStart,
		}
		if temp.SIPFrequency != "" {
			freq, err := ParseFrequency(temp.SIPFrequency)
			if err != nil {
				return nil, err
			}
			rec.SIPFrequency = freq
		}
		return rec, nil

	case RecBuy, RecSell, RecDividend, RecSplit, RecBonus:
		var temp struct {
			baseRec
			Investment string          `json:"investment"`
			Quantity   Quantity        `json:"quantity"`
			Price      decimal.Decimal `json:"price"`
			Amount     decimal.Decimal `json:"amount"`
			Currency   string          `json:"currency"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, err
		}
		return TradeRecord{
			baseRec:    temp.baseRec,
			Investment: temp.Investment,
			Quantity:   temp.Quantity,
			Price:      M(temp.Price, temp.Currency),
			Amount:     M(temp.Amount, temp.Currency),
		}, nil

	case RecSIP:
		var temp struct {
			baseRec
			amountRec
			Investment string          `json:"investment"`
			NAV        decimal.Decimal `json:"nav"`
			Units      Quantity        `json:"units"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, err
		}
		return SIPRecord{
			baseRec:    temp.baseRec,
			Investment: temp.Investment,
			Amount:     temp.Money(),
			NAV:        M(temp.NAV, temp.Currency),
			Units:      temp.Units,
		}, nil

	case RecValue:
		var temp struct {
			baseRec
			amountRec
			Investment string `json:"investment"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, err
		}
		return ValueRecord{baseRec: temp.baseRec, Investment: temp.Investment, Amount: temp.Money()}, nil

	default:
		return nil, fmt.Errorf("unknown record %q", identifier.Record)
	}
}

// DecodeLedger decodes records from a stream of JSONL data, sorts them
// chronologically, and replays them into a Ledger. Replay runs the same
// validation and engine operations as a live append, so a decoded ledger is
// always in a state the engine could have produced.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		rec, err := DecodeRecord(line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sortRecords(records)

	ledger := NewLedger()
	if _, err := ledger.Append(records...); err != nil {
		return nil, fmt.Errorf("invalid journal: %w", err)
	}
	return ledger, nil
}

// EncodeRecord writes a single record as one JSONL line.
func EncodeRecord(w io.Writer, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// EncodeLedger writes the whole journal in canonical chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	records := append([]Record(nil), l.Records()...)
	sortRecords(records)
	for _, r := range records {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}
