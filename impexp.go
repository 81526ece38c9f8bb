package fintrack

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to import expenses from external JSON exports
// (bank statements, other trackers). The mapping is JSONPath based so that a
// new export shape only needs new paths, not new code.

// ExpenseMapping locates the expense fields inside an external JSON export.
//
// Rows selects the list of transaction rows in the document; the other paths
// are evaluated against each row. Category and Memo are optional; Currency is
// a literal applied to every imported amount.
type ExpenseMapping struct {
	Rows     string // e.g. "$.transactions[*]" or "$[*]"
	Date     string // e.g. "$.bookingDate"
	Amount   string // e.g. "$.amount.value"
	Category string // optional, e.g. "$.category"
	Memo     string // optional, e.g. "$.remittanceInfo"
	Currency string // literal currency code, e.g. "EUR"
}

// ImportExpenses reads an external JSON export from 'r' and maps each row to
// an expense record using the given mapping. Rows whose amount is negative
// are negated first: bank exports book outflows as negatives, expenses are
// positive amounts.
func ImportExpenses(r io.Reader, m ExpenseMapping) ([]Expense, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse expense export: %w", err)
	}
	return mapExpenses(doc, m)
}

// FetchExpenses downloads a JSON export from 'addr' with the daily-expiring
// cached client and maps it like ImportExpenses.
func FetchExpenses(addr string, m ExpenseMapping) ([]Expense, error) {
	var doc any
	if err := jwget(daily(), addr, &doc); err != nil {
		return nil, fmt.Errorf("cannot fetch expense export: %w", err)
	}
	return mapExpenses(doc, m)
}

func mapExpenses(doc any, m ExpenseMapping) ([]Expense, error) {
	jrows, err := jsonpath.Get(m.Rows, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select rows %q: %w", m.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// a single-row document is still a valid export
		rows = []any{jrows}
	}

	var expenses []Expense
	for i, row := range rows {
		day, err := pathDate(row, m.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		amount, err := pathFloat(row, m.Amount)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if amount < 0 {
			amount = -amount
		}
		category, _ := pathString(row, m.Category)
		memo, _ := pathString(row, m.Memo)
		expenses = append(expenses, NewExpense(day, memo, category, M(amount, m.Currency)))
	}
	return expenses, nil
}

// pathDate evaluates the path on the row and parses the result as a date.
func pathDate(row any, path string) (Date, error) {
	s, err := pathString(row, path)
	if err != nil {
		return Date{}, err
	}
	// bank exports often carry a full timestamp, keep the date part
	if t := strings.IndexByte(s, 'T'); t > 0 {
		s = s[:t]
	}
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("cannot parse date %q: %w", s, err)
	}
	return d, nil
}

// pathFloat evaluates the path on the row, accepting numbers and the comma
// decimal strings some exports produce.
func pathFloat(row any, path string) (float64, error) {
	jval, err := pathValue(row, path)
	if err != nil {
		return 0, err
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		v = strings.ReplaceAll(v, ",", ".")
		v = strings.ReplaceAll(v, " ", "")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse amount %q: %w", v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("path %q: not a number: %v", path, jval)
	}
}

func pathString(row any, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	jval, err := pathValue(row, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: not a string: %v", path, jval)
	}
	return strings.TrimSpace(s), nil
}

// pathValue evaluates a JSONPath, unwrapping the single-element list the
// library returns for some selectors.
func pathValue(row any, path string) (any, error) {
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}
