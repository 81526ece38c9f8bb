package fintrack

import (
	"fmt"
	"strings"
)

// Frequency is how often an income record repeats.
type Frequency string

const (
	OneTime    Frequency = "one-time"
	EveryWeek  Frequency = "weekly"
	EveryMonth Frequency = "monthly"
)

func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-time", "once", "":
		return OneTime, nil
	case "weekly", "week":
		return EveryWeek, nil
	case "monthly", "month":
		return EveryMonth, nil
	default:
		return OneTime, fmt.Errorf("unknown frequency %q", s)
	}
}

// occurrenceOffset is the fixed per-frequency day offset used to compute the
// next occurrence. Monthly uses 30 days, a calendar-approximate offset, not
// true month arithmetic.
func (f Frequency) occurrenceOffset() int {
	switch f {
	case EveryWeek:
		return 7
	case EveryMonth:
		return 30
	default:
		return 0
	}
}

// An Income is one recorded income entry. Recurring and NextOccurrence are
// derived from Frequency by Classify and are kept consistent with it: a
// non-zero NextOccurrence exists only on recurring records.
type Income struct {
	Amount         Money
	Category       string
	Source         string
	Date           Date
	Frequency      Frequency
	Recurring      bool
	NextOccurrence Date
}

// Classify derives the recurrence fields from the record's frequency. It runs
// on every create and on every update that touches the frequency.
//
// A recurring record with no next occurrence set gets one at date plus the
// frequency offset; a one-time record gets its next occurrence cleared.
func (i Income) Classify() Income {
	i.Recurring = i.Frequency != OneTime
	if !i.Recurring {
		i.NextOccurrence = Date{}
		return i
	}
	if i.NextOccurrence.IsZero() {
		i.NextOccurrence = i.Date.Add(i.Frequency.occurrenceOffset())
	}
	return i
}

// NextExpectedIncome returns the recurring record with the earliest next
// occurrence strictly after now, or nil when none qualifies.
func NextExpectedIncome(records []Income, now Date) *Income {
	var next *Income
	for k := range records {
		r := &records[k]
		if !r.Recurring || !r.NextOccurrence.After(now) {
			continue
		}
		if next == nil || r.NextOccurrence.Before(next.NextOccurrence) {
			next = r
		}
	}
	return next
}
