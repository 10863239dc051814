package timeutil

import (
	"time"
)

// PKT is the Pakistan Standard Time location (UTC+5)
var PKT *time.Location

func init() {
	var err error
	PKT, err = time.LoadLocation("Asia/Karachi")
	if err != nil {
		// Fallback: create fixed zone if Asia/Karachi not available
		PKT = time.FixedZone("PKT", 5*60*60) // UTC+5
	}
}

// Now returns the current time in PKT
func Now() time.Time {
	return time.Now().In(PKT)
}

// ToPKT converts any time to PKT
func ToPKT(t time.Time) time.Time {
	return t.In(PKT)
}

// Today returns the current date at midnight in PKT
func Today() time.Time {
	return StartOfDay(Now())
}

// StartOfDay returns the start of day (00:00:00) in PKT for the given time
func StartOfDay(t time.Time) time.Time {
	pkt := t.In(PKT)
	return time.Date(pkt.Year(), pkt.Month(), pkt.Day(), 0, 0, 0, 0, PKT)
}

// TruncateMonth returns the first day of the billing month containing t.
// All per-month grouping and ledger keys use this truncation.
func TruncateMonth(t time.Time) time.Time {
	pkt := t.In(PKT)
	return time.Date(pkt.Year(), pkt.Month(), 1, 0, 0, 0, 0, PKT)
}

// SameMonth reports whether a and b fall in the same billing month.
func SameMonth(a, b time.Time) bool {
	a, b = a.In(PKT), b.In(PKT)
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ParseDate parses a YYYY-MM-DD date string in PKT
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, PKT)
}

// Common layouts
const (
	DateLayout    = "2006-01-02"
	MonthLayout   = "January 2006"
	DisplayLayout = "02 Jan 2006, 03:04 PM"
)
