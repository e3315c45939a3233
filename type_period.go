package acctreports

import (
	"fmt"
	"strings"
)

// Period is a calendar period used to cut a date range into reporting boundaries.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Range returns a Range for the given period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %s", p)
	}
}
