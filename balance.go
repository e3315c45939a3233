package acctreports

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RangePolicy decides whether the end date of a balance window is included.
type RangePolicy int

const (
	// HalfOpen selects postings in [begin, end).
	HalfOpen RangePolicy = iota
	// Inclusive selects postings in [begin, end], as older budget reports did.
	Inclusive
)

func (p RangePolicy) String() string {
	switch p {
	case HalfOpen:
		return "half-open"
	case Inclusive:
		return "inclusive"
	default:
		return fmt.Sprintf("RangePolicy(%d)", int(p))
	}
}

// Contains reports whether d is in the window starting at begin and ending at end.
func (p RangePolicy) Contains(begin, end, d Date) bool {
	if d.Before(begin) {
		return false
	}
	if p == Inclusive {
		return !d.After(end)
	}
	return d.Before(end)
}

// Calculator computes account balances with a single range policy, so that
// every call site of a report uses the same window semantics.
type Calculator struct {
	Policy RangePolicy
}

// Sum returns the unrounded sum of the account postings in the window, in the
// account natural sign.
func (c Calculator) Sum(a *Account, begin, end Date) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range a.Postings {
		if c.Policy.Contains(begin, end, p.Date()) {
			sum = sum.Add(p.Value)
		}
	}
	return a.Sign.Apply(sum)
}

// Balance returns the reported balance of the account.
//
// When end is nil, it is the running total supplied by the ledger. Otherwise it
// is the sum of the postings dated within the window. In both cases the
// result is rounded only once.
func (c Calculator) Balance(a *Account, begin Date, end *Date) Amount {
	if end == nil {
		return A(a.Total)
	}
	return A(c.Sum(a, begin, *end))
}

// Balance returns the balance of the account over [begin, end), or its running
// total when end is nil.
func Balance(a *Account, begin Date, end *Date) Amount {
	return Calculator{Policy: HalfOpen}.Balance(a, begin, end)
}
