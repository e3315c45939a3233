package gnucash

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/acctreports"
	"github.com/shopspring/decimal"
)

// rootType maps a GnuCash account type to its root category.
//
// The boolean is false for the ROOT type itself.
func rootType(gncType string) (acctreports.AccountType, bool, error) {
	switch strings.ToUpper(gncType) {
	case "BANK", "CASH", "ASSET", "STOCK", "MUTUAL", "RECEIVABLE":
		return acctreports.Asset, true, nil
	case "CREDIT", "LIABILITY", "PAYABLE":
		return acctreports.Liability, true, nil
	case "INCOME":
		return acctreports.Income, true, nil
	case "EXPENSE":
		return acctreports.Expense, true, nil
	case "EQUITY", "TRADING":
		return acctreports.Equity, true, nil
	case "ROOT":
		return acctreports.Asset, false, nil
	default:
		return acctreports.Asset, false, fmt.Errorf("%w: unknown account type %q", ErrMalformed, gncType)
	}
}

// GncType returns the GnuCash account type used to store a root category.
func GncType(t acctreports.AccountType) string {
	switch t {
	case acctreports.Liability:
		return "LIABILITY"
	case acctreports.Income:
		return "INCOME"
	case acctreports.Expense:
		return "EXPENSE"
	case acctreports.Equity:
		return "EQUITY"
	default:
		return "ASSET"
	}
}

var postDateLayouts = []string{
	"2006-01-02 15:04:05",
	"20060102150405",
	time.DateOnly,
}

// parsePostDate reads a transaction post date, stored in UTC. Only the date
// part is kept.
//
// GnuCash stores post dates at 10:59 UTC, which falls on the same day in
// every time zone, and that day is kept as is. Older books stored the local
// midnight of the user instead, so any other time is converted to loc first.
//
// Depending on the declared column type the driver hands over either text or a time.
func parsePostDate(v any, loc *time.Location) (acctreports.Date, error) {
	switch v := v.(type) {
	case time.Time:
		return postDay(v.UTC(), loc), nil
	case []byte:
		return parsePostDate(string(v), loc)
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range postDateLayouts {
			t, err := time.Parse(layout, s)
			if err != nil {
				continue
			}
			if layout == time.DateOnly {
				return acctreports.NewDate(t.Date()), nil
			}
			return postDay(t, loc), nil
		}
		return acctreports.Date{}, fmt.Errorf("%w: invalid post date %q", ErrMalformed, s)
	case nil:
		return acctreports.Date{}, fmt.Errorf("%w: missing post date", ErrMalformed)
	default:
		return acctreports.Date{}, fmt.Errorf("%w: invalid post date %v", ErrMalformed, v)
	}
}

// postDay returns the day of a UTC post time.
func postDay(t time.Time, loc *time.Location) acctreports.Date {
	neutral := t.Hour() == 10 && t.Minute() == 59
	if !neutral && loc != nil {
		t = t.In(loc)
	}
	return acctreports.NewDate(t.Year(), t.Month(), t.Day())
}

// fraction returns num/denom as a decimal. A zero denominator gives zero.
func fraction(num, denom int64) decimal.Decimal {
	if denom == 0 {
		return decimal.Zero
	}
	return decimal.New(num, 0).DivRound(decimal.New(denom, 0), 16)
}
