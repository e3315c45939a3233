package acctreports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType is the closed set of account categories.
type AccountType int

const (
	Asset AccountType = iota
	Liability
	Income
	Expense
	Equity
)

func (t AccountType) String() string {
	switch t {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	case Income:
		return "income"
	case Expense:
		return "expense"
	case Equity:
		return "equity"
	default:
		return fmt.Sprintf("AccountType(%d)", int(t))
	}
}

func (t AccountType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// Sign returns the natural reporting sign of the account type.
//
// Liabilities, incomes and equity are credit-normal: their postings are
// negated so that an increase is reported as a positive amount.
func (t AccountType) Sign() Sign {
	switch t {
	case Liability, Income, Equity:
		return Credit
	default:
		return Debit
	}
}

// Sign is the multiplier turning a raw posting value into the account's natural reporting sign.
type Sign int

const (
	Debit  Sign = 1
	Credit Sign = -1
)

// Apply returns v in the natural reporting sign.
func (s Sign) Apply(v decimal.Decimal) decimal.Decimal {
	if s == Credit {
		return v.Neg()
	}
	return v
}

// Transaction is the part of a ledger transaction a posting needs.
type Transaction struct {
	PostDate    Date
	Description string
}

// Posting is one signed monetary leg of a transaction, attributed to one account.
type Posting struct {
	Value       decimal.Decimal // raw ledger sign
	Transaction Transaction
}

// Date returns the post date of the owning transaction.
func (p Posting) Date() Date { return p.Transaction.PostDate }

// Account is a read-only view of a ledger account and its postings.
//
// Postings are not sorted: only their dates matter.
type Account struct {
	Name      string
	FullName  string // unique within the ledger
	Code      string // optional
	Type      AccountType
	Sign      Sign
	Commodity string // e.g. "USD"
	Postings  []Posting
	Total     decimal.Decimal // running total supplied by the ledger, natural sign applied
}

// NumericCode returns the account code as a number, or 0 when it is missing or not numeric.
func (a *Account) NumericCode() int64 {
	code, err := strconv.ParseInt(strings.TrimSpace(a.Code), 10, 64)
	if err != nil {
		return 0
	}
	return code
}
