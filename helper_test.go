package acctreports

import (
	"github.com/shopspring/decimal"
)

// D is a helper for test to create a Date from a string const.
func D(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// post is a helper for test to create a posting from consts.
func post(on string, value string) Posting {
	return Posting{
		Value:       decimal.RequireFromString(value),
		Transaction: Transaction{PostDate: D(on), Description: "test " + on},
	}
}

// account is a helper for test to create an account with the natural sign of its type.
func account(fullname, code string, typ AccountType, postings ...Posting) *Account {
	total := decimal.Zero
	for _, p := range postings {
		total = total.Add(p.Value)
	}
	return &Account{
		Name:      fullname,
		FullName:  fullname,
		Code:      code,
		Type:      typ,
		Sign:      typ.Sign(),
		Commodity: "USD",
		Postings:  postings,
		Total:     typ.Sign().Apply(total),
	}
}

// names returns the full names of accounts.
func names(accounts []*Account) []string {
	var n []string
	for _, a := range accounts {
		n = append(n, a.FullName)
	}
	return n
}
