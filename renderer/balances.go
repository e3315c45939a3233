package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/acctreports"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Balances is the display view of account balances over a window.
type Balances struct {
	Begin acctreports.Date
	End   *acctreports.Date // nil for running totals
	Rows  []BalanceRow
}

// BalanceRow is one account of a Balances view.
type BalanceRow struct {
	Code      string
	Type      acctreports.AccountType
	FullName  string
	Commodity string
	Balance   acctreports.Amount

	sum decimal.Decimal // unrounded balance
}

// NewBalances computes the view of accounts with calculator c.
func NewBalances(c acctreports.Calculator, accounts []*acctreports.Account, begin acctreports.Date, end *acctreports.Date) *Balances {
	b := &Balances{Begin: begin, End: end}
	for _, a := range accounts {
		sum := a.Total
		if end != nil {
			sum = c.Sum(a, begin, *end)
		}
		b.Rows = append(b.Rows, BalanceRow{
			Code:      a.Code,
			Type:      a.Type,
			FullName:  a.FullName,
			Commodity: a.Commodity,
			Balance:   acctreports.A(sum),
			sum:       sum,
		})
	}
	return b
}

// typeTotal is the sum of the balances of one account type in one commodity.
type typeTotal struct {
	typ       acctreports.AccountType
	commodity string
	sum       decimal.Decimal
}

// totals sums the unrounded balances per type and commodity. Only window
// balances add up: running totals already include the descendants.
// Each total is rounded when rendered.
func (b *Balances) totals() []typeTotal {
	var totals []typeTotal
	for _, r := range b.Rows {
		i := -1
		for j, t := range totals {
			if t.typ == r.Type && t.commodity == r.Commodity {
				i = j
				break
			}
		}
		if i < 0 {
			totals = append(totals, typeTotal{typ: r.Type, commodity: r.Commodity, sum: decimal.Zero})
			i = len(totals) - 1
		}
		totals[i].sum = totals[i].sum.Add(r.sum)
	}
	return totals
}

// BalancesMarkdown renders account balances as a markdown document.
func BalancesMarkdown(b *Balances) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if b.End == nil {
		doc.H1("Account Balances (running totals)")
	} else {
		doc.H1(fmt.Sprintf("Account Balances from %s to %s", b.Begin, *b.End))
	}

	if len(b.Rows) == 0 {
		doc.PlainText("No accounts.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Code", "Type", "Account", "Balance"},
		Rows:   [][]string{},
	}
	for _, r := range b.Rows {
		table.Rows = append(table.Rows, []string{
			r.Code,
			r.Type.String(),
			r.FullName,
			Money(r.Balance, r.Commodity),
		})
	}
	doc.Table(table)

	if b.End != nil {
		doc.H2("Totals")
		totals := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Type", "Balance"},
			Rows:      [][]string{},
		}
		for _, t := range b.totals() {
			totals.Rows = append(totals.Rows, []string{t.typ.String(), Money(acctreports.A(t.sum), t.commodity)})
		}
		doc.Table(totals)
	}

	return doc.String()
}
