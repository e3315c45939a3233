package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/acctreports"
)

// Money formats an amount in the given commodity, e.g. "$1,234.50".
//
// Commodities that are not ISO currencies are written as the plain amount
// followed by the commodity.
func Money(a acctreports.Amount, commodity string) string {
	cur := money.GetCurrency(commodity)
	if cur == nil {
		return strings.TrimSpace(a.String() + " " + commodity)
	}
	minor := a.Decimal().Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}
