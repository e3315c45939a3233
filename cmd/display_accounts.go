package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/acctreports"
	"github.com/etnz/acctreports/renderer"
	"github.com/google/subcommands"
)

type displayAccountsCmd struct {
	*reportFlags
	accounts string
	total    bool
}

func (*displayAccountsCmd) Name() string     { return "display-accounts" }
func (*displayAccountsCmd) Synopsis() string { return "display account balances in the terminal" }
func (*displayAccountsCmd) Usage() string {
	return `acr display-accounts -db <book> [-accounts a,b,c] [-begin <date>] [-end <date>] [-total]

  Displays the balances of the selected accounts as a table, amounts
  formatted in the account currency.
`
}

func (c *displayAccountsCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.accounts, "accounts", "", "Comma separated account full names.")
	f.BoolVar(&c.total, "total", false, "Display running totals instead of the date range balances.")
}

func (c *displayAccountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rep, err := c.resolve()
	if err != nil {
		return c.usageError(err)
	}
	accounts, err := c.readAccounts(ctx, rep)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error reading book %q: %v\n", c.db, err)
		return subcommands.ExitFailure
	}

	end := &rep.end
	if c.total {
		end = nil
	}
	selected := acctreports.Filter(accounts, acctreports.CsvToList(c.accounts))
	printMarkdown(c.stdout, renderer.BalancesMarkdown(renderer.NewBalances(rep.calc, selected, rep.begin, end)))
	return subcommands.ExitSuccess
}
