package cmd

import (
	"context"
	"flag"

	"github.com/etnz/acctreports"
	"github.com/google/subcommands"
)

type balancesCmd struct {
	*reportFlags
	accounts     string
	accountsFile string
	total        bool
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "print account balances over a date range" }
func (*balancesCmd) Usage() string {
	return `acr balances -db <book> [-accounts a,b,c] [-accounts-file <file>] [-begin <date>] [-end <date>] [-total]

  Prints code, fullname and balance of the selected accounts, or of every
  account when none is selected. The balance sums the postings dated from
  begin included to end excluded, in the natural sign of the account.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.accounts, "accounts", "", "Comma separated account full names.")
	f.StringVar(&c.accountsFile, "accounts-file", "", "File with one account full name per line.")
	f.BoolVar(&c.total, "total", false, "Print the running total of each account instead of the date range balance.")
}

func (c *balancesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names, err := accountNames(c.accounts, c.accountsFile)
	if err != nil {
		return c.usageError(err)
	}
	return c.run(ctx, c.Name(), func(rep *report, r *acctreports.Reporter, accounts []*acctreports.Account) error {
		opts := acctreports.BalancesOptions{Accounts: names, Begin: rep.begin, End: &rep.end}
		if c.total {
			opts.End = nil
		}
		return r.Balances(accounts, opts)
	})
}
