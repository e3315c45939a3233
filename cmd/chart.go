package cmd

import (
	"context"
	"flag"

	"github.com/etnz/acctreports"
	"github.com/google/subcommands"
)

type chartCmd struct {
	*reportFlags
	sortByCode bool
}

func (*chartCmd) Name() string     { return "chart-of-accounts" }
func (*chartCmd) Synopsis() string { return "list every account with its code and type" }
func (*chartCmd) Usage() string {
	return `acr chart-of-accounts -db <book> [-sort-by-code] [-output csv|json]

  Lists every account of the book as code, type and fullname.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.BoolVar(&c.sortByCode, "sort-by-code", false, "Sort accounts by numeric code, accounts without code first.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, c.Name(), func(_ *report, r *acctreports.Reporter, accounts []*acctreports.Account) error {
		return r.ChartOfAccounts(accounts, acctreports.ChartOptions{SortByCode: c.sortByCode})
	})
}
