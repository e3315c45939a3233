package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/acctreports"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	*reportFlags
	actual string
	budget string
	pairs  string
	period string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "compare actual accounts with their budget accounts" }
func (*budgetCmd) Usage() string {
	return `acr budget -db <book> -actual-accounts a,b -budget-accounts x,y [-period month|year] [-begin <date>] [-end <date>]
acr budget -db <book> -pairs <file.yaml>

  For each period between begin and end, prints the balances of every actual
  account and of its budget account, cumulated from begin to the end of the
  period. The i-th actual account is paired with the i-th budget account.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.actual, "actual-accounts", "", "Comma separated actual account full names.")
	f.StringVar(&c.budget, "budget-accounts", "", "Comma separated budget account full names.")
	f.StringVar(&c.pairs, "pairs", "", "YAML file of explicit actual/budget pairs. Overrides the account lists.")
	f.StringVar(&c.period, "period", "month", "Period length: month or year.")
}

func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := acctreports.ParsePeriod(c.period)
	if err != nil {
		return c.usageError(err)
	}
	opts := acctreports.BudgetOptions{
		Actual: acctreports.CsvToList(c.actual),
		Budget: acctreports.CsvToList(c.budget),
		Period: period,
	}
	if c.pairs != "" {
		if opts.Pairs, err = loadPairs(c.pairs); err != nil {
			return c.usageError(err)
		}
	}

	return c.run(ctx, c.Name(), func(rep *report, r *acctreports.Reporter, accounts []*acctreports.Account) error {
		opts.Begin, opts.End = rep.begin, rep.end
		return r.Budget(accounts, opts)
	})
}

func loadPairs(name string) ([]acctreports.PairNames, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("invalid -pairs: %w", err)
	}
	defer f.Close()
	pairs, err := acctreports.LoadPairs(f)
	if err != nil {
		return nil, fmt.Errorf("invalid -pairs %q: %w", name, err)
	}
	return pairs, nil
}
