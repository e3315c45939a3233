package acctreports

import (
	"fmt"
	"slices"
)

// Reporter computes the reports and streams their records to a Sink.
//
// It never mutates the accounts it is given.
type Reporter struct {
	Calculator Calculator
	Sink       Sink
}

// ChartOptions controls the chart of accounts report.
type ChartOptions struct {
	SortByCode bool // sort ascending by numeric code, missing codes first
}

// ChartOfAccounts emits {code, type, fullname} for every account.
func (r *Reporter) ChartOfAccounts(accounts []*Account, opts ChartOptions) error {
	if opts.SortByCode {
		accounts = slices.Clone(accounts)
		slices.SortStableFunc(accounts, func(a, b *Account) int {
			ca, cb := a.NumericCode(), b.NumericCode()
			switch {
			case ca < cb:
				return -1
			case ca > cb:
				return 1
			default:
				return 0
			}
		})
	}
	for _, a := range accounts {
		rec := NewRecord(
			F(FieldCode, a.Code),
			F(FieldType, a.Type),
			F(FieldFullName, a.FullName),
		)
		if err := r.Sink.Emit(rec); err != nil {
			return err
		}
	}
	return nil
}

// BalancesOptions controls the balances report.
type BalancesOptions struct {
	Accounts []string // account full names, empty for all
	Begin    Date
	End      *Date // nil reports the running total
}

// Balances emits {code, fullname, balance} for every selected account.
func (r *Reporter) Balances(accounts []*Account, opts BalancesOptions) error {
	for _, a := range Filter(accounts, opts.Accounts) {
		rec := NewRecord(
			F(FieldCode, a.Code),
			F(FieldFullName, a.FullName),
			F(FieldBalance, r.Calculator.Balance(a, opts.Begin, opts.End)),
		)
		if err := r.Sink.Emit(rec); err != nil {
			return err
		}
	}
	return nil
}

// BudgetOptions controls the budget report.
//
// Pairs, when set, takes precedence over the positional Actual and Budget lists.
type BudgetOptions struct {
	Actual []string
	Budget []string
	Pairs  []PairNames
	Begin  Date
	End    Date
	Period Period
}

// pairs resolves the budget pairs.
func (o BudgetOptions) pairs(accounts []*Account) ([]AccountPair, error) {
	if len(o.Pairs) > 0 {
		return PairExplicit(accounts, o.Pairs)
	}
	return Pair(accounts, o.Actual, o.Budget)
}

// Budget emits, for each period end and each actual/budget pair, the balances
// of both accounts from Begin to the period end.
//
// Records are ordered by period, then by pair. Pairing errors are returned
// before any record is emitted.
func (r *Reporter) Budget(accounts []*Account, opts BudgetOptions) error {
	pairs, err := opts.pairs(accounts)
	if err != nil {
		return fmt.Errorf("budget: %w", err)
	}
	for _, period := range PeriodEnds(opts.Begin, opts.End, opts.Period) {
		for _, p := range pairs {
			rec := NewRecord(
				F(FieldPeriod, period),
				F(FieldActualCode, p.Actual.Code),
				F(FieldActual, p.Actual.FullName),
				F(FieldActualBalance, r.Calculator.Balance(p.Actual, opts.Begin, &period)),
				F(FieldBudgetCode, p.Budget.Code),
				F(FieldBudget, p.Budget.FullName),
				F(FieldBudgetBalance, r.Calculator.Balance(p.Budget, opts.Begin, &period)),
			)
			if err := r.Sink.Emit(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
