package acctreports

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// AccountPair associates an actual account with its budget account.
type AccountPair struct {
	Actual *Account
	Budget *Account
}

// Pair resolves the actual and budget names against all accounts and pairs the
// results by position: the i-th actual account goes with the i-th budget account.
//
// It fails with ErrPairingEmpty when no name is given at all, or when both
// filtered lists are empty, and with ErrPairingMismatch when they differ in
// length. Both errors also match ErrInvalidInput.
func Pair(all []*Account, actualNames, budgetNames []string) ([]AccountPair, error) {
	// An empty filter selects every account: without any name both sides
	// would pair each account with itself.
	if len(actualNames) == 0 && len(budgetNames) == 0 {
		return nil, inputError{ErrPairingEmpty}
	}
	actual := Filter(all, actualNames)
	budget := Filter(all, budgetNames)
	if len(actual) == 0 && len(budget) == 0 {
		return nil, inputError{ErrPairingEmpty}
	}
	if len(actual) != len(budget) {
		return nil, inputError{fmt.Errorf("%w: %d actual, %d budget", ErrPairingMismatch, len(actual), len(budget))}
	}
	pairs := make([]AccountPair, len(actual))
	for i := range actual {
		pairs[i] = AccountPair{Actual: actual[i], Budget: budget[i]}
	}
	return pairs, nil
}

// PairNames is an explicit actual/budget association, as read from a pairing file.
type PairNames struct {
	Actual string `yaml:"actual"`
	Budget string `yaml:"budget"`
}

// pairsFile is the YAML document layout:
//
//	pairs:
//	  - actual: Expenses:Food
//	    budget: Budget:Food
type pairsFile struct {
	Pairs []PairNames `yaml:"pairs"`
}

// LoadPairs reads an explicit pairing file, pairs are returned in file order.
// A file without any pair fails with ErrPairingEmpty.
func LoadPairs(r io.Reader) ([]PairNames, error) {
	var f pairsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode pairs: %w", err)
	}
	if len(f.Pairs) == 0 {
		return nil, inputError{ErrPairingEmpty}
	}
	for i, p := range f.Pairs {
		if p.Actual == "" || p.Budget == "" {
			return nil, inputError{fmt.Errorf("pair #%d must name both an actual and a budget account", i+1)}
		}
	}
	return f.Pairs, nil
}

// PairExplicit resolves explicit pairs against all accounts, keeping the order
// of pairs.
//
// It fails with ErrInvalidInput when a pair names an account missing from the
// ledger, and with ErrPairingEmpty when there are no pairs.
func PairExplicit(all []*Account, names []PairNames) ([]AccountPair, error) {
	byName := make(map[string]*Account, len(all))
	for _, a := range all {
		byName[a.FullName] = a
	}
	if len(names) == 0 {
		return nil, inputError{ErrPairingEmpty}
	}
	pairs := make([]AccountPair, 0, len(names))
	for i, n := range names {
		actual, ok := byName[n.Actual]
		if !ok {
			return nil, inputError{fmt.Errorf("pair #%d: unknown account %q", i+1, n.Actual)}
		}
		budget, ok := byName[n.Budget]
		if !ok {
			return nil, inputError{fmt.Errorf("pair #%d: unknown account %q", i+1, n.Budget)}
		}
		pairs = append(pairs, AccountPair{Actual: actual, Budget: budget})
	}
	return pairs, nil
}
