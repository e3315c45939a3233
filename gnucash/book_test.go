package gnucash_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/acctreports"
	"github.com/etnz/acctreports/gnucash"
	"github.com/etnz/acctreports/gnucash/gnucashtest"
	"github.com/stretchr/testify/require"
)

func household(t *testing.T) *gnucashtest.Book {
	return gnucashtest.New(t).
		AccountOfType("Assets:Checking", "BANK", "1000").
		AccountOfType("Assets:Wallet", "CASH", "1010").
		AccountOfType("Liabilities:Card", "CREDIT", "2000").
		Account("Income:Salary", acctreports.Income, "4000").
		Account("Expenses:Food", acctreports.Expense, "5000").
		Account("Expenses:Food:Restaurant", acctreports.Expense, "5010").
		Account("Equity:Opening Balances", acctreports.Equity, "").
		Tx("2015-12-31", "opening", gnucashtest.S("Assets:Checking", "1000"), gnucashtest.S("Equity:Opening Balances", "-1000")).
		Tx("2016-01-31", "salary", gnucashtest.S("Assets:Checking", "2500"), gnucashtest.S("Income:Salary", "-2500")).
		Tx("2016-02-03", "groceries", gnucashtest.S("Expenses:Food", "45.12"), gnucashtest.S("Liabilities:Card", "-45.12")).
		Tx("2016-02-14", "dinner", gnucashtest.S("Expenses:Food:Restaurant", "80.005"), gnucashtest.S("Assets:Wallet", "-80.005"))
}

func readAccounts(t *testing.T, path string, opts ...gnucash.Option) []*acctreports.Account {
	t.Helper()
	book, err := gnucash.Open(path, opts...)
	require.NoError(t, err)
	defer book.Close()
	accounts, err := book.Accounts(context.Background())
	require.NoError(t, err)
	return accounts
}

func byName(accounts []*acctreports.Account) map[string]*acctreports.Account {
	m := make(map[string]*acctreports.Account)
	for _, a := range accounts {
		m[a.FullName] = a
	}
	return m
}

func TestBook_Accounts(t *testing.T) {
	accounts := readAccounts(t, household(t).Path())

	var names []string
	for _, a := range accounts {
		names = append(names, a.FullName)
	}
	require.Equal(t, []string{
		"Assets",
		"Assets:Checking",
		"Assets:Wallet",
		"Equity",
		"Equity:Opening Balances",
		"Expenses",
		"Expenses:Food",
		"Expenses:Food:Restaurant",
		"Income",
		"Income:Salary",
		"Liabilities",
		"Liabilities:Card",
	}, names, "tree order, without root nor template accounts")

	m := byName(accounts)
	checking := m["Assets:Checking"]
	require.Equal(t, "Checking", checking.Name)
	require.Equal(t, "1000", checking.Code)
	require.Equal(t, acctreports.Asset, checking.Type)
	require.Equal(t, acctreports.Debit, checking.Sign)
	require.Equal(t, gnucashtest.Currency, checking.Commodity)
	require.Len(t, checking.Postings, 2)

	require.Equal(t, acctreports.Liability, m["Liabilities:Card"].Type)
	require.Equal(t, acctreports.Credit, m["Liabilities:Card"].Sign)
	require.Equal(t, acctreports.Credit, m["Income:Salary"].Sign)
	require.Equal(t, acctreports.Equity, m["Equity:Opening Balances"].Type)
	require.Equal(t, "", m["Equity:Opening Balances"].Code)
}

func TestBook_Totals(t *testing.T) {
	m := byName(readAccounts(t, household(t).Path()))

	testCases := map[string]string{
		"Assets":                   "3419.995",
		"Assets:Checking":          "3500",
		"Assets:Wallet":            "-80.005",
		"Liabilities:Card":         "45.12",
		"Income:Salary":            "2500",
		"Expenses":                 "125.125",
		"Expenses:Food":            "125.125",
		"Expenses:Food:Restaurant": "80.005",
		"Equity":                   "1000",
	}
	for name, want := range testCases {
		a, ok := m[name]
		require.True(t, ok, name)
		require.Equal(t, want, a.Total.String(), "total of %s", name)
	}

	// the running total rounds once
	require.Equal(t, "125.13", acctreports.Balance(m["Expenses:Food"], acctreports.Date{}, nil).String())
}

func TestBook_Postings(t *testing.T) {
	m := byName(readAccounts(t, household(t).Path()))

	food := m["Expenses:Food"]
	require.Len(t, food.Postings, 1, "descendant postings are not copied")
	p := food.Postings[0]
	require.Equal(t, "45.12", p.Value.String())
	require.Equal(t, acctreports.NewDate(2016, 2, 3), p.Date())
	require.Equal(t, "groceries", p.Transaction.Description)

	end := acctreports.NewDate(2016, 2, 1)
	require.Equal(t, "2500.00", acctreports.Balance(m["Income:Salary"], acctreports.NewDate(2016, 1, 1), &end).String())
}

func TestBook_LegacyPostDate(t *testing.T) {
	book := gnucashtest.New(t).
		Account("Assets:Checking", acctreports.Asset, "").
		Account("Income:Gift", acctreports.Income, "").
		TxAt("20160229230000", "gift", gnucashtest.S("Assets:Checking", "10"), gnucashtest.S("Income:Gift", "-10"))

	m := byName(readAccounts(t, book.Path(), gnucash.WithLocation(time.UTC)))
	require.Equal(t, acctreports.NewDate(2016, 2, 29), m["Income:Gift"].Postings[0].Date())
}

func TestBook_LocalMidnightPostDate(t *testing.T) {
	// entered in Paris on March 1st, stored as the UTC time of the local midnight
	book := gnucashtest.New(t).
		Account("Assets:Checking", acctreports.Asset, "").
		Account("Income:Gift", acctreports.Income, "").
		TxAt("2016-02-29 23:00:00", "gift", gnucashtest.S("Assets:Checking", "10"), gnucashtest.S("Income:Gift", "-10")).
		Tx("2016-02-29", "bonus", gnucashtest.S("Assets:Checking", "5"), gnucashtest.S("Income:Gift", "-5"))

	m := byName(readAccounts(t, book.Path(), gnucash.WithLocation(time.FixedZone("CET", 3600))))
	postings := m["Income:Gift"].Postings
	require.Len(t, postings, 2)
	days := map[string]acctreports.Date{}
	for _, p := range postings {
		days[p.Transaction.Description] = p.Date()
	}
	require.Equal(t, acctreports.NewDate(2016, 3, 1), days["gift"])
	require.Equal(t, acctreports.NewDate(2016, 2, 29), days["bonus"], "day neutral dates are kept")

	// March only counts the gift
	begin, end := acctreports.NewDate(2016, 3, 1), acctreports.NewDate(2016, 4, 1)
	require.Equal(t, "10.00", acctreports.Balance(m["Income:Gift"], begin, &end).String())
}

func TestOpen_SpecialFileName(t *testing.T) {
	data, err := os.ReadFile(household(t).Path())
	require.NoError(t, err)
	dir := t.TempDir()
	path := filepath.Join(dir, "books #1?mode=rwc & more.gnucash")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	m := byName(readAccounts(t, path))
	require.Equal(t, "1000", m["Assets:Checking"].Code)

	// a truncated name would have created another database next to the book
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, filepath.Base(path), entries[0].Name())
}

func TestOpen_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := gnucash.Open(filepath.Join(t.TempDir(), "nothing.gnucash"))
		require.ErrorIs(t, err, gnucash.ErrNotFound)
	})

	t.Run("missing file is not created", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nothing.gnucash")
		gnucash.Open(path)
		_, err := os.Stat(path)
		require.True(t, os.IsNotExist(err))
	})

	t.Run("not a sqlite file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "book.gnucash")
		require.NoError(t, os.WriteFile(path, []byte("<?xml version=\"1.0\"?>\n<gnc-v2/>\n"), 0o644))
		_, err := gnucash.Open(path)
		require.ErrorIs(t, err, gnucash.ErrMalformed)
	})

	t.Run("missing tables", func(t *testing.T) {
		book := gnucashtest.New(t).Exec("DROP TABLE splits")
		_, err := gnucash.Open(book.Path())
		require.ErrorIs(t, err, gnucash.ErrMalformed)
	})

	t.Run("locked", func(t *testing.T) {
		book := household(t).Lock()
		_, err := gnucash.Open(book.Path())
		require.ErrorIs(t, err, gnucash.ErrLocked)

		require.NotEmpty(t, readAccounts(t, book.Path(), gnucash.OpenIfLocked()))
	})
}

func TestBook_Malformed(t *testing.T) {
	t.Run("unknown account type", func(t *testing.T) {
		book := gnucashtest.New(t).AccountOfType("Assets:Piggy", "PIGGYBANK", "")
		b, err := gnucash.Open(book.Path())
		require.NoError(t, err)
		defer b.Close()
		_, err = b.Accounts(context.Background())
		require.ErrorIs(t, err, gnucash.ErrMalformed)
	})

	t.Run("no book record", func(t *testing.T) {
		book := gnucashtest.New(t).Exec("DELETE FROM books")
		b, err := gnucash.Open(book.Path())
		require.NoError(t, err)
		defer b.Close()
		_, err = b.Accounts(context.Background())
		require.ErrorIs(t, err, gnucash.ErrMalformed)
	})
}

func TestBook_Empty(t *testing.T) {
	accounts := readAccounts(t, gnucashtest.New(t).Path())
	require.Empty(t, accounts)
}
