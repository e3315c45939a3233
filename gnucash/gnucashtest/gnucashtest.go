// Package gnucashtest builds GnuCash sqlite books for tests.
//
//	book := gnucashtest.New(t).
//		Account("Assets:Checking", acctreports.Asset, "1000").
//		Account("Income:Salary", acctreports.Income, "4000").
//		Tx("2016-01-31", "salary", gnucashtest.S("Assets:Checking", "2500"), gnucashtest.S("Income:Salary", "-2500"))
//	b, err := gnucash.Open(book.Path())
package gnucashtest

import (
	"database/sql"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/acctreports"
	"github.com/etnz/acctreports/gnucash"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Currency is the commodity of every account created by the builder.
const Currency = "USD"

// Book is a GnuCash book under construction.
type Book struct {
	t        testing.TB
	path     string
	db       *sql.DB
	root     string
	currency string
	accounts map[string]string // full name to guid
}

// Split is one leg of a fixture transaction.
type Split struct {
	Account string // full name
	Value   string // decimal, raw ledger sign
}

// S is a short hand to create a Split.
func S(account, value string) Split { return Split{Account: account, Value: value} }

// New creates an empty book with its root and template accounts in a
// temporary directory.
func New(t testing.TB) *Book {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.gnucash")
	if err := RunMigrations(path); err != nil {
		t.Fatalf("gnucashtest: %v", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("gnucashtest: open sqlite database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	b := &Book{
		t:        t,
		path:     path,
		db:       db,
		root:     guid(),
		currency: guid(),
		accounts: make(map[string]string),
	}
	template := guid()
	b.Exec(`INSERT INTO commodities (guid, namespace, mnemonic, fullname, cusip, fraction, quote_flag, quote_source, quote_tz)
		VALUES (?, 'CURRENCY', ?, 'US Dollar', '840', 100, 1, 'currency', '')`, b.currency, Currency)
	b.insertAccount(b.root, "Root Account", "ROOT", "", "")
	b.insertAccount(template, "Template Root", "ROOT", "", "")
	b.Exec(`INSERT INTO books (guid, root_account_guid, root_template_guid) VALUES (?, ?, ?)`, guid(), b.root, template)
	return b
}

// RunMigrations creates the GnuCash tables in the sqlite file at path.
func RunMigrations(path string) error {
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	d, err := iofs.New(schemaFS, "schema")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Path returns the book file name.
func (b *Book) Path() string { return b.path }

// Exec runs a raw statement against the book.
func (b *Book) Exec(query string, args ...any) *Book {
	b.t.Helper()
	if _, err := b.db.Exec(query, args...); err != nil {
		b.t.Fatalf("gnucashtest: %v", err)
	}
	return b
}

// Account adds an account of the given type. Missing parents are created with
// the same type and no code.
func (b *Book) Account(fullname string, typ acctreports.AccountType, code string) *Book {
	b.t.Helper()
	return b.AccountOfType(fullname, gnucash.GncType(typ), code)
}

// AccountOfType adds an account with a raw GnuCash type, such as "BANK" or "CREDIT".
func (b *Book) AccountOfType(fullname, gncType, code string) *Book {
	b.t.Helper()
	if _, ok := b.accounts[fullname]; ok {
		b.t.Fatalf("gnucashtest: account %q already exists", fullname)
	}
	parent := b.root
	names := strings.Split(fullname, ":")
	for i, name := range names {
		current := strings.Join(names[:i+1], ":")
		if g, ok := b.accounts[current]; ok {
			parent = g
			continue
		}
		g := guid()
		if i == len(names)-1 {
			b.insertAccount(g, name, gncType, parent, code)
		} else {
			b.insertAccount(g, name, gncType, parent, "")
		}
		b.accounts[current] = g
		parent = g
	}
	return b
}

func (b *Book) insertAccount(g, name, gncType, parent, code string) {
	b.t.Helper()
	var parentGUID any
	if parent != "" {
		parentGUID = parent
	}
	b.Exec(`INSERT INTO accounts (guid, name, account_type, commodity_guid, commodity_scu, non_std_scu, parent_guid, code, description, hidden, placeholder)
		VALUES (?, ?, ?, ?, 100, 0, ?, ?, '', 0, 0)`, g, name, gncType, b.currency, parentGUID, code)
}

// Tx adds a transaction posted on a YYYY-MM-DD date.
func (b *Book) Tx(on, description string, splits ...Split) *Book {
	b.t.Helper()
	return b.TxAt(on+" 10:59:00", description, splits...)
}

// TxAt adds a transaction with a post date stored verbatim, for instance in
// the legacy YYYYMMDDHHMMSS form.
func (b *Book) TxAt(postDate, description string, splits ...Split) *Book {
	b.t.Helper()
	tx := guid()
	b.Exec(`INSERT INTO transactions (guid, currency_guid, num, post_date, enter_date, description)
		VALUES (?, ?, '', ?, ?, ?)`, tx, b.currency, postDate, postDate, description)
	for _, s := range splits {
		account, ok := b.accounts[s.Account]
		if !ok {
			b.t.Fatalf("gnucashtest: unknown account %q", s.Account)
		}
		num, denom := fraction(b.t, s.Value)
		b.Exec(`INSERT INTO splits (guid, tx_guid, account_guid, memo, action, reconcile_state, reconcile_date,
			value_num, value_denom, quantity_num, quantity_denom, lot_guid)
			VALUES (?, ?, ?, '', '', 'n', NULL, ?, ?, ?, ?, NULL)`, guid(), tx, account, num, denom, num, denom)
	}
	return b
}

// Lock marks the book as opened by a running GnuCash.
func (b *Book) Lock() *Book {
	b.t.Helper()
	return b.Exec(`INSERT INTO gnclock (Hostname, PID) VALUES ('localhost', 4242)`)
}

// guid returns a GnuCash style identifier: 32 lower case hexadecimal digits.
func guid() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// fraction stores value exactly as num/denom with a power of ten denominator.
func fraction(t testing.TB, value string) (num, denom int64) {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("gnucashtest: invalid value %q: %v", value, err)
	}
	exp := d.Exponent()
	if exp >= 0 {
		return d.IntPart(), 1
	}
	denom = 1
	for range -exp {
		denom *= 10
	}
	return d.Shift(-exp).IntPart(), denom
}
