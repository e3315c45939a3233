// Package gnucash reads accounts and postings from a GnuCash book stored as a
// sqlite file.
//
// Books are always opened read-only.
package gnucash

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/etnz/acctreports"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

// requiredTables are the GnuCash tables needed to read accounts and postings.
var requiredTables = []string{"books", "accounts", "commodities", "transactions", "splits"}

// Book is an opened GnuCash book.
type Book struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
	loc    *time.Location
}

type options struct {
	ignoreLock bool
	logger     *slog.Logger
	loc        *time.Location
}

// Option configures Open.
type Option func(*options)

// OpenIfLocked opens the book even when GnuCash holds a lock on it.
func OpenIfLocked() Option {
	return func(o *options) { o.ignoreLock = true }
}

// WithLogger sets the logger receiving debug information.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLocation sets the time zone of the user who entered transactions in
// older books, which stored post dates at local midnight. It defaults to
// time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// Open opens an existing GnuCash sqlite book, read-only.
func Open(path string, opts ...Option) (*Book, error) {
	o := options{logger: slog.New(slog.DiscardHandler), loc: time.Local}
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat book: %w", err)
	}

	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	b := &Book{db: db, path: path, logger: o.logger, loc: o.loc}
	if err := b.check(context.Background(), o.ignoreLock); err != nil {
		db.Close()
		return nil, err
	}
	b.logger.Debug("book opened", "path", path)
	return b, nil
}

// readOnlyDSN returns the sqlite URI opening path read-only. The path is
// escaped, so that '?' or '#' in a file name are not read as URI delimiters.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve book path: %w", err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	return u.String(), nil
}

// Close releases the database connection.
func (b *Book) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// Path returns the book file name.
func (b *Book) Path() string { return b.path }

// check verifies that the book has the GnuCash tables and is not locked.
func (b *Book) check(ctx context.Context, ignoreLock bool) error {
	rows, err := b.db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, b.path, err)
	}
	defer rows.Close()
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("list tables: %w", err)
		}
		tables = append(tables, strings.ToLower(name))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, b.path, err)
	}
	for _, t := range requiredTables {
		if !slices.Contains(tables, t) {
			return fmt.Errorf("%w: %s: missing table %q", ErrMalformed, b.path, t)
		}
	}

	if ignoreLock || !slices.Contains(tables, "gnclock") {
		return nil
	}
	var locks int
	if err := b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM gnclock").Scan(&locks); err != nil {
		return fmt.Errorf("read lock: %w", err)
	}
	if locks > 0 {
		return fmt.Errorf("%w: %s", ErrLocked, b.path)
	}
	return nil
}

// node is an account row and its place in the tree.
type node struct {
	guid      string
	name      string
	gncType   string
	parent    string
	code      string
	commodity string
	children  []*node
	postings  []acctreports.Posting
	raw       decimal.Decimal // own postings, raw sign
}

// Accounts reads every account of the book with its postings.
//
// Accounts come in tree order: parents before children, siblings sorted by
// name. The root and template accounts are not returned.
func (b *Book) Accounts(ctx context.Context) ([]*acctreports.Account, error) {
	var rootGUID string
	if err := b.db.QueryRowContext(ctx, "SELECT root_account_guid FROM books LIMIT 1").Scan(&rootGUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no book record", ErrMalformed)
		}
		return nil, fmt.Errorf("read book: %w", err)
	}

	nodes, err := b.readAccounts(ctx)
	if err != nil {
		return nil, err
	}
	root, ok := nodes[rootGUID]
	if !ok {
		return nil, fmt.Errorf("%w: root account %s not found", ErrMalformed, rootGUID)
	}
	if err := b.readSplits(ctx, nodes); err != nil {
		return nil, err
	}

	for _, n := range nodes {
		if p, ok := nodes[n.parent]; ok {
			p.children = append(p.children, n)
		}
	}

	var accounts []*acctreports.Account
	var walk func(n *node, prefix string) (decimal.Decimal, error)
	walk = func(n *node, prefix string) (decimal.Decimal, error) {
		typ, reported, err := rootType(n.gncType)
		if err != nil {
			return decimal.Zero, fmt.Errorf("account %q: %w", n.name, err)
		}
		fullname := prefix
		var a *acctreports.Account
		if reported {
			if fullname != "" {
				fullname += ":"
			}
			fullname += n.name
			a = &acctreports.Account{
				Name:      n.name,
				FullName:  fullname,
				Code:      n.code,
				Type:      typ,
				Sign:      typ.Sign(),
				Commodity: n.commodity,
				Postings:  n.postings,
			}
			accounts = append(accounts, a)
		}

		slices.SortFunc(n.children, func(x, y *node) int { return strings.Compare(x.name, y.name) })
		total := n.raw
		for _, c := range n.children {
			sub, err := walk(c, fullname)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Add(sub)
		}
		if a != nil {
			a.Total = a.Sign.Apply(total)
		}
		return total, nil
	}
	if _, err := walk(root, ""); err != nil {
		return nil, err
	}

	b.logger.Debug("accounts read", "path", b.path, "accounts", len(accounts))
	return accounts, nil
}

func (b *Book) readAccounts(ctx context.Context) (map[string]*node, error) {
	const query = `SELECT a.guid, a.name, a.account_type, COALESCE(a.parent_guid, ''),
		COALESCE(a.code, ''), COALESCE(c.mnemonic, '')
		FROM accounts a LEFT JOIN commodities c ON c.guid = a.commodity_guid`

	rows, err := b.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	nodes := make(map[string]*node)
	for rows.Next() {
		n := &node{raw: decimal.Zero}
		if err := rows.Scan(&n.guid, &n.name, &n.gncType, &n.parent, &n.code, &n.commodity); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		nodes[n.guid] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	return nodes, nil
}

func (b *Book) readSplits(ctx context.Context, nodes map[string]*node) error {
	const query = `SELECT s.account_guid, s.value_num, s.value_denom, t.post_date, COALESCE(t.description, '')
		FROM splits s JOIN transactions t ON t.guid = s.tx_guid`

	rows, err := b.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query splits: %w", err)
	}
	defer rows.Close()

	var count int
	for rows.Next() {
		var (
			accountGUID string
			num, denom  int64
			postDate    any
			description string
		)
		if err := rows.Scan(&accountGUID, &num, &denom, &postDate, &description); err != nil {
			return fmt.Errorf("scan split: %w", err)
		}
		n, ok := nodes[accountGUID]
		if !ok {
			return fmt.Errorf("%w: split on unknown account %s", ErrMalformed, accountGUID)
		}
		on, err := parsePostDate(postDate, b.loc)
		if err != nil {
			return err
		}
		value := fraction(num, denom)
		n.postings = append(n.postings, acctreports.Posting{
			Value:       value,
			Transaction: acctreports.Transaction{PostDate: on, Description: description},
		})
		n.raw = n.raw.Add(value)
		count++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read splits: %w", err)
	}
	b.logger.Debug("splits read", "path", b.path, "splits", count)
	return nil
}
