// Package acctreports computes financial reports from a double-entry ledger.
//
// The ledger itself is read by a collaborator (see package gnucash) that hands
// over plain Account values, each carrying its dated postings. This package
// turns them into flat records:
//   - Chart of accounts: code, type and full name of every account.
//   - Balances: the signed balance of each account over a [begin, end) window,
//     or its running total.
//   - Budget: actual and budget balances, paired by position, at the end of
//     every month between two dates.
//
// Amounts are summed as exact decimals and rounded half-up to two places only
// when a record is built. Records are streamed to a Sink that writes CSV or
// JSON, so that computing and serializing stay independent.
//
// This package serves as the foundational logic for the `acr` command-line
// tool.
package acctreports
