package gnucash

import "errors"

var (
	// ErrNotFound indicates a book file that does not exist.
	ErrNotFound = errors.New("gnucash: book not found")
	// ErrLocked indicates a book currently opened by GnuCash.
	ErrLocked = errors.New("gnucash: book is locked")
	// ErrMalformed indicates a file that is not a GnuCash sqlite book, or has inconsistent content.
	ErrMalformed = errors.New("gnucash: malformed book")
)
