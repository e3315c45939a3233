package acctreports

import "errors"

var (
	// ErrInvalidInput indicates report parameters that cannot produce a report.
	ErrInvalidInput = errors.New("acctreports: invalid input")
	// ErrPairingMismatch indicates actual and budget accounts of different lengths.
	ErrPairingMismatch = errors.New("acctreports: actual and budget accounts differ in count")
	// ErrPairingEmpty indicates no actual and no budget accounts at all.
	ErrPairingEmpty = errors.New("acctreports: no actual nor budget accounts")
	// ErrUnknownFormat indicates an output format that is neither csv nor json.
	ErrUnknownFormat = errors.New("acctreports: unknown output format")
)

// inputError wraps a pairing error so that it also matches ErrInvalidInput.
type inputError struct{ err error }

func (e inputError) Error() string   { return e.err.Error() }
func (e inputError) Unwrap() []error { return []error{ErrInvalidInput, e.err} }
