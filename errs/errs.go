// Package errs defines the sentinel errors returned by catenc packages.
//
// Callers should test for a kind with errors.Is; the returned errors are usually
// wrapped with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Fit and state errors.
var (
	// ErrUnsupportedSourceType is returned when a declared source type has no matching
	// accumulator or encoder. It is reported at binding validation time, before any fit.
	ErrUnsupportedSourceType = errors.New("unsupported source type")
	// ErrFitFailure is returned when an ingest or finalize step fails. The whole fit of
	// the column is aborted and no encoder is produced.
	ErrFitFailure = errors.New("fit failure")
	// ErrInvalidState is returned when an operation is called in the wrong lifecycle
	// state, e.g. encode or save before the column is fitted.
	ErrInvalidState = errors.New("invalid state")
	// ErrTooManyCategories is returned when a table would exceed MaxCategories.
	ErrTooManyCategories = errors.New("too many categories")
	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("invalid option")
)

// Blob errors.
var (
	// ErrUnsupportedFormat is returned when a blob carries an unknown magic number or
	// format version.
	ErrUnsupportedFormat = errors.New("unsupported blob format")
	// ErrTruncated is returned when a blob has fewer bytes than its header declares.
	ErrTruncated = errors.New("truncated blob")
	// ErrMalformed is returned when a blob is structurally invalid: bad checksum,
	// trailing bytes, invalid flag values or undecodable entries.
	ErrMalformed = errors.New("malformed blob")
	// ErrSourceTypeMismatch is returned when a blob or column holds a different source
	// type than the one requested.
	ErrSourceTypeMismatch = errors.New("source type mismatch")
)

// Column binding errors.
var (
	ErrInvalidBinding    = errors.New("invalid column binding")
	ErrValueTypeMismatch = errors.New("value type mismatch")
	ErrDuplicateColumn   = errors.New("duplicate column name")
	ErrColumnNotFound    = errors.New("column not found")
)
