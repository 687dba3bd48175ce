package category

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
)

// Accumulator builds a category table from a stream of values.
//
// Values are fed one at a time with Ingest. Once the stream ends (or Ingest reports
// StatusComplete) the caller must call Finalize, after which Table returns the frozen
// result. Release drops the builder state and is safe to call on every exit path.
//
// An Accumulator is not safe for concurrent use.
type Accumulator[T Value] struct {
	cfg       *Config
	table     *Table[T]
	status    Status
	err       error
	finalized bool
	released  bool
}

// NewAccumulator creates an empty accumulator.
//
// Parameters:
//   - opts: WithMaxCategories, WithMinCategories and WithCapacityHint apply here
//
// Returns:
//   - *Accumulator[T]: A new accumulator in StatusContinue
//   - error: ErrInvalidOption for out-of-range options
func NewAccumulator[T Value](opts ...Option) (*Accumulator[T], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newAccumulator[T](cfg)
}

func newAccumulator[T Value](cfg *Config) (*Accumulator[T], error) {
	st, err := sourceTypeOf[T]()
	if err != nil {
		return nil, err
	}

	capacity := cfg.capacityHint
	if cfg.maxCategories > 0 {
		capacity = min(capacity, cfg.maxCategories)
	}

	return &Accumulator[T]{
		cfg:    cfg,
		table:  newTable[T](st, capacity),
		status: StatusContinue,
	}, nil
}

// Ingest adds one value.
//
// A value already in the table leaves the table unchanged. A new value gets the next
// index. When the insert reaches the WithMaxCategories cap the accumulator becomes
// StatusComplete and every later call is a no-op returning StatusComplete.
//
// Calling Ingest after Finalize or Release returns StatusError and leaves the fit
// result untouched. Err reports ErrInvalidState unless an earlier error is recorded.
func (a *Accumulator[T]) Ingest(v T) Status {
	if a.finalized || a.released {
		if a.err == nil {
			stage := "finalize"
			if a.released {
				stage = "release"
			}
			a.err = fmt.Errorf("%w: ingest after %s", errs.ErrInvalidState, stage)
		}

		return StatusError
	}

	if a.status != StatusContinue {
		return a.status
	}

	if _, ok := a.table.Lookup(v); ok {
		return a.status
	}

	if a.table.Len() >= MaxCategories {
		a.status = StatusError
		a.err = fmt.Errorf("%w: more than %d categories", errs.ErrTooManyCategories, MaxCategories)

		return a.status
	}

	a.table.appendValue(v)

	if a.cfg.maxCategories > 0 && a.table.Len() >= a.cfg.maxCategories {
		a.status = StatusComplete
	}

	return a.status
}

// Finalize ends the fit.
//
// It must be called even if no value was ingested. On success the status is
// StatusComplete and Table returns the frozen table. Finalize fails with ErrFitFailure
// if an earlier Ingest failed or fewer than WithMinCategories categories were seen.
// Calling it again returns the first result.
func (a *Accumulator[T]) Finalize() (Status, error) {
	if a.released && !a.finalized {
		return StatusError, fmt.Errorf("%w: finalize after release", errs.ErrInvalidState)
	}

	if a.finalized {
		if a.status == StatusError {
			return a.status, a.finalizeError()
		}

		return a.status, nil
	}
	a.finalized = true

	if a.status == StatusError {
		return a.status, a.finalizeError()
	}

	if n := a.table.Len(); n < a.cfg.minCategories {
		a.status = StatusError
		a.err = fmt.Errorf("found %d categories, need at least %d", n, a.cfg.minCategories)

		return a.status, a.finalizeError()
	}

	a.status = StatusComplete

	return a.status, nil
}

func (a *Accumulator[T]) finalizeError() error {
	return fmt.Errorf("%w: %w", errs.ErrFitFailure, a.err)
}

// Table returns the frozen table after a successful Finalize.
//
// Returns ErrInvalidState before Finalize, after a failed Finalize or after Release.
func (a *Accumulator[T]) Table() (*Table[T], error) {
	if !a.finalized || a.status != StatusComplete || a.table == nil {
		return nil, fmt.Errorf("%w: table requested before successful finalize", errs.ErrInvalidState)
	}

	return a.table, nil
}

// Release drops the accumulator's reference to its state. A table already returned
// by Table stays valid. Release is idempotent.
func (a *Accumulator[T]) Release() {
	a.table = nil
	a.released = true
}

// Status returns the current status.
func (a *Accumulator[T]) Status() Status {
	return a.status
}

// Err returns the first error recorded by Ingest or Finalize, if any.
func (a *Accumulator[T]) Err() error {
	return a.err
}

// Len returns the number of categories collected so far.
func (a *Accumulator[T]) Len() int {
	if a.table == nil {
		return 0
	}

	return a.table.Len()
}

// Capped reports whether the WithMaxCategories cap was reached.
func (a *Accumulator[T]) Capped() bool {
	return a.cfg.maxCategories > 0 && a.Len() >= a.cfg.maxCategories
}
