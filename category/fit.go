package category

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/catenc/errs"
)

// FitStats describes a completed fit pass.
type FitStats struct {
	// Rows is the number of values read from the source.
	Rows int
	// Categories is the number of categories in the fitted table.
	Categories int
	// StoppedEarly is true if the pass ended because the category cap was reached
	// rather than at end of stream.
	StoppedEarly bool
}

// Fit learns a category table from src in a single forward pass and returns an
// encoder over it.
//
// The pass ends at io.EOF or as soon as the accumulator reports StatusComplete.
// Finalize is always called, also for an empty source. Any source, ingest or finalize
// error aborts the fit with an error wrapping ErrFitFailure; no partial encoder is
// ever returned.
//
// Parameters:
//   - src: Forward-only value stream
//   - opts: Accumulator options, the encoder's unseen policy and an optional progress callback
//
// Returns:
//   - *Encoder[T]: Encoder over the fitted table
//   - error: ErrInvalidOption for bad options, ErrFitFailure for a failed pass
func Fit[T Value](src Source[T], opts ...Option) (*Encoder[T], error) {
	enc, _, err := FitWithStats(src, opts...)
	return enc, err
}

// FitWithStats is like Fit and also reports statistics about the pass. The stats are
// filled in as far as the pass got, also on error.
func FitWithStats[T Value](src Source[T], opts ...Option) (*Encoder[T], FitStats, error) {
	var stats FitStats

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, stats, err
	}

	acc, err := newAccumulator[T](cfg)
	if err != nil {
		return nil, stats, err
	}
	defer acc.Release()

	progress := func(status Status) {
		if cfg.progress != nil {
			cfg.progress(stats.Rows, status)
		}
	}

	for {
		v, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			progress(StatusError)
			return nil, stats, fmt.Errorf("%w: read row %d: %w", errs.ErrFitFailure, stats.Rows, err)
		}
		stats.Rows++

		status := acc.Ingest(v)
		if status == StatusError {
			progress(status)
			return nil, stats, fmt.Errorf("%w: row %d: %w", errs.ErrFitFailure, stats.Rows, acc.Err())
		}

		if stats.Rows%cfg.progressEvery == 0 {
			progress(status)
		}

		if status == StatusComplete {
			stats.StoppedEarly = true
			break
		}
	}

	status, err := acc.Finalize()
	stats.Categories = acc.Len()
	progress(status)
	if err != nil {
		return nil, stats, err
	}

	table, err := acc.Table()
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %w", errs.ErrFitFailure, err)
	}

	return newEncoder(table, cfg.policy), stats, nil
}

// FitSeq fits an encoder from an iterator.
func FitSeq[T Value](seq iter.Seq[T], opts ...Option) (*Encoder[T], error) {
	src := NewSeqSource(seq)
	defer src.Close()

	return Fit[T](src, opts...)
}

// FitSlice fits an encoder from a slice.
func FitSlice[T Value](values []T, opts ...Option) (*Encoder[T], error) {
	return Fit[T](NewSliceSource(values), opts...)
}
