package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/catenc/column"
	"github.com/arloliu/catenc/errs"
)

// Estimator fits the encoders of a Config from Arrow tables.
type Estimator struct {
	bindings    []column.Binding
	columnOpts  []column.Option
	parallelism int
	settings    *Settings
}

// NewEstimator validates cfg and creates an Estimator.
//
// Unsupported source types and duplicate output names are reported here, before any
// data is read.
func NewEstimator(cfg *Config, opts ...Option) (*Estimator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", errs.ErrInvalidOption)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}

	columnOpts, err := cfg.columnOptions()
	if err != nil {
		return nil, err
	}

	settings, err := newSettings(opts...)
	if err != nil {
		return nil, err
	}

	// Fit builds fresh columns; this pass only checks that they can be built.
	for _, b := range bindings {
		if _, err := column.New(b, columnOpts...); err != nil {
			return nil, err
		}
	}

	return &Estimator{
		bindings:    bindings,
		columnOpts:  columnOpts,
		parallelism: cfg.Parallelism,
		settings:    settings,
	}, nil
}

// Bindings returns the column bindings in config order.
func (e *Estimator) Bindings() []column.Binding {
	out := make([]column.Binding, len(e.bindings))
	copy(out, e.bindings)

	return out
}

// boundColumn is a fresh column together with its source data.
type boundColumn struct {
	col    column.Column
	kernel kernel
	chunks []arrow.Array
}

// Fit fits one encoder per binding from tbl and returns the Transformer.
//
// Every source column must exist in tbl with the declared type. Columns are fitted
// concurrently, each in a single sequential pass over its chunks. The first failure
// cancels the remaining fits and is returned; no partial Transformer is produced.
func (e *Estimator) Fit(ctx context.Context, tbl arrow.Table) (*Transformer, error) {
	if tbl == nil {
		return nil, fmt.Errorf("%w: nil table", errs.ErrInvalidOption)
	}

	start := time.Now()
	log := Logger()

	bound, err := e.bind(tbl)
	if err != nil {
		e.settings.metrics.ObserveFit(time.Since(start), err)
		return nil, err
	}

	log.Info("fitting columns", zap.Int("columns", len(bound)), zap.Int64("rows", tbl.NumRows()))

	g, gctx := errgroup.WithContext(ctx)
	if e.parallelism > 0 {
		g.SetLimit(e.parallelism)
	}

	for _, bc := range bound {
		g.Go(func() error {
			name := bc.col.Binding().Name

			rows, err := bc.kernel.fit(gctx, bc.col, bc.chunks)
			if err != nil {
				e.settings.metrics.FitFailed(name)
				return err
			}

			n, _ := bc.col.Len()
			e.settings.metrics.ColumnFitted(name, n)
			log.Debug("column fitted", zap.String("column", name), zap.Int("rows", rows), zap.Int("categories", n))

			return nil
		})
	}

	err = g.Wait()
	e.settings.metrics.ObserveFit(time.Since(start), err)
	if err != nil {
		log.Warn("fit failed", zap.Error(err))
		return nil, err
	}

	cols := make([]column.Column, len(bound))
	for i, bc := range bound {
		cols[i] = bc.col
	}

	log.Info("fit complete", zap.Duration("elapsed", time.Since(start)))

	return newTransformer(cols, e.settings), nil
}

func (e *Estimator) bind(tbl arrow.Table) ([]boundColumn, error) {
	schema := tbl.Schema()
	bound := make([]boundColumn, 0, len(e.bindings))

	for _, b := range e.bindings {
		idx, err := fieldIndex(schema, b)
		if err != nil {
			return nil, err
		}

		k, err := kernelFor(b.Type)
		if err != nil {
			return nil, err
		}
		if dt := schema.Field(idx).Type; !k.accepts(dt) {
			return nil, fmt.Errorf("%w: column %q declares %s, source %q is %s",
				errs.ErrSourceTypeMismatch, b.Name, b.Type, b.SourceName(), dt)
		}

		col, err := column.New(b, e.columnOpts...)
		if err != nil {
			return nil, err
		}

		bound = append(bound, boundColumn{
			col:    col,
			kernel: k,
			chunks: tbl.Column(idx).Data().Chunks(),
		})
	}

	return bound, nil
}

// fieldIndex returns the index of the source field of b.
func fieldIndex(schema *arrow.Schema, b column.Binding) (int, error) {
	indices := schema.FieldIndices(b.SourceName())
	switch len(indices) {
	case 0:
		return 0, fmt.Errorf("%w: source %q of column %q", errs.ErrColumnNotFound, b.SourceName(), b.Name)
	case 1:
		return indices[0], nil
	default:
		return 0, fmt.Errorf("%w: source %q of column %q appears %d times",
			errs.ErrDuplicateColumn, b.SourceName(), b.Name, len(indices))
	}
}
