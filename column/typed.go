package column

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/arloliu/catenc/blob"
	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/encoding"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/options"
)

// Typed is a column whose values have the Go type T.
type Typed[T category.Value] struct {
	binding Binding
	cfg     Config
	state   atomic.Uint32
	enc     atomic.Pointer[category.Encoder[T]]
}

var _ Column = (*Typed[string])(nil)

// NewTyped creates an unfit column of type T.
//
// Returns ErrSourceTypeMismatch if the binding declares a type other than T.
func NewTyped[T category.Value](b Binding, opts ...Option) (*Typed[T], error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	st, err := encoding.SourceTypeOf[T]()
	if err != nil {
		return nil, err
	}
	if st != b.Type {
		return nil, fmt.Errorf("%w: column %q declares %s, Go type is %s", errs.ErrSourceTypeMismatch, b.Name, b.Type, st)
	}

	c := &Typed[T]{binding: b}
	if err := options.Apply(&c.cfg, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Typed[T]) Binding() Binding {
	return c.binding
}

func (c *Typed[T]) State() State {
	return State(c.state.Load())
}

func (c *Typed[T]) OutputType() format.OutputType {
	return format.OutputInt64
}

// begin moves the column from Unfit to Fitting.
func (c *Typed[T]) begin(op string) error {
	if !c.state.CompareAndSwap(uint32(StateUnfit), uint32(StateFitting)) {
		return fmt.Errorf("%w: cannot %s column %q in state %s", errs.ErrInvalidState, op, c.binding.Name, c.State())
	}

	return nil
}

// Fit learns the categories from an untyped source. Values of the wrong Go type abort
// the fit with ErrValueTypeMismatch.
func (c *Typed[T]) Fit(src AnySource) error {
	return c.FitSource(typedSource[T]{src: src, column: c.binding.Name})
}

// FitSource learns the categories from a typed source.
//
// On failure the column returns to Unfit and can be fitted again.
func (c *Typed[T]) FitSource(src category.Source[T]) error {
	if err := c.begin("fit"); err != nil {
		return err
	}

	log := Logger().With(zap.String("column", c.binding.Name), zap.Stringer("type", c.binding.Type))
	log.Debug("fitting column")

	enc, stats, err := category.FitWithStats(src, c.cfg.fitOpts...)
	if err != nil {
		c.state.Store(uint32(StateUnfit))
		log.Warn("column fit failed", zap.Int("rows", stats.Rows), zap.Error(err))

		return fmt.Errorf("column %q: %w", c.binding.Name, err)
	}

	c.enc.Store(enc)
	c.state.Store(uint32(StateFitted))
	log.Info("column fitted",
		zap.Int("rows", stats.Rows),
		zap.Int("categories", stats.Categories),
		zap.Bool("stopped_early", stats.StoppedEarly),
	)

	return nil
}

// Load restores the encoder from a blob written by Save.
func (c *Typed[T]) Load(data []byte) error {
	if err := c.begin("load"); err != nil {
		return err
	}

	enc, err := blob.Unmarshal[T](data)
	if err != nil {
		c.state.Store(uint32(StateUnfit))
		return fmt.Errorf("column %q: %w", c.binding.Name, err)
	}

	c.enc.Store(enc)
	c.state.Store(uint32(StateFitted))
	Logger().Debug("column loaded", zap.String("column", c.binding.Name), zap.Int("categories", enc.Len()))

	return nil
}

// Save serializes the fitted encoder.
func (c *Typed[T]) Save() ([]byte, error) {
	enc, err := c.Encoder()
	if err != nil {
		return nil, err
	}

	data, err := blob.Marshal(enc, c.cfg.blobOpts...)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", c.binding.Name, err)
	}

	return data, nil
}

// Encoder returns the fitted encoder.
func (c *Typed[T]) Encoder() (*category.Encoder[T], error) {
	enc := c.enc.Load()
	if enc == nil || c.State() != StateFitted {
		return nil, fmt.Errorf("%w: column %q is %s", errs.ErrInvalidState, c.binding.Name, c.State())
	}

	return enc, nil
}

// Encode returns the category index of v.
func (c *Typed[T]) Encode(v T) (int, error) {
	enc, err := c.Encoder()
	if err != nil {
		return 0, err
	}

	return enc.Encode(v), nil
}

func (c *Typed[T]) EncodeAny(v any) (int, error) {
	tv, ok := v.(T)
	if !ok {
		var zero T
		return 0, fmt.Errorf("%w: column %q expects %T, got %T", errs.ErrValueTypeMismatch, c.binding.Name, zero, v)
	}

	return c.Encode(tv)
}

func (c *Typed[T]) Width() (int, error) {
	enc, err := c.Encoder()
	if err != nil {
		return 0, err
	}

	return enc.Width(), nil
}

func (c *Typed[T]) Len() (int, error) {
	enc, err := c.Encoder()
	if err != nil {
		return 0, err
	}

	return enc.Len(), nil
}
