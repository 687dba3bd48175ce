package column

import (
	"fmt"
	"io"

	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/errs"
)

// AnySource is a forward-only stream of untyped column values.
//
// Next returns io.EOF once the stream is exhausted. Values must have the Go type
// matching the column's source type, e.g. int32 for format.SourceInt32.
type AnySource interface {
	Next() (any, error)
}

// AnySourceFunc adapts a function to the AnySource interface.
type AnySourceFunc func() (any, error)

// Next calls f.
func (f AnySourceFunc) Next() (any, error) {
	return f()
}

// NewSliceSource returns an AnySource over values.
func NewSliceSource(values []any) AnySource {
	pos := 0
	return AnySourceFunc(func() (any, error) {
		if pos >= len(values) {
			return nil, io.EOF
		}
		v := values[pos]
		pos++

		return v, nil
	})
}

// typedSource converts an AnySource into a category.Source[T].
type typedSource[T category.Value] struct {
	src    AnySource
	column string
}

var _ category.Source[string] = typedSource[string]{}

func (s typedSource[T]) Next() (T, error) {
	var zero T

	v, err := s.src.Next()
	if err != nil {
		return zero, err
	}

	tv, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: column %q expects %T, got %T", errs.ErrValueTypeMismatch, s.column, zero, v)
	}

	return tv, nil
}
