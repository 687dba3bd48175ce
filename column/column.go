package column

import (
	"fmt"

	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// Column is a type-erased category encoder bound to an input column.
type Column interface {
	// Binding returns the column binding.
	Binding() Binding
	// State returns the lifecycle state.
	State() State
	// OutputType returns the type of the encoded output.
	OutputType() format.OutputType
	// Fit learns the categories from src in a single pass.
	Fit(src AnySource) error
	// Load restores a fitted encoder from a blob.
	Load(data []byte) error
	// Save serializes the fitted encoder to a blob.
	Save() ([]byte, error)
	// EncodeAny returns the category index of v, which must have the column's Go type.
	EncodeAny(v any) (int, error)
	// Width returns the number of distinct output indexes of the fitted encoder.
	Width() (int, error)
	// Len returns the number of fitted categories.
	Len() (int, error)
}

// New creates an unfit column for the binding.
//
// The source type is checked here, so an unsupported type fails at schema validation
// time with ErrUnsupportedSourceType, before any value is read.
func New(b Binding, opts ...Option) (Column, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	switch b.Type {
	case format.SourceInt8:
		return newColumn[int8](b, opts)
	case format.SourceInt16:
		return newColumn[int16](b, opts)
	case format.SourceInt32:
		return newColumn[int32](b, opts)
	case format.SourceInt64:
		return newColumn[int64](b, opts)
	case format.SourceUint8:
		return newColumn[uint8](b, opts)
	case format.SourceUint16:
		return newColumn[uint16](b, opts)
	case format.SourceUint32:
		return newColumn[uint32](b, opts)
	case format.SourceUint64:
		return newColumn[uint64](b, opts)
	case format.SourceFloat32:
		return newColumn[float32](b, opts)
	case format.SourceFloat64:
		return newColumn[float64](b, opts)
	case format.SourceBool:
		return newColumn[bool](b, opts)
	case format.SourceString:
		return newColumn[string](b, opts)
	default:
		return nil, fmt.Errorf("%w: column %q has source type %s", errs.ErrUnsupportedSourceType, b.Name, b.Type)
	}
}

func newColumn[T category.Value](b Binding, opts []Option) (Column, error) {
	c, err := NewTyped[T](b, opts...)
	if err != nil {
		return nil, err
	}

	return c, nil
}
