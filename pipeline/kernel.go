package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/column"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// valuer is implemented by the Arrow arrays whose values have Go type T,
// e.g. *array.Int32 or *array.String.
type valuer[T category.Value] interface {
	arrow.Array
	Value(i int) T
}

// kernel moves values between Arrow arrays and a column of one source type.
type kernel interface {
	// dataType returns the Arrow type written for the source type.
	dataType() arrow.DataType
	// accepts reports whether an Arrow column of type dt can feed the column.
	accepts(dt arrow.DataType) bool
	// fit fits col from the chunks of its source column.
	fit(ctx context.Context, col column.Column, chunks []arrow.Array) (int, error)
	// encode appends the index of every value of arr to out and returns the number
	// of unseen values.
	encode(col column.Column, arr arrow.Array, out *array.Int64Builder) (int, error)
}

var kernels = map[format.SourceType]kernel{
	format.SourceInt8:    typedKernel[int8]{types: []arrow.DataType{arrow.PrimitiveTypes.Int8}},
	format.SourceInt16:   typedKernel[int16]{types: []arrow.DataType{arrow.PrimitiveTypes.Int16}},
	format.SourceInt32:   typedKernel[int32]{types: []arrow.DataType{arrow.PrimitiveTypes.Int32}},
	format.SourceInt64:   typedKernel[int64]{types: []arrow.DataType{arrow.PrimitiveTypes.Int64}},
	format.SourceUint8:   typedKernel[uint8]{types: []arrow.DataType{arrow.PrimitiveTypes.Uint8}},
	format.SourceUint16:  typedKernel[uint16]{types: []arrow.DataType{arrow.PrimitiveTypes.Uint16}},
	format.SourceUint32:  typedKernel[uint32]{types: []arrow.DataType{arrow.PrimitiveTypes.Uint32}},
	format.SourceUint64:  typedKernel[uint64]{types: []arrow.DataType{arrow.PrimitiveTypes.Uint64}},
	format.SourceFloat32: typedKernel[float32]{types: []arrow.DataType{arrow.PrimitiveTypes.Float32}},
	format.SourceFloat64: typedKernel[float64]{types: []arrow.DataType{arrow.PrimitiveTypes.Float64}},
	format.SourceBool:    typedKernel[bool]{types: []arrow.DataType{arrow.FixedWidthTypes.Boolean}},
	format.SourceString: typedKernel[string]{
		types: []arrow.DataType{arrow.BinaryTypes.String, arrow.BinaryTypes.LargeString},
		// Arrow string values alias the array buffers, which the fitted table outlives.
		clone: strings.Clone,
	},
}

// ArrowType returns the Arrow type of a source type.
func ArrowType(st format.SourceType) (arrow.DataType, error) {
	k, err := kernelFor(st)
	if err != nil {
		return nil, err
	}

	return k.dataType(), nil
}

func kernelFor(st format.SourceType) (kernel, error) {
	k, ok := kernels[st]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedSourceType, st)
	}

	return k, nil
}

type typedKernel[T category.Value] struct {
	types []arrow.DataType
	clone func(T) T
}

func (k typedKernel[T]) dataType() arrow.DataType {
	return k.types[0]
}

func (k typedKernel[T]) accepts(dt arrow.DataType) bool {
	for _, t := range k.types {
		if arrow.TypeEqual(t, dt) {
			return true
		}
	}

	return false
}

func (k typedKernel[T]) fit(ctx context.Context, col column.Column, chunks []arrow.Array) (int, error) {
	tc, ok := col.(*column.Typed[T])
	if !ok {
		return 0, fmt.Errorf("%w: column %q is not %T", errs.ErrSourceTypeMismatch, col.Binding().Name, tc)
	}

	src := &chunkSource[T]{ctx: ctx, chunks: chunks, clone: k.clone}
	if err := tc.FitSource(src); err != nil {
		return src.rows, err
	}

	return src.rows, nil
}

func (k typedKernel[T]) encode(col column.Column, arr arrow.Array, out *array.Int64Builder) (int, error) {
	tc, ok := col.(*column.Typed[T])
	if !ok {
		return 0, fmt.Errorf("%w: column %q is not %T", errs.ErrSourceTypeMismatch, col.Binding().Name, tc)
	}

	enc, err := tc.Encoder()
	if err != nil {
		return 0, err
	}

	values, ok := arr.(valuer[T])
	if !ok {
		return 0, fmt.Errorf("%w: column %q cannot read %s", errs.ErrSourceTypeMismatch, col.Binding().Name, arr.DataType())
	}

	out.Reserve(values.Len())
	unseen := 0
	for i := range values.Len() {
		if values.IsNull(i) {
			out.AppendNull()
			continue
		}

		idx, known := enc.EncodeKnown(values.Value(i))
		if !known {
			unseen++
		}
		out.Append(int64(idx))
	}

	return unseen, nil
}

// chunkSource streams the non-null values of a chunked column. The context is checked
// between chunks.
type chunkSource[T category.Value] struct {
	ctx    context.Context
	chunks []arrow.Array
	clone  func(T) T
	next   int
	cur    valuer[T]
	pos    int
	rows   int
}

var _ category.Source[string] = (*chunkSource[string])(nil)

func (s *chunkSource[T]) Next() (T, error) {
	var zero T

	for {
		if s.cur != nil && s.pos < s.cur.Len() {
			i := s.pos
			s.pos++
			if s.cur.IsNull(i) {
				continue
			}

			s.rows++
			v := s.cur.Value(i)
			if s.clone != nil {
				v = s.clone(v)
			}

			return v, nil
		}

		if s.next >= len(s.chunks) {
			return zero, io.EOF
		}
		if err := s.ctx.Err(); err != nil {
			return zero, err
		}

		cur, ok := s.chunks[s.next].(valuer[T])
		if !ok {
			return zero, fmt.Errorf("%w: chunk %d has type %s", errs.ErrSourceTypeMismatch, s.next, s.chunks[s.next].DataType())
		}

		s.cur = cur
		s.pos = 0
		s.next++
	}
}
