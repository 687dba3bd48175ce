package pipeline

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/arloliu/catenc/column"
	"github.com/arloliu/catenc/errs"
)

// Transformer appends the category index columns of fitted encoders to Arrow records.
// It is safe for concurrent use.
type Transformer struct {
	columns  []column.Column
	settings *Settings
}

func newTransformer(cols []column.Column, settings *Settings) *Transformer {
	return &Transformer{columns: cols, settings: settings}
}

// Bindings returns the column bindings in output order.
func (t *Transformer) Bindings() []column.Binding {
	out := make([]column.Binding, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Binding()
	}

	return out
}

// Column returns the fitted column with output name name.
func (t *Transformer) Column(name string) (column.Column, bool) {
	for _, c := range t.columns {
		if c.Binding().Name == name {
			return c, true
		}
	}

	return nil, false
}

// OutputSchema returns the schema of records produced from records with schema in:
// the input fields followed by one nullable int64 field per binding.
//
// Every source must be present with a matching type, and no output name may clash
// with an input field.
func (t *Transformer) OutputSchema(in *arrow.Schema) (*arrow.Schema, error) {
	_, schema, err := t.plan(in)
	return schema, err
}

// plan resolves the source field index of every column and builds the output schema.
func (t *Transformer) plan(in *arrow.Schema) ([]int, *arrow.Schema, error) {
	if in == nil {
		return nil, nil, fmt.Errorf("%w: nil schema", errs.ErrInvalidOption)
	}

	fields := make([]arrow.Field, 0, in.NumFields()+len(t.columns))
	fields = append(fields, in.Fields()...)
	indices := make([]int, len(t.columns))

	for i, c := range t.columns {
		b := c.Binding()
		if in.HasField(b.Name) {
			return nil, nil, fmt.Errorf("%w: output %q already exists in input", errs.ErrDuplicateColumn, b.Name)
		}

		idx, err := fieldIndex(in, b)
		if err != nil {
			return nil, nil, err
		}

		k, err := kernelFor(b.Type)
		if err != nil {
			return nil, nil, err
		}
		if dt := in.Field(idx).Type; !k.accepts(dt) {
			return nil, nil, fmt.Errorf("%w: column %q declares %s, source %q is %s",
				errs.ErrSourceTypeMismatch, b.Name, b.Type, b.SourceName(), dt)
		}

		indices[i] = idx
		fields = append(fields, arrow.Field{Name: b.Name, Type: arrow.PrimitiveTypes.Int64, Nullable: true})
	}

	md := in.Metadata()

	return indices, arrow.NewSchema(fields, &md), nil
}

// Transform returns a new record holding the columns of rec followed by the encoded
// index columns. Null inputs produce null indexes. The caller must release the
// returned record.
func (t *Transformer) Transform(rec arrow.Record) (arrow.Record, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", errs.ErrInvalidOption)
	}

	indices, schema, err := t.plan(rec.Schema())
	if err != nil {
		return nil, err
	}

	cols := make([]arrow.Array, 0, schema.NumFields())
	cols = append(cols, rec.Columns()...)

	built := make([]arrow.Array, 0, len(t.columns))
	defer func() {
		for _, arr := range built {
			arr.Release()
		}
	}()

	for i, c := range t.columns {
		arr, err := t.encodeColumn(c, rec.Column(indices[i]))
		if err != nil {
			return nil, err
		}

		built = append(built, arr)
		cols = append(cols, arr)
	}

	return array.NewRecord(schema, cols, rec.NumRows()), nil
}

func (t *Transformer) encodeColumn(c column.Column, arr arrow.Array) (arrow.Array, error) {
	b := c.Binding()

	k, err := kernelFor(b.Type)
	if err != nil {
		return nil, err
	}

	builder := array.NewInt64Builder(t.settings.alloc)
	defer builder.Release()

	unseen, err := k.encode(c, arr, builder)
	if err != nil {
		return nil, err
	}

	t.settings.metrics.Encoded(b.Name, arr.Len()-arr.NullN(), unseen)

	return builder.NewArray(), nil
}
