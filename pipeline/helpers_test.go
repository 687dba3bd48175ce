package pipeline

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
)

var testSchema = arrow.NewSchema([]arrow.Field{
	{Name: "color", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "size", Type: arrow.PrimitiveTypes.Int32},
}, nil)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Columns = []ColumnConfig{
		{Name: "color_idx", Source: "color", Type: "string"},
		{Name: "size_idx", Source: "size", Type: "int32"},
	}

	return cfg
}

// newRecord builds a record of testSchema. An empty color is stored as null.
func newRecord(t *testing.T, mem memory.Allocator, colors []string, sizes []int32) arrow.Record {
	t.Helper()
	require.Len(t, sizes, len(colors))

	valid := make([]bool, len(colors))
	for i, c := range colors {
		valid[i] = c != ""
	}

	b := array.NewRecordBuilder(mem, testSchema)
	defer b.Release()

	b.Field(0).(*array.StringBuilder).AppendValues(colors, valid)
	b.Field(1).(*array.Int32Builder).AppendValues(sizes, nil)

	return b.NewRecord()
}

// newTable builds a table with one chunk per record.
func newTable(t *testing.T, recs ...arrow.Record) arrow.Table {
	t.Helper()

	tbl := array.NewTableFromRecords(testSchema, recs)
	for _, rec := range recs {
		rec.Release()
	}
	t.Cleanup(tbl.Release)

	return tbl
}

// indexes returns the values of an int64 column, with -2 for nulls.
func indexes(t *testing.T, arr arrow.Array) []int64 {
	t.Helper()

	ints, ok := arr.(*array.Int64)
	require.True(t, ok, "got %T", arr)

	out := make([]int64, ints.Len())
	for i := range out {
		if ints.IsNull(i) {
			out[i] = -2
			continue
		}
		out[i] = ints.Value(i)
	}

	return out
}

// fitTestTable fits testConfig on the red/blue/green table.
func fitTestTable(t *testing.T, cfg *Config, opts ...Option) *Transformer {
	t.Helper()

	mem := memory.NewGoAllocator()
	tbl := newTable(t,
		newRecord(t, mem, []string{"red", "blue", "", "red"}, []int32{3, 1, 3, 2}),
		newRecord(t, mem, []string{"green", "blue"}, []int32{1, 4}),
	)

	est, err := NewEstimator(cfg, opts...)
	require.NoError(t, err)

	tr, err := est.Fit(t.Context(), tbl)
	require.NoError(t, err)

	return tr
}
