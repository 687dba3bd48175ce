package category

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/format"
)

func TestNewTable(t *testing.T) {
	table, err := NewTable([]string{"b", "a", "c"})
	require.NoError(t, err)

	require.Equal(t, 3, table.Len())
	require.Equal(t, format.SourceString, table.SourceType())
	require.Equal(t, []string{"b", "a", "c"}, table.Values())

	for i, want := range []string{"b", "a", "c"} {
		idx, ok := table.Lookup(want)
		require.True(t, ok)
		require.Equal(t, i, idx)
		require.Equal(t, want, table.At(i))
	}

	_, ok := table.Lookup("d")
	require.False(t, ok)
	require.False(t, table.Contains("B"), "lookup is case-sensitive")
}

func TestNewTable_Duplicates(t *testing.T) {
	table, err := NewTable([]int32{7, 9, 7})
	require.NoError(t, err)

	// Entries are kept verbatim, lookups resolve to the first index.
	require.Equal(t, 3, table.Len())
	require.Equal(t, []int32{7, 9, 7}, table.Values())

	idx, ok := table.Lookup(7)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestTable_Values_IsCopy(t *testing.T) {
	table, err := NewTable([]uint8{1, 2})
	require.NoError(t, err)

	values := table.Values()
	values[0] = 99

	require.Equal(t, uint8(1), table.At(0))
}

func TestTable_All(t *testing.T) {
	table, err := NewTable([]bool{true, false})
	require.NoError(t, err)

	var got []bool
	for i, v := range table.All() {
		require.Equal(t, len(got), i)
		got = append(got, v)
	}
	require.Equal(t, []bool{true, false}, got)

	// early break
	count := 0
	for range table.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestTable_FloatEquality(t *testing.T) {
	negZero := math.Copysign(0, -1)
	nanA := math.Float64frombits(0x7ff8000000000001)
	nanB := math.Float64frombits(0x7ff8000000000002)

	t.Run("signed zeros share a category", func(t *testing.T) {
		acc, err := NewAccumulator[float64]()
		require.NoError(t, err)
		acc.Ingest(0)
		acc.Ingest(negZero)
		require.Equal(t, 1, acc.Len())
	})

	t.Run("NaN matched by bit pattern", func(t *testing.T) {
		acc, err := NewAccumulator[float64]()
		require.NoError(t, err)
		acc.Ingest(nanA)
		acc.Ingest(nanA)
		acc.Ingest(nanB)
		acc.Ingest(1.5)
		require.Equal(t, 3, acc.Len())

		_, err = acc.Finalize()
		require.NoError(t, err)
		table, err := acc.Table()
		require.NoError(t, err)

		idx, ok := table.Lookup(nanA)
		require.True(t, ok)
		require.Equal(t, 0, idx)

		idx, ok = table.Lookup(nanB)
		require.True(t, ok)
		require.Equal(t, 1, idx)

		_, ok = table.Lookup(math.Float64frombits(0x7ff8000000000003))
		require.False(t, ok)
	})

	t.Run("float32 NaN", func(t *testing.T) {
		nan32 := float32(math.NaN())
		table, err := NewTable([]float32{nan32, 2})
		require.NoError(t, err)

		idx, ok := table.Lookup(nan32)
		require.True(t, ok)
		require.Equal(t, 0, idx)
	})
}

func TestTable_Equal(t *testing.T) {
	a, err := NewTable([]float64{1, math.NaN(), 0})
	require.NoError(t, err)
	b, err := NewTable([]float64{1, math.NaN(), 0})
	require.NoError(t, err)
	c, err := NewTable([]float64{1, math.NaN(), math.Copysign(0, -1)})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c), "bit-exact comparison distinguishes -0")
	require.False(t, a.Equal(nil))

	var nilTable *Table[float64]
	require.True(t, nilTable.Equal(nil))
}

func TestTable_String(t *testing.T) {
	table, err := NewTable([]int64{1, 2})
	require.NoError(t, err)
	require.Equal(t, "Table[int64](2 categories)", table.String())
}
