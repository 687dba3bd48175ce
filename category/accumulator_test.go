package category

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
)

func TestAccumulator_FirstSeenOrder(t *testing.T) {
	acc, err := NewAccumulator[string]()
	require.NoError(t, err)
	defer acc.Release()

	for _, v := range []string{"b", "a", "b", "c"} {
		require.Equal(t, StatusContinue, acc.Ingest(v))
	}
	require.Equal(t, 3, acc.Len())

	status, err := acc.Finalize()
	require.NoError(t, err)
	require.Equal(t, StatusComplete, status)

	table, err := acc.Table()
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "c"}, table.Values())
}

func TestAccumulator_EmptyInput(t *testing.T) {
	acc, err := NewAccumulator[int64]()
	require.NoError(t, err)
	defer acc.Release()

	status, err := acc.Finalize()
	require.NoError(t, err)
	require.Equal(t, StatusComplete, status)

	table, err := acc.Table()
	require.NoError(t, err)
	require.Equal(t, 0, table.Len())
}

func TestAccumulator_MaxCategories(t *testing.T) {
	acc, err := NewAccumulator[int32](WithMaxCategories(2))
	require.NoError(t, err)
	defer acc.Release()

	require.Equal(t, StatusContinue, acc.Ingest(10))
	require.Equal(t, StatusContinue, acc.Ingest(10))
	require.False(t, acc.Capped())
	require.Equal(t, StatusComplete, acc.Ingest(20))
	require.True(t, acc.Capped())

	// no-ops once complete
	require.Equal(t, StatusComplete, acc.Ingest(30))
	require.Equal(t, StatusComplete, acc.Ingest(10))
	require.Equal(t, 2, acc.Len())

	status, err := acc.Finalize()
	require.NoError(t, err)
	require.Equal(t, StatusComplete, status)

	table, err := acc.Table()
	require.NoError(t, err)
	require.False(t, table.Contains(30))
}

func TestAccumulator_MinCategories(t *testing.T) {
	acc, err := NewAccumulator[string](WithMinCategories(2))
	require.NoError(t, err)
	defer acc.Release()

	acc.Ingest("only")

	status, err := acc.Finalize()
	require.Equal(t, StatusError, status)
	require.ErrorIs(t, err, errs.ErrFitFailure)

	_, err = acc.Table()
	require.ErrorIs(t, err, errs.ErrInvalidState)

	// repeated Finalize reports the same failure
	status, err = acc.Finalize()
	require.Equal(t, StatusError, status)
	require.ErrorIs(t, err, errs.ErrFitFailure)
}

func TestAccumulator_StateErrors(t *testing.T) {
	t.Run("table before finalize", func(t *testing.T) {
		acc, err := NewAccumulator[bool]()
		require.NoError(t, err)
		defer acc.Release()

		acc.Ingest(true)
		_, err = acc.Table()
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("ingest after finalize", func(t *testing.T) {
		acc, err := NewAccumulator[bool]()
		require.NoError(t, err)
		defer acc.Release()

		acc.Ingest(true)
		_, err = acc.Finalize()
		require.NoError(t, err)

		require.Equal(t, StatusError, acc.Ingest(false))
		require.ErrorIs(t, acc.Err(), errs.ErrInvalidState)
		require.ErrorContains(t, acc.Err(), "ingest after finalize")

		// the finalized table is unaffected
		table, err := acc.Table()
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
	})

	t.Run("finalize after release", func(t *testing.T) {
		acc, err := NewAccumulator[uint16]()
		require.NoError(t, err)

		acc.Release()
		acc.Release() // idempotent

		status, err := acc.Finalize()
		require.Equal(t, StatusError, status)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		require.Equal(t, StatusError, acc.Ingest(1))
		require.Equal(t, 0, acc.Len())
	})

	t.Run("ingest after failed finalize keeps cause", func(t *testing.T) {
		acc, err := NewAccumulator[string](WithMinCategories(2))
		require.NoError(t, err)
		defer acc.Release()

		acc.Ingest("only")
		_, first := acc.Finalize()
		require.ErrorIs(t, first, errs.ErrFitFailure)
		require.ErrorContains(t, first, "found 1 categories, need at least 2")

		require.Equal(t, StatusError, acc.Ingest("late"))
		require.NotErrorIs(t, acc.Err(), errs.ErrInvalidState)

		status, second := acc.Finalize()
		require.Equal(t, StatusError, status)
		require.Equal(t, first.Error(), second.Error())
	})

	t.Run("ingest after release", func(t *testing.T) {
		acc, err := NewAccumulator[int8]()
		require.NoError(t, err)

		acc.Release()
		require.Equal(t, StatusError, acc.Ingest(1))
		require.ErrorIs(t, acc.Err(), errs.ErrInvalidState)
		require.ErrorContains(t, acc.Err(), "ingest after release")
	})

	t.Run("table survives release", func(t *testing.T) {
		acc, err := NewAccumulator[uint16]()
		require.NoError(t, err)

		acc.Ingest(5)
		_, err = acc.Finalize()
		require.NoError(t, err)
		table, err := acc.Table()
		require.NoError(t, err)

		acc.Release()
		require.Equal(t, 1, table.Len())

		_, err = acc.Table()
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestNewAccumulator_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "zero max", opts: []Option{WithMaxCategories(0)}},
		{name: "max too large", opts: []Option{WithMaxCategories(MaxCategories + 1)}},
		{name: "negative min", opts: []Option{WithMinCategories(-1)}},
		{name: "negative capacity", opts: []Option{WithCapacityHint(-1)}},
		{name: "min above max", opts: []Option{WithMaxCategories(2), WithMinCategories(3)}},
		{name: "bad policy", opts: []Option{WithUnseenPolicy(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccumulator[string](tt.opts...)
			require.ErrorIs(t, err, errs.ErrInvalidOption)
		})
	}
}

func TestAccumulator_CapacityHint(t *testing.T) {
	acc, err := NewAccumulator[int8](WithCapacityHint(1000), WithMaxCategories(4))
	require.NoError(t, err)
	defer acc.Release()

	for i := int8(0); i < 10; i++ {
		acc.Ingest(i)
	}
	require.Equal(t, 4, acc.Len())
	require.Equal(t, StatusComplete, acc.Status())
}

func TestStatus_String(t *testing.T) {
	require.Equal(t, "Continue", StatusContinue.String())
	require.Equal(t, "Complete", StatusComplete.String())
	require.Equal(t, "Error", StatusError.String())
	require.Equal(t, "Unknown", Status(42).String())
}
