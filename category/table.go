package category

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// Table is an immutable mapping from category values to dense indexes.
//
// Index i holds the i-th distinct value observed during the fit, so indexes are
// 0..Len()-1 with no gaps. A Table is safe for concurrent use.
type Table[T Value] struct {
	values     []T
	index      map[T]int
	nans       map[uint64]int // NaN categories keyed by bit pattern
	sourceType format.SourceType
}

func newTable[T Value](sourceType format.SourceType, capacity int) *Table[T] {
	return &Table[T]{
		values:     make([]T, 0, capacity),
		index:      make(map[T]int, capacity),
		sourceType: sourceType,
	}
}

// NewTable builds a table whose index i holds values[i].
//
// The slice is copied. If values contains duplicates they are kept, so Len and At
// reproduce the input exactly, but Lookup resolves a duplicated value to its first
// index. This mirrors how a blob with repeated entries is loaded.
//
// Returns ErrTooManyCategories if values holds more than MaxCategories entries and
// ErrUnsupportedSourceType if T has no source type.
func NewTable[T Value](values []T) (*Table[T], error) {
	st, err := sourceTypeOf[T]()
	if err != nil {
		return nil, err
	}

	if len(values) > MaxCategories {
		return nil, fmt.Errorf("%w: %d values, max %d", errs.ErrTooManyCategories, len(values), MaxCategories)
	}

	t := newTable[T](st, len(values))
	for _, v := range values {
		t.appendValue(v)
	}

	return t, nil
}

// appendValue appends v at the next index. A value already present keeps its
// original index for lookups.
func (t *Table[T]) appendValue(v T) int {
	idx := len(t.values)
	t.values = append(t.values, v)

	if bits, ok := nanBits(v); ok {
		if t.nans == nil {
			t.nans = make(map[uint64]int)
		}
		if _, exists := t.nans[bits]; !exists {
			t.nans[bits] = idx
		}

		return idx
	}

	if _, exists := t.index[v]; !exists {
		t.index[v] = idx
	}

	return idx
}

// Len returns the number of categories.
func (t *Table[T]) Len() int {
	return len(t.values)
}

// Lookup returns the index of v and whether v is a known category.
func (t *Table[T]) Lookup(v T) (int, bool) {
	if idx, ok := t.index[v]; ok {
		return idx, true
	}

	if bits, ok := nanBits(v); ok {
		idx, found := t.nans[bits]
		return idx, found
	}

	return 0, false
}

// Contains reports whether v is a known category.
func (t *Table[T]) Contains(v T) bool {
	_, ok := t.Lookup(v)
	return ok
}

// At returns the category at index i. It panics if i is out of range.
func (t *Table[T]) At(i int) T {
	return t.values[i]
}

// Values returns a copy of the categories in index order.
func (t *Table[T]) Values() []T {
	return slices.Clone(t.values)
}

// All returns an iterator over (index, value) pairs in index order.
func (t *Table[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range t.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// SourceType returns the source type of the category values.
func (t *Table[T]) SourceType() format.SourceType {
	return t.sourceType
}

// Equal reports whether t and other hold the same values in the same order.
// Floats are compared by bit pattern.
func (t *Table[T]) Equal(other *Table[T]) bool {
	if t == nil || other == nil {
		return t == other
	}

	return slices.EqualFunc(t.values, other.values, sameValue[T])
}

func (t *Table[T]) String() string {
	return fmt.Sprintf("Table[%s](%d categories)", t.sourceType, len(t.values))
}
