package category

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// SentinelIndex is the index returned for unseen values under format.UnseenSentinel.
const SentinelIndex = -1

// Encoder maps values to the category indexes of a fitted Table.
//
// Encoders never mutate their table and are safe for concurrent use.
type Encoder[T Value] struct {
	table  *Table[T]
	policy format.UnseenPolicy
	unseen int
}

// NewEncoder creates an encoder over table.
//
// Parameters:
//   - table: A finalized category table
//   - opts: WithUnseenPolicy applies here; the default is format.UnseenReserved
//
// Returns:
//   - *Encoder[T]: The encoder
//   - error: ErrInvalidState for a nil table, ErrInvalidOption for a bad policy
func NewEncoder[T Value](table *Table[T], opts ...Option) (*Encoder[T], error) {
	if table == nil {
		return nil, fmt.Errorf("%w: encoder needs a fitted table", errs.ErrInvalidState)
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newEncoder(table, cfg.policy), nil
}

func newEncoder[T Value](table *Table[T], policy format.UnseenPolicy) *Encoder[T] {
	e := &Encoder[T]{table: table, policy: policy}

	switch policy {
	case format.UnseenSentinel:
		e.unseen = SentinelIndex
	case format.UnseenZero:
		e.unseen = 0
	default:
		e.policy = format.UnseenReserved
		e.unseen = table.Len()
	}

	return e
}

// Encode returns the index of v, or the unseen index if v is not a category.
func (e *Encoder[T]) Encode(v T) int {
	if idx, ok := e.table.Lookup(v); ok {
		return idx
	}

	return e.unseen
}

// EncodeKnown returns the index of v and whether v is a known category.
// For unseen values it returns the unseen index and false.
func (e *Encoder[T]) EncodeKnown(v T) (int, bool) {
	if idx, ok := e.table.Lookup(v); ok {
		return idx, true
	}

	return e.unseen, false
}

// EncodeSlice appends the index of every value in src to dst and returns the
// extended slice.
func (e *Encoder[T]) EncodeSlice(dst []int, src []T) []int {
	dst = growInts(dst, len(src))
	for _, v := range src {
		dst = append(dst, e.Encode(v))
	}

	return dst
}

// Width returns the number of distinct output indexes.
//
// Under UnseenReserved it is Len()+1. Under UnseenSentinel it is Len(), and -1 falls
// outside the range. Under UnseenZero it is Len(), but at least 1 so an empty table
// still has room for index 0.
func (e *Encoder[T]) Width() int {
	switch e.policy {
	case format.UnseenReserved:
		return e.table.Len() + 1
	case format.UnseenZero:
		return max(e.table.Len(), 1)
	default:
		return e.table.Len()
	}
}

// OneHot returns a dense one-hot row of Width() elements for v.
// Under UnseenSentinel an unseen value yields an all-zero row.
func (e *Encoder[T]) OneHot(v T) []float64 {
	return e.AppendOneHot(nil, v)
}

// AppendOneHot appends the one-hot row for v to dst and returns the extended slice.
func (e *Encoder[T]) AppendOneHot(dst []float64, v T) []float64 {
	width := e.Width()
	start := len(dst)
	dst = append(dst, make([]float64, width)...)

	if idx := e.Encode(v); idx >= 0 && idx < width {
		dst[start+idx] = 1
	}

	return dst
}

// Table returns the underlying table.
func (e *Encoder[T]) Table() *Table[T] {
	return e.table
}

// Policy returns the unseen-value policy.
func (e *Encoder[T]) Policy() format.UnseenPolicy {
	return e.policy
}

// UnseenIndex returns the index assigned to unseen values.
func (e *Encoder[T]) UnseenIndex() int {
	return e.unseen
}

// Len returns the number of categories.
func (e *Encoder[T]) Len() int {
	return e.table.Len()
}

func growInts(s []int, n int) []int {
	if cap(s)-len(s) >= n {
		return s
	}

	grown := make([]int, len(s), len(s)+n)
	copy(grown, s)

	return grown
}
