package category

import (
	"io"
	"iter"
)

// Source is a forward-only stream of column values.
//
// Next returns the next value, or io.EOF once the stream is exhausted. Any other
// error aborts the fit.
type Source[T Value] interface {
	Next() (T, error)
}

// SliceSource reads values from a slice.
type SliceSource[T Value] struct {
	values []T
	pos    int
}

var _ Source[string] = (*SliceSource[string])(nil)

// NewSliceSource returns a Source over values. The slice is not copied.
func NewSliceSource[T Value](values []T) *SliceSource[T] {
	return &SliceSource[T]{values: values}
}

// Next returns the next value or io.EOF.
func (s *SliceSource[T]) Next() (T, error) {
	if s.pos >= len(s.values) {
		var zero T
		return zero, io.EOF
	}

	v := s.values[s.pos]
	s.pos++

	return v, nil
}

// SeqSource adapts an iterator to a Source. Close must be called to release the
// iterator if the stream is not read to the end.
type SeqSource[T Value] struct {
	next func() (T, bool)
	stop func()
}

var _ Source[string] = (*SeqSource[string])(nil)

// NewSeqSource returns a Source pulling from seq.
func NewSeqSource[T Value](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

// Next returns the next value or io.EOF.
func (s *SeqSource[T]) Next() (T, error) {
	v, ok := s.next()
	if !ok {
		var zero T
		return zero, io.EOF
	}

	return v, nil
}

// Close stops the underlying iterator. It is safe to call more than once.
func (s *SeqSource[T]) Close() error {
	s.stop()
	return nil
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T Value] func() (T, error)

// Next calls f.
func (f SourceFunc[T]) Next() (T, error) {
	return f()
}
