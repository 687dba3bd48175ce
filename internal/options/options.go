// Package options holds the functional option plumbing used by the category, blob,
// column and pipeline packages.
//
// Each package declares its own Option alias over a settings pointer and builds its
// With* constructors with New or NoError.
package options

// Option mutates a settings value of type T. Implementations live in this package
// only, so every option is built through New or NoError.
type Option[T any] interface {
	apply(T) error
}

// Func is an option backed by a plain function.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps a validating setter. Returning an error aborts Apply.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError wraps a setter that accepts every input.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs opts against target in order. The first failing option stops the run
// and its error is returned unchanged. Nil entries are ignored, so callers can pass
// conditionally built slices.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
