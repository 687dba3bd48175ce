package category

import "math"

// Value is the set of Go types a category column can hold.
type Value interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		bool | string
}

// MaxCategories is the largest number of categories a table can hold.
// Indexes must fit in an int32 on every supported host.
const MaxCategories = math.MaxInt32

// nanBits returns the bit pattern of v if v is a float NaN.
func nanBits[T Value](v T) (uint64, bool) {
	if v == v { //nolint:staticcheck // NaN check
		return 0, false
	}

	switch x := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(x)), true
	case float64:
		return math.Float64bits(x), true
	default:
		return 0, false
	}
}

// sameValue reports whether a and b are the same stored value. Floats compare by bits,
// so -0 differs from +0 and NaNs compare by payload.
func sameValue[T Value](a, b T) bool {
	switch x := any(a).(type) {
	case float32:
		return math.Float32bits(x) == math.Float32bits(any(b).(float32))
	case float64:
		return math.Float64bits(x) == math.Float64bits(any(b).(float64))
	default:
		return a == b
	}
}
