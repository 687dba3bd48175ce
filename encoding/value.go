package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// ValueCodec writes and reads single category values of type T.
//
// Implementations are stateless and safe for concurrent use.
type ValueCodec[T any] interface {
	// SourceType returns the type tag stored in the blob header.
	SourceType() format.SourceType
	// MinSize returns the smallest number of bytes one encoded value can occupy.
	MinSize() int
	// Append appends the encoding of v to dst and returns the extended slice.
	Append(dst []byte, v T, engine endian.EndianEngine) []byte
	// Read decodes one value from the start of src and returns it with the number of
	// bytes consumed.
	Read(src []byte, engine endian.EndianEngine) (T, int, error)
}

// fixedCodec encodes values that always occupy size bytes.
type fixedCodec[T any] struct {
	st   format.SourceType
	size int
	put  func(dst []byte, v T, engine endian.EndianEngine) []byte
	get  func(src []byte, engine endian.EndianEngine) T
}

var _ ValueCodec[int64] = (*fixedCodec[int64])(nil)

func (c *fixedCodec[T]) SourceType() format.SourceType { return c.st }

func (c *fixedCodec[T]) MinSize() int { return c.size }

func (c *fixedCodec[T]) Append(dst []byte, v T, engine endian.EndianEngine) []byte {
	return c.put(dst, v, engine)
}

func (c *fixedCodec[T]) Read(src []byte, engine endian.EndianEngine) (T, int, error) {
	if len(src) < c.size {
		var zero T
		return zero, 0, fmt.Errorf("%w: %s value needs %d bytes, have %d", errs.ErrTruncated, c.st, c.size, len(src))
	}

	return c.get(src, engine), c.size, nil
}

type boolCodec struct{}

var _ ValueCodec[bool] = boolCodec{}

func (boolCodec) SourceType() format.SourceType { return format.SourceBool }

func (boolCodec) MinSize() int { return 1 }

func (boolCodec) Append(dst []byte, v bool, _ endian.EndianEngine) []byte {
	if v {
		return append(dst, 1)
	}

	return append(dst, 0)
}

func (boolCodec) Read(src []byte, _ endian.EndianEngine) (bool, int, error) {
	if len(src) < 1 {
		return false, 0, fmt.Errorf("%w: bool value", errs.ErrTruncated)
	}

	switch src[0] {
	case 0:
		return false, 1, nil
	case 1:
		return true, 1, nil
	default:
		return false, 0, fmt.Errorf("%w: invalid bool byte 0x%02x", errs.ErrMalformed, src[0])
	}
}

type stringCodec struct{}

var _ ValueCodec[string] = stringCodec{}

func (stringCodec) SourceType() format.SourceType { return format.SourceString }

// MinSize is the one-byte length prefix of an empty string.
func (stringCodec) MinSize() int { return 1 }

func (stringCodec) Append(dst []byte, v string, _ endian.EndianEngine) []byte {
	return AppendVarString(dst, v)
}

func (stringCodec) Read(src []byte, _ endian.EndianEngine) (string, int, error) {
	return ReadVarString(src)
}

var (
	int8Codec = &fixedCodec[int8]{
		st: format.SourceInt8, size: 1,
		put: func(dst []byte, v int8, _ endian.EndianEngine) []byte { return append(dst, byte(v)) },
		get: func(src []byte, _ endian.EndianEngine) int8 { return int8(src[0]) },
	}
	uint8Codec = &fixedCodec[uint8]{
		st: format.SourceUint8, size: 1,
		put: func(dst []byte, v uint8, _ endian.EndianEngine) []byte { return append(dst, v) },
		get: func(src []byte, _ endian.EndianEngine) uint8 { return src[0] },
	}
	int16Codec = &fixedCodec[int16]{
		st: format.SourceInt16, size: 2,
		put: func(dst []byte, v int16, e endian.EndianEngine) []byte { return e.AppendUint16(dst, uint16(v)) },
		get: func(src []byte, e endian.EndianEngine) int16 { return int16(e.Uint16(src)) },
	}
	uint16Codec = &fixedCodec[uint16]{
		st: format.SourceUint16, size: 2,
		put: func(dst []byte, v uint16, e endian.EndianEngine) []byte { return e.AppendUint16(dst, v) },
		get: func(src []byte, e endian.EndianEngine) uint16 { return e.Uint16(src) },
	}
	int32Codec = &fixedCodec[int32]{
		st: format.SourceInt32, size: 4,
		put: func(dst []byte, v int32, e endian.EndianEngine) []byte { return e.AppendUint32(dst, uint32(v)) },
		get: func(src []byte, e endian.EndianEngine) int32 { return int32(e.Uint32(src)) },
	}
	uint32Codec = &fixedCodec[uint32]{
		st: format.SourceUint32, size: 4,
		put: func(dst []byte, v uint32, e endian.EndianEngine) []byte { return e.AppendUint32(dst, v) },
		get: func(src []byte, e endian.EndianEngine) uint32 { return e.Uint32(src) },
	}
	int64Codec = &fixedCodec[int64]{
		st: format.SourceInt64, size: 8,
		put: func(dst []byte, v int64, e endian.EndianEngine) []byte { return e.AppendUint64(dst, uint64(v)) },
		get: func(src []byte, e endian.EndianEngine) int64 { return int64(e.Uint64(src)) },
	}
	uint64Codec = &fixedCodec[uint64]{
		st: format.SourceUint64, size: 8,
		put: func(dst []byte, v uint64, e endian.EndianEngine) []byte { return e.AppendUint64(dst, v) },
		get: func(src []byte, e endian.EndianEngine) uint64 { return e.Uint64(src) },
	}
	// Floats are stored as their IEEE-754 bits so NaN payloads and -0 survive.
	float32Codec = &fixedCodec[float32]{
		st: format.SourceFloat32, size: 4,
		put: func(dst []byte, v float32, e endian.EndianEngine) []byte {
			return e.AppendUint32(dst, math.Float32bits(v))
		},
		get: func(src []byte, e endian.EndianEngine) float32 { return math.Float32frombits(e.Uint32(src)) },
	}
	float64Codec = &fixedCodec[float64]{
		st: format.SourceFloat64, size: 8,
		put: func(dst []byte, v float64, e endian.EndianEngine) []byte {
			return e.AppendUint64(dst, math.Float64bits(v))
		},
		get: func(src []byte, e endian.EndianEngine) float64 { return math.Float64frombits(e.Uint64(src)) },
	}
)

// CodecFor returns the codec for the Go type T.
//
// Returns ErrUnsupportedSourceType when T is not one of the twelve supported value types.
func CodecFor[T any]() (ValueCodec[T], error) {
	var zero T

	var codec any
	switch any(zero).(type) {
	case int8:
		codec = int8Codec
	case int16:
		codec = int16Codec
	case int32:
		codec = int32Codec
	case int64:
		codec = int64Codec
	case uint8:
		codec = uint8Codec
	case uint16:
		codec = uint16Codec
	case uint32:
		codec = uint32Codec
	case uint64:
		codec = uint64Codec
	case float32:
		codec = float32Codec
	case float64:
		codec = float64Codec
	case bool:
		codec = boolCodec{}
	case string:
		codec = stringCodec{}
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedSourceType, zero)
	}

	return codec.(ValueCodec[T]), nil
}

// SourceTypeOf returns the source type tag for the Go type T.
func SourceTypeOf[T any]() (format.SourceType, error) {
	codec, err := CodecFor[T]()
	if err != nil {
		return 0, err
	}

	return codec.SourceType(), nil
}
