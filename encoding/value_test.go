package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

func roundTrip[T comparable](t *testing.T, want format.SourceType, values []T) {
	t.Helper()

	codec, err := CodecFor[T]()
	require.NoError(t, err)
	require.Equal(t, want, codec.SourceType())

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		var buf []byte
		for _, v := range values {
			buf = codec.Append(buf, v, engine)
		}

		offset := 0
		for i, v := range values {
			got, n, err := codec.Read(buf[offset:], engine)
			require.NoError(t, err)
			require.Equal(t, v, got, "value %d", i)
			offset += n
		}
		require.Equal(t, len(buf), offset)
	}
}

func TestCodecFor_RoundTrip(t *testing.T) {
	t.Run("int8", func(t *testing.T) { roundTrip(t, format.SourceInt8, []int8{0, -1, math.MinInt8, math.MaxInt8}) })
	t.Run("int16", func(t *testing.T) { roundTrip(t, format.SourceInt16, []int16{0, -1, math.MinInt16, math.MaxInt16}) })
	t.Run("int32", func(t *testing.T) { roundTrip(t, format.SourceInt32, []int32{0, -1, math.MinInt32, math.MaxInt32}) })
	t.Run("int64", func(t *testing.T) { roundTrip(t, format.SourceInt64, []int64{0, -1, math.MinInt64, math.MaxInt64}) })
	t.Run("uint8", func(t *testing.T) { roundTrip(t, format.SourceUint8, []uint8{0, 1, math.MaxUint8}) })
	t.Run("uint16", func(t *testing.T) { roundTrip(t, format.SourceUint16, []uint16{0, 1, math.MaxUint16}) })
	t.Run("uint32", func(t *testing.T) { roundTrip(t, format.SourceUint32, []uint32{0, 1, math.MaxUint32}) })
	t.Run("uint64", func(t *testing.T) { roundTrip(t, format.SourceUint64, []uint64{0, 1, math.MaxUint64}) })
	t.Run("float32", func(t *testing.T) {
		roundTrip(t, format.SourceFloat32, []float32{0, 1.5, -2.25, math.MaxFloat32, float32(math.Inf(-1))})
	})
	t.Run("float64", func(t *testing.T) {
		roundTrip(t, format.SourceFloat64, []float64{0, 1.5, -2.25, math.SmallestNonzeroFloat64, math.Inf(1)})
	})
	t.Run("bool", func(t *testing.T) { roundTrip(t, format.SourceBool, []bool{true, false, true}) })
	t.Run("string", func(t *testing.T) {
		roundTrip(t, format.SourceString, []string{"", "red", "a\x00b", "日本語", string(make([]byte, 300))})
	})
}

func TestCodecFor_Unsupported(t *testing.T) {
	_, err := CodecFor[int]()
	require.ErrorIs(t, err, errs.ErrUnsupportedSourceType)

	_, err = CodecFor[complex128]()
	require.ErrorIs(t, err, errs.ErrUnsupportedSourceType)

	_, err = SourceTypeOf[[]byte]()
	require.ErrorIs(t, err, errs.ErrUnsupportedSourceType)
}

func TestSourceTypeOf(t *testing.T) {
	st, err := SourceTypeOf[float32]()
	require.NoError(t, err)
	require.Equal(t, format.SourceFloat32, st)

	st, err = SourceTypeOf[string]()
	require.NoError(t, err)
	require.Equal(t, format.SourceString, st)
}

func TestFixedCodec_ByteOrder(t *testing.T) {
	codec, err := CodecFor[uint32]()
	require.NoError(t, err)

	le := codec.Append(nil, 0x01020304, endian.GetLittleEndianEngine())
	be := codec.Append(nil, 0x01020304, endian.GetBigEndianEngine())

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, le)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, be)
}

func TestFloatCodec_PreservesBits(t *testing.T) {
	codec, err := CodecFor[float64]()
	require.NoError(t, err)
	engine := endian.GetLittleEndianEngine()

	nan := math.Float64frombits(0x7ff8000000000123)
	negZero := math.Copysign(0, -1)

	for _, v := range []float64{nan, negZero} {
		buf := codec.Append(nil, v, engine)
		got, _, err := codec.Read(buf, engine)
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(v), math.Float64bits(got))
	}
}

func TestFixedCodec_Read_Truncated(t *testing.T) {
	codec, err := CodecFor[int64]()
	require.NoError(t, err)

	_, _, err = codec.Read([]byte{1, 2, 3}, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestBoolCodec_Read(t *testing.T) {
	codec, err := CodecFor[bool]()
	require.NoError(t, err)
	engine := endian.GetLittleEndianEngine()

	_, _, err = codec.Read(nil, engine)
	require.ErrorIs(t, err, errs.ErrTruncated)

	_, _, err = codec.Read([]byte{2}, engine)
	require.ErrorIs(t, err, errs.ErrMalformed)

	v, n, err := codec.Read([]byte{1, 0}, engine)
	require.NoError(t, err)
	require.True(t, v)
	require.Equal(t, 1, n)
}
