package blob

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/hash"
	"github.com/arloliu/catenc/section"
)

func roundTripTable[T category.Value](t *testing.T, values []T, opts ...EncoderOption) {
	t.Helper()

	table, err := category.NewTable(values)
	require.NoError(t, err)

	data, err := MarshalTable(table, opts...)
	require.NoError(t, err)

	decoded, err := UnmarshalTable[T](data)
	require.NoError(t, err)
	require.True(t, table.Equal(decoded), "decoded table differs")
	require.Equal(t, table.Len(), decoded.Len())

	for i, v := range table.All() {
		idx, ok := decoded.Lookup(v)
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
}

func TestMarshalTable_RoundTrip_AllTypes(t *testing.T) {
	optionSets := map[string][]EncoderOption{
		"default":    nil,
		"big endian": {WithBigEndian()},
		"zstd":       {WithCompression(format.CompressionZstd)},
		"s2":         {WithCompression(format.CompressionS2), WithBigEndian()},
		"lz4":        {WithCompression(format.CompressionLZ4)},
	}

	for name, opts := range optionSets {
		t.Run(name, func(t *testing.T) {
			roundTripTable(t, []int8{3, -1, math.MinInt8}, opts...)
			roundTripTable(t, []int16{300, -300}, opts...)
			roundTripTable(t, []int32{math.MaxInt32, 0, -7}, opts...)
			roundTripTable(t, []int64{math.MinInt64, 42}, opts...)
			roundTripTable(t, []uint8{0, 255}, opts...)
			roundTripTable(t, []uint16{65535, 1}, opts...)
			roundTripTable(t, []uint32{1 << 31, 5}, opts...)
			roundTripTable(t, []uint64{math.MaxUint64, 0}, opts...)
			roundTripTable(t, []float32{1.5, float32(math.NaN()), float32(math.Copysign(0, -1))}, opts...)
			roundTripTable(t, []float64{math.Inf(-1), math.NaN(), 0, 2.75}, opts...)
			roundTripTable(t, []bool{false, true}, opts...)
			roundTripTable(t, []string{"red", "", "a\x00b", "日本"}, opts...)
		})
	}
}

func TestMarshalTable_Empty(t *testing.T) {
	for _, comp := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(comp.String(), func(t *testing.T) {
			roundTripTable(t, []string{}, WithCompression(comp))
		})
	}

	table, err := category.NewTable([]int64{})
	require.NoError(t, err)
	data, err := MarshalTable(table)
	require.NoError(t, err)
	require.Len(t, data, section.HeaderSize)
}

func TestMarshalTable_Layout(t *testing.T) {
	table, err := category.NewTable([]uint16{0x0102, 0x0304})
	require.NoError(t, err)

	data, err := MarshalTable(table, WithBigEndian())
	require.NoError(t, err)
	require.Len(t, data, section.HeaderSize+4)

	header, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint32(2), header.Count)
	require.Equal(t, uint32(4), header.PayloadSize)
	require.Equal(t, uint32(4), header.StoredSize)
	require.Equal(t, format.SourceUint16, header.Flag.GetSourceType())
	require.Equal(t, endian.GetBigEndianEngine(), header.GetEndianEngine())
	require.Equal(t, hash.Checksum(data[section.HeaderSize:]), header.Checksum)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, data[section.HeaderSize:])
}

func TestMarshal_Encoder(t *testing.T) {
	for _, policy := range []format.UnseenPolicy{format.UnseenReserved, format.UnseenSentinel, format.UnseenZero} {
		t.Run(policy.String(), func(t *testing.T) {
			enc, err := category.FitSlice([]string{"red", "blue", "red", "green"}, category.WithUnseenPolicy(policy))
			require.NoError(t, err)

			// the encoder's own policy wins over the option
			data, err := Marshal(enc, WithUnseenPolicy(format.UnseenZero), WithCompression(format.CompressionZstd))
			require.NoError(t, err)

			decoded, err := Unmarshal[string](data)
			require.NoError(t, err)
			require.Equal(t, policy, decoded.Policy())
			require.True(t, enc.Table().Equal(decoded.Table()))

			for _, v := range []string{"red", "blue", "green", "purple", ""} {
				require.Equal(t, enc.Encode(v), decoded.Encode(v), v)
			}
		})
	}
}

func TestMarshalTable_PolicyOption(t *testing.T) {
	table, err := category.NewTable([]bool{true})
	require.NoError(t, err)

	data, err := MarshalTable(table, WithUnseenPolicy(format.UnseenSentinel))
	require.NoError(t, err)

	enc, err := Unmarshal[bool](data)
	require.NoError(t, err)
	require.Equal(t, format.UnseenSentinel, enc.Policy())
	require.Equal(t, category.SentinelIndex, enc.Encode(false))
}

func TestMarshal_Errors(t *testing.T) {
	_, err := MarshalTable[string](nil)
	require.ErrorIs(t, err, errs.ErrInvalidState)

	_, err = Marshal[string](nil)
	require.ErrorIs(t, err, errs.ErrInvalidState)

	table, err := category.NewTable([]string{"x"})
	require.NoError(t, err)

	_, err = MarshalTable(table, WithCompression(format.CompressionType(0x0F)))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = MarshalTable(table, WithUnseenPolicy(format.UnseenPolicy(0)))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestMarshalTable_Deterministic(t *testing.T) {
	table, err := category.NewTable([]string{"b", "a", "c"})
	require.NoError(t, err)

	first, err := MarshalTable(table, WithCompression(format.CompressionS2))
	require.NoError(t, err)
	second, err := MarshalTable(table, WithCompression(format.CompressionS2))
	require.NoError(t, err)

	require.Equal(t, first, second)
}
