package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
)

func TestSourceType_String(t *testing.T) {
	require.Equal(t, "int8", SourceInt8.String())
	require.Equal(t, "float64", SourceFloat64.String())
	require.Equal(t, "string", SourceString.String())
	require.Equal(t, "Unknown", SourceType(0).String())
	require.Equal(t, "Unknown", SourceType(0xD).String())
}

func TestSourceType_FixedWidth(t *testing.T) {
	tests := map[SourceType]int{
		SourceInt8: 1, SourceUint8: 1, SourceBool: 1,
		SourceInt16: 2, SourceUint16: 2,
		SourceInt32: 4, SourceUint32: 4, SourceFloat32: 4,
		SourceInt64: 8, SourceUint64: 8, SourceFloat64: 8,
		SourceString: 0,
	}
	for st, want := range tests {
		require.Equal(t, want, st.FixedWidth(), st.String())
		require.True(t, st.IsValid())
	}
	require.False(t, SourceType(0).IsValid())
}

func TestParseSourceType(t *testing.T) {
	for name, want := range map[string]SourceType{
		"int32":   SourceInt32,
		" UINT8 ": SourceUint8,
		"int":     SourceInt64,
		"double":  SourceFloat64,
		"float":   SourceFloat64,
		"boolean": SourceBool,
		"utf8":    SourceString,
		"string":  SourceString,
	} {
		got, err := ParseSourceType(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseSourceType("decimal128")
	require.ErrorIs(t, err, errs.ErrUnsupportedSourceType)
}

func TestParseCompressionType(t *testing.T) {
	for name, want := range map[string]CompressionType{
		"":     CompressionNone,
		"none": CompressionNone,
		"Zstd": CompressionZstd,
		"s2":   CompressionS2,
		"lz4":  CompressionLZ4,
	} {
		got, err := ParseCompressionType(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestParseUnseenPolicy(t *testing.T) {
	for name, want := range map[string]UnseenPolicy{
		"":         UnseenReserved,
		"reserved": UnseenReserved,
		"Sentinel": UnseenSentinel,
		"zero":     UnseenZero,
	} {
		got, err := ParseUnseenPolicy(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseUnseenPolicy("drop")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
	require.False(t, UnseenPolicy(0).IsValid())
	require.False(t, UnseenPolicy(4).IsValid())
}

func TestTextMarshaling(t *testing.T) {
	text, err := SourceUint16.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "uint16", string(text))

	var st SourceType
	require.NoError(t, st.UnmarshalText([]byte("bool")))
	require.Equal(t, SourceBool, st)

	_, err = SourceType(0).MarshalText()
	require.ErrorIs(t, err, errs.ErrUnsupportedSourceType)

	text, err = CompressionLZ4.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "lz4", string(text))

	var ct CompressionType
	require.NoError(t, ct.UnmarshalText(text))
	require.Equal(t, CompressionLZ4, ct)

	text, err = UnseenSentinel.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "sentinel", string(text))

	var up UnseenPolicy
	require.NoError(t, up.UnmarshalText(text))
	require.Equal(t, UnseenSentinel, up)
	require.Error(t, up.UnmarshalText([]byte("bogus")))
}

func TestOutputType_String(t *testing.T) {
	require.Equal(t, "Int64", OutputInt64.String())
	require.Equal(t, "Unknown", OutputType(0).String())
}
