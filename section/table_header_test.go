package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

func TestNewTableHeader(t *testing.T) {
	header := NewTableHeader(format.SourceString)

	require.Equal(t, uint16(MagicTableOpt), header.Flag.GetMagicNumber())
	require.Equal(t, uint8(CurrentFormatVersion), header.Flag.Version)
	require.Equal(t, format.SourceString, header.Flag.GetSourceType())
	require.Equal(t, format.CompressionNone, header.Flag.GetCompression())
	require.Equal(t, format.UnseenReserved, header.Flag.GetUnseenPolicy())
	require.True(t, header.Flag.IsLittleEndian())
	require.NoError(t, header.Flag.Validate())
}

func TestTableHeader_BytesParse(t *testing.T) {
	for _, big := range []bool{false, true} {
		name := "little endian"
		if big {
			name = "big endian"
		}

		t.Run(name, func(t *testing.T) {
			header := NewTableHeader(format.SourceFloat64)
			if big {
				header.Flag.WithBigEndian()
			}
			header.Flag.SetCompression(format.CompressionZstd)
			header.Flag.SetUnseenPolicy(format.UnseenSentinel)
			header.Count = 3
			header.PayloadSize = 24
			header.StoredSize = 19
			header.Checksum = 0x0102030405060708

			data := header.Bytes()
			require.Len(t, data, HeaderSize)

			var parsed TableHeader
			require.NoError(t, parsed.Parse(data))
			require.Equal(t, *header, parsed)
		})
	}
}

func TestTableHeader_OptionsAlwaysLittleEndian(t *testing.T) {
	header := NewTableHeader(format.SourceInt32)
	header.Flag.WithBigEndian()

	data := header.Bytes()

	require.Equal(t, byte(0x12), data[0]) // 0xEC10 | big-endian bit
	require.Equal(t, byte(0xEC), data[1])
	require.Equal(t, endian.GetBigEndianEngine(), header.GetEndianEngine())
}

func TestTableHeader_Parse_Errors(t *testing.T) {
	valid := NewTableHeader(format.SourceString).Bytes()

	mutate := func(fn func(b []byte)) []byte {
		b := append([]byte(nil), valid...)
		fn(b)

		return b
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty", data: nil, want: errs.ErrTruncated},
		{name: "short", data: valid[:HeaderSize-1], want: errs.ErrTruncated},
		{name: "bad magic", data: mutate(func(b []byte) { b[1] = 0xEA }), want: errs.ErrUnsupportedFormat},
		{name: "future version", data: mutate(func(b []byte) { b[2] = 2 }), want: errs.ErrUnsupportedFormat},
		{name: "version zero", data: mutate(func(b []byte) { b[2] = 0 }), want: errs.ErrUnsupportedFormat},
		{name: "reserved bit", data: mutate(func(b []byte) { b[0] |= 0x01 }), want: errs.ErrMalformed},
		{name: "unknown source type", data: mutate(func(b []byte) { b[3] = 0x7F }), want: errs.ErrMalformed},
		{name: "unknown compression", data: mutate(func(b []byte) { b[4] = 0x09 }), want: errs.ErrMalformed},
		{name: "unknown policy", data: mutate(func(b []byte) { b[5] = 0x00 }), want: errs.ErrMalformed},
		{name: "reserved bytes", data: mutate(func(b []byte) { b[30] = 1 }), want: errs.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var header TableHeader
			err := header.Parse(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTableHeader_Parse_VersionCheckedBeforeFields(t *testing.T) {
	// A future version with fields this version does not understand must still be
	// reported as an unsupported format, not as malformed.
	data := NewTableHeader(format.SourceString).Bytes()
	data[2] = 9
	data[3] = 0xFF
	data[30] = 0xFF

	var header TableHeader
	err := header.Parse(data)
	require.ErrorIs(t, err, errs.ErrUnsupportedFormat)
	require.NotErrorIs(t, err, errs.ErrMalformed)
}

func TestTableFlag_Endianness(t *testing.T) {
	flag := NewTableFlag(format.SourceBool)
	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicTableOpt), flag.GetMagicNumber())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.NoError(t, flag.Validate())
}
