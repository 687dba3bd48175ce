package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var probe uint16 = 0x0102
	raw := (*[2]byte)(unsafe.Pointer(&probe))

	switch raw[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
		require.False(IsNativeLittleEndian())
	case 0x02:
		require.Equal(binary.LittleEndian, result)
		require.True(IsNativeLittleEndian())
	default:
		require.Failf("unexpected byte value", "got: %v", raw[0])
	}
}

func TestCompareNativeEndian(t *testing.T) {
	native := IsNativeLittleEndian()

	require.Equal(t, native, CompareNativeEndian(GetLittleEndianEngine()))
	require.Equal(t, !native, CompareNativeEndian(GetBigEndianEngine()))
}

func TestEngines_AppendAndRead(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{name: "little", engine: GetLittleEndianEngine(), want: []byte{0x04, 0x03, 0x02, 0x01}},
		{name: "big", engine: GetBigEndianEngine(), want: []byte{0x01, 0x02, 0x03, 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint32(nil, 0x01020304)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint32(0x01020304), tt.engine.Uint32(buf))
		})
	}
}
