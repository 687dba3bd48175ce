// Package endian selects the byte order used for fixed-width category values in a blob.
//
// A blob records its byte order in the header flag, so a table written on one host can
// be read on any other. Decoders compare the blob order against the host order with
// CompareNativeEndian to report whether values are stored in native layout.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, math.Float32bits(v))
//
// All functions are safe for concurrent use; the returned engines are stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness returns the byte order of the host.
func CheckEndianness() binary.ByteOrder {
	// 0x0100: the first byte in memory is 0x01 only on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine, the blob default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
