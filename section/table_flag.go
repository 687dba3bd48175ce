package section

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// TableFlag is the packed flag block at the start of a table header.
type TableFlag struct {
	// Options is a packed field.
	// Bit 0 is reserved and must be 0.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved and must be 0.
	// Bits 4-15 are the magic number 0xEC10 (0b1110_1100_0001_0000).
	Options uint16

	// Version is the payload layout version.
	Version uint8

	// SourceType is the category value type, see format.SourceType.
	SourceType uint8

	// Compression is the payload compression, see format.CompressionType.
	Compression uint8

	// UnseenPolicy is the encoder's unseen-value policy, see format.UnseenPolicy.
	UnseenPolicy uint8
}

// NewTableFlag creates a little-endian, uncompressed flag for the current version
// using the reserved-index unseen policy.
func NewTableFlag(sourceType format.SourceType) TableFlag {
	flag := TableFlag{
		Options:      MagicTableOpt,
		Version:      CurrentFormatVersion,
		SourceType:   uint8(sourceType),
		Compression:  uint8(format.CompressionNone),
		UnseenPolicy: uint8(format.UnseenReserved),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether fixed-width values are little-endian.
func (f TableFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether fixed-width values are big-endian.
func (f TableFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *TableFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *TableFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f TableFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetSourceType returns the category value type.
func (f TableFlag) GetSourceType() format.SourceType {
	return format.SourceType(f.SourceType)
}

// SetSourceType sets the category value type.
func (f *TableFlag) SetSourceType(st format.SourceType) {
	f.SourceType = uint8(st)
}

// GetCompression returns the payload compression type.
func (f TableFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression sets the payload compression type.
func (f *TableFlag) SetCompression(c format.CompressionType) {
	f.Compression = uint8(c)
}

// GetUnseenPolicy returns the unseen-value policy.
func (f TableFlag) GetUnseenPolicy() format.UnseenPolicy {
	return format.UnseenPolicy(f.UnseenPolicy)
}

// SetUnseenPolicy sets the unseen-value policy.
func (f *TableFlag) SetUnseenPolicy(p format.UnseenPolicy) {
	f.UnseenPolicy = uint8(p)
}

// Validate checks the flag block.
//
// The magic number and version are checked first and reported as ErrUnsupportedFormat,
// so data from a future or foreign format is rejected before any field is interpreted.
// Every other violation is reported as ErrMalformed.
func (f TableFlag) Validate() error {
	if magic := f.GetMagicNumber(); magic != MagicTableOpt {
		return fmt.Errorf("%w: magic number 0x%04x", errs.ErrUnsupportedFormat, magic)
	}

	if f.Version != FormatVersion1 {
		return fmt.Errorf("%w: format version %d", errs.ErrUnsupportedFormat, f.Version)
	}

	if f.Options&(ReservedBit0Mask|ReservedBitsMask) != 0 {
		return fmt.Errorf("%w: reserved option bits set (0x%04x)", errs.ErrMalformed, f.Options)
	}

	if !f.GetSourceType().IsValid() {
		return fmt.Errorf("%w: unknown source type 0x%02x", errs.ErrMalformed, f.SourceType)
	}

	switch f.GetCompression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: unknown compression 0x%02x", errs.ErrMalformed, f.Compression)
	}

	if !f.GetUnseenPolicy().IsValid() {
		return fmt.Errorf("%w: unknown unseen policy 0x%02x", errs.ErrMalformed, f.UnseenPolicy)
	}

	return nil
}
