package section

import (
	"fmt"

	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// TableHeader is the fixed 32-byte header of a category table blob.
//
// The first two bytes are always little-endian so the byte order of the remaining
// fields can be read from them.
type TableHeader struct {
	Flag TableFlag // 6 bytes, offset 0-5

	Reserved [2]byte // must be zero, offset 6-7

	// Count is the number of categories stored in the payload.
	Count uint32 // 4 bytes, offset 8-11
	// PayloadSize is the uncompressed payload size in bytes.
	PayloadSize uint32 // 4 bytes, offset 12-15
	// StoredSize is the payload size as written after the header (after compression).
	StoredSize uint32 // 4 bytes, offset 16-19
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // 8 bytes, offset 20-27

	Reserved2 [4]byte // must be zero, offset 28-31
}

// NewTableHeader creates a header for a table of the given source type.
func NewTableHeader(sourceType format.SourceType) *TableHeader {
	return &TableHeader{
		Flag: NewTableFlag(sourceType),
	}
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// It returns ErrTruncated when data is shorter than a header, ErrUnsupportedFormat for
// an unknown magic number or version and ErrMalformed for invalid fields.
func (h *TableHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, have %d", errs.ErrTruncated, HeaderSize, len(data))
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Version = data[2]
	h.Flag.SourceType = data[3]
	h.Flag.Compression = data[4]
	h.Flag.UnseenPolicy = data[5]
	copy(h.Reserved[:], data[6:8])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()

	h.Count = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.StoredSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[20:28])
	copy(h.Reserved2[:], data[28:32])

	if h.Reserved != [2]byte{} || h.Reserved2 != [4]byte{} {
		return fmt.Errorf("%w: reserved header bytes are not zero", errs.ErrMalformed)
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *TableHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice writes the header into b, which must hold at least HeaderSize bytes.
func (h *TableHeader) WriteToSlice(b []byte) {
	engine := h.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Version
	b[3] = h.Flag.SourceType
	b[4] = h.Flag.Compression
	b[5] = h.Flag.UnseenPolicy
	copy(b[6:8], h.Reserved[:])
	engine.PutUint32(b[8:12], h.Count)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint32(b[16:20], h.StoredSize)
	engine.PutUint64(b[20:28], h.Checksum)
	copy(b[28:32], h.Reserved2[:])
}

// GetEndianEngine returns the engine matching the header's endianness flag.
func (h *TableHeader) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
