package section

const (
	// Bit masks for the Options field
	ReservedBit0Mask = 0x0001 // Reserved bit 0, must be zero
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Reserved bits 2-3, must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicTableOpt identifies a category table blob (bits 4-15).
	MagicTableOpt = 0xEC10

	// FormatVersion1 is the only payload layout understood by this package.
	FormatVersion1 = 1
	// CurrentFormatVersion is the version written by encoders.
	CurrentFormatVersion = FormatVersion1
)

// offset and section sizes in the blob
const (
	HeaderSize    = 32         // fixed header size in bytes
	PayloadOffset = HeaderSize // byte offset where the (possibly compressed) payload starts
)
