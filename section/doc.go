// Package section defines the fixed binary header of a category table blob.
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (StoredSize bytes)                              │
//	│  - category entries in index order (0, 1, 2, ...)       │
//	│  - optionally compressed as a single unit               │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field        | Type   | Description
//	-------|--------------|--------|------------------------------------------
//	0-1    | Options      | uint16 | magic 0xEC10 + endianness (always LE)
//	2      | Version      | uint8  | payload layout version (1)
//	3      | SourceType   | uint8  | format.SourceType of the categories
//	4      | Compression  | uint8  | format.CompressionType of the payload
//	5      | UnseenPolicy | uint8  | format.UnseenPolicy of the encoder
//	6-7    | Reserved     |        | zero
//	8-11   | Count        | uint32 | number of categories
//	12-15  | PayloadSize  | uint32 | uncompressed payload size
//	16-19  | StoredSize   | uint32 | payload size after compression
//	20-27  | Checksum     | uint64 | xxHash64 of the uncompressed payload
//	28-31  | Reserved2    |        | zero
//
// Fields after byte 1 use the byte order named by the endianness bit.
//
// # Entry Format
//
// Entries carry no explicit index; the i-th entry is category i.
//
//   - int8, uint8: 1 byte
//   - int16, uint16: 2 bytes
//   - int32, uint32, float32: 4 bytes (floats as IEEE-754 bits)
//   - int64, uint64, float64: 8 bytes
//   - bool: 1 byte, 0x00 or 0x01
//   - string: uvarint byte length followed by the raw bytes
package section
