package blob

import (
	"fmt"

	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/compress"
	"github.com/arloliu/catenc/encoding"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/hash"
	"github.com/arloliu/catenc/section"
)

// ParseHeader parses and validates the blob header and the declared payload length.
// The payload itself is not decompressed.
func ParseHeader(data []byte) (section.TableHeader, error) {
	var header section.TableHeader
	if err := header.Parse(data); err != nil {
		return header, err
	}

	stored := len(data) - section.HeaderSize
	if stored < int(header.StoredSize) {
		return header, fmt.Errorf("%w: payload needs %d bytes, have %d", errs.ErrTruncated, header.StoredSize, stored)
	}
	if stored > int(header.StoredSize) {
		return header, fmt.Errorf("%w: %d trailing bytes after payload", errs.ErrMalformed, stored-int(header.StoredSize))
	}

	if header.Flag.GetCompression() == format.CompressionNone && header.StoredSize != header.PayloadSize {
		return header, fmt.Errorf("%w: uncompressed payload sizes differ (%d != %d)",
			errs.ErrMalformed, header.StoredSize, header.PayloadSize)
	}

	if header.Count > category.MaxCategories {
		return header, fmt.Errorf("%w: category count %d exceeds %d", errs.ErrMalformed, header.Count, category.MaxCategories)
	}

	return header, nil
}

// readPayload returns the validated header and the decompressed, checksum-verified payload.
func readPayload(data []byte) (section.TableHeader, []byte, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return header, nil, err
	}

	payload, err := decompressPayload(header, data[section.PayloadOffset:])
	if err != nil {
		return header, nil, err
	}

	return header, payload, nil
}

func decompressPayload(header section.TableHeader, stored []byte) ([]byte, error) {
	codec, err := compress.GetCodec(header.Flag.GetCompression())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformed, err)
	}

	payload, err := codec.Decompress(stored, int(header.PayloadSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress table payload: %w", err)
	}

	if sum := hash.Checksum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch (got 0x%016x, want 0x%016x)", errs.ErrMalformed, sum, header.Checksum)
	}

	return payload, nil
}

// UnmarshalTable decodes a blob into a table of type T.
//
// Returns:
//   - *category.Table[T]: The decoded table, index for index equal to the marshaled one
//   - error: ErrUnsupportedFormat, ErrTruncated, ErrMalformed or ErrSourceTypeMismatch
func UnmarshalTable[T category.Value](data []byte) (*category.Table[T], error) {
	table, _, err := unmarshalTable[T](data)
	return table, err
}

// Unmarshal decodes a blob into an encoder, restoring the stored unseen policy.
func Unmarshal[T category.Value](data []byte) (*category.Encoder[T], error) {
	table, header, err := unmarshalTable[T](data)
	if err != nil {
		return nil, err
	}

	return category.NewEncoder(table, category.WithUnseenPolicy(header.Flag.GetUnseenPolicy()))
}

func unmarshalTable[T category.Value](data []byte) (*category.Table[T], section.TableHeader, error) {
	codec, err := encoding.CodecFor[T]()
	if err != nil {
		return nil, section.TableHeader{}, err
	}

	header, err := ParseHeader(data)
	if err != nil {
		return nil, header, err
	}

	if st := header.Flag.GetSourceType(); st != codec.SourceType() {
		return nil, header, fmt.Errorf("%w: blob holds %s, requested %s", errs.ErrSourceTypeMismatch, st, codec.SourceType())
	}

	payload, err := decompressPayload(header, data[section.PayloadOffset:])
	if err != nil {
		return nil, header, err
	}

	values, err := encoding.NewValueDecoder(codec, header.GetEndianEngine()).DecodeAll(payload, int(header.Count))
	if err != nil {
		return nil, header, err
	}

	table, err := category.NewTable(values)
	if err != nil {
		return nil, header, err
	}

	return table, header, nil
}
