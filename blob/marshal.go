package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/compress"
	"github.com/arloliu/catenc/encoding"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/internal/hash"
	"github.com/arloliu/catenc/section"
)

// MarshalTable serializes a fitted table.
//
// Parameters:
//   - table: The table to serialize
//   - opts: Byte order, compression and unseen policy options
//
// Returns:
//   - []byte: The blob, header followed by the payload
//   - error: ErrInvalidState for a nil table, ErrInvalidOption for bad options
func MarshalTable[T category.Value](table *category.Table[T], opts ...EncoderOption) ([]byte, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil table", errs.ErrInvalidState)
	}

	cfg, err := newEncoderConfig(table.SourceType(), opts...)
	if err != nil {
		return nil, err
	}

	return marshal(table, cfg)
}

// Marshal serializes an encoder: its table and its unseen-value policy.
func Marshal[T category.Value](enc *category.Encoder[T], opts ...EncoderOption) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nil encoder", errs.ErrInvalidState)
	}

	table := enc.Table()
	cfg, err := newEncoderConfig(table.SourceType(), opts...)
	if err != nil {
		return nil, err
	}

	if err := cfg.setUnseenPolicy(enc.Policy()); err != nil {
		return nil, err
	}

	return marshal(table, cfg)
}

func marshal[T category.Value](table *category.Table[T], cfg *EncoderConfig) ([]byte, error) {
	codec, err := encoding.CodecFor[T]()
	if err != nil {
		return nil, err
	}

	header := cfg.header
	if header.Flag.GetSourceType() != codec.SourceType() {
		return nil, fmt.Errorf("%w: table is %s, codec is %s",
			errs.ErrSourceTypeMismatch, header.Flag.GetSourceType(), codec.SourceType())
	}

	enc := encoding.NewValueEncoder(codec, cfg.engine)
	defer enc.Finish()

	for _, v := range table.All() {
		enc.Write(v)
	}

	payload := enc.Bytes()
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds the blob size limit", errs.ErrTooManyCategories, len(payload))
	}

	cmp, err := compress.GetCodec(header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}

	stored, err := cmp.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress table payload: %w", err)
	}
	if uint64(len(stored)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: stored payload of %d bytes exceeds the blob size limit", errs.ErrTooManyCategories, len(stored))
	}

	header.Count = uint32(table.Len())        //nolint:gosec
	header.PayloadSize = uint32(len(payload)) //nolint:gosec
	header.StoredSize = uint32(len(stored))   //nolint:gosec
	header.Checksum = hash.Checksum(payload)

	// stored may alias the pooled payload buffer, so it is copied out before Finish.
	out := make([]byte, section.HeaderSize+len(stored))
	header.WriteToSlice(out)
	copy(out[section.PayloadOffset:], stored)

	return out, nil
}
