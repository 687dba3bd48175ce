package encoding

import (
	"fmt"

	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/internal/pool"
)

// ValueEncoder writes a sequence of category values into a pooled buffer.
//
// The encoded bytes are the payload of a table blob: values back to back in write
// order with no separators or index fields.
type ValueEncoder[T any] struct {
	codec  ValueCodec[T]
	engine endian.EndianEngine
	buf    *pool.ByteBuffer
	count  int
}

// NewValueEncoder creates an encoder for codec using the given byte order.
//
// Parameters:
//   - codec: Value codec for T, usually from CodecFor
//   - engine: Endian engine for fixed-width values
//
// Returns:
//   - *ValueEncoder[T]: A new encoder backed by a pooled buffer
func NewValueEncoder[T any](codec ValueCodec[T], engine endian.EndianEngine) *ValueEncoder[T] {
	return &ValueEncoder[T]{
		codec:  codec,
		engine: engine,
		buf:    pool.GetBlobBuffer(),
	}
}

// Write encodes a single value.
//
// Panics if Finish has been called.
func (e *ValueEncoder[T]) Write(v T) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.B = e.codec.Append(e.buf.B, v, e.engine)
	e.count++
}

// WriteSlice encodes all values in order, growing the buffer once up front for
// fixed-width types.
func (e *ValueEncoder[T]) WriteSlice(values []T) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.Grow(len(values) * e.codec.MinSize())
	for _, v := range values {
		e.buf.B = e.codec.Append(e.buf.B, v, e.engine)
	}
	e.count += len(values)
}

// Bytes returns the encoded payload.
//
// The returned slice aliases the encoder buffer and is invalid after Finish.
func (e *ValueEncoder[T]) Bytes() []byte {
	if e.buf == nil {
		return nil
	}

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *ValueEncoder[T]) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *ValueEncoder[T]) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Reset discards written values but keeps the buffer for reuse.
func (e *ValueEncoder[T]) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *ValueEncoder[T]) Finish() {
	if e.buf != nil {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// ValueDecoder reads a payload written by ValueEncoder.
type ValueDecoder[T any] struct {
	codec  ValueCodec[T]
	engine endian.EndianEngine
}

// NewValueDecoder creates a decoder for codec using the given byte order.
func NewValueDecoder[T any](codec ValueCodec[T], engine endian.EndianEngine) ValueDecoder[T] {
	return ValueDecoder[T]{codec: codec, engine: engine}
}

// DecodeAll decodes exactly count values from data.
//
// The count is checked against the payload length before anything is allocated, so a
// corrupt count cannot trigger a huge allocation.
//
// Returns:
//   - []T: The decoded values in payload order
//   - error: ErrTruncated if data holds fewer than count values, ErrMalformed if bytes
//     remain after the last value or a value is invalid
func (d ValueDecoder[T]) DecodeAll(data []byte, count int) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative value count %d", errs.ErrMalformed, count)
	}

	if minSize := d.codec.MinSize(); count > len(data)/minSize {
		return nil, fmt.Errorf("%w: %d values need at least %d bytes, have %d",
			errs.ErrTruncated, count, count*minSize, len(data))
	}

	values := make([]T, 0, count)
	offset := 0
	for i := 0; i < count; i++ {
		v, n, err := d.codec.Read(data[offset:], d.engine)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values = append(values, v)
		offset += n
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d values", errs.ErrMalformed, len(data)-offset, count)
	}

	return values, nil
}
