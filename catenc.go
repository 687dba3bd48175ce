// Package catenc provides a streaming categorical (one-hot) encoder with a compact,
// versioned binary format for persisting fitted encoders.
//
// An encoder is learned in a single forward pass over a column of values: every
// distinct value becomes a category with a dense index in first-seen order. The fitted
// encoder is immutable, maps values to their index, and applies a fixed policy to
// values it never saw during fit.
//
// # Core Features
//
//   - Single-pass, streaming fit with explicit completion signaling
//   - Twelve source types: signed and unsigned integers, floats, bool and string
//   - Three unseen-value policies (Reserved, Sentinel, Zero)
//   - Versioned 32-byte blob header with xxHash64 payload checksum
//   - Optional payload compression (None, Zstd, S2, LZ4)
//   - Column adapters and an Apache Arrow pipeline host
//
// # Basic Usage
//
// Fitting and applying an encoder:
//
//	import "github.com/arloliu/catenc"
//
//	enc, _ := catenc.FitSlice([]string{"red", "blue", "red", "green"})
//	enc.Encode("blue")   // 1
//	enc.Encode("purple") // 3, the reserved unseen index
//
// Persisting and restoring it:
//
//	data, _ := catenc.Marshal(enc)
//	restored, _ := catenc.Unmarshal[string](data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the category, blob,
// column and pipeline packages, simplifying the most common use cases. For advanced
// usage and fine-grained control, use those packages directly.
package catenc

import (
	"github.com/arloliu/catenc/blob"
	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/column"
	"github.com/arloliu/catenc/format"
)

var defaultBlobOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionNone),
}

var compactBlobOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionZstd),
}

// FitSlice fits an encoder from the values of a slice.
//
// Parameters:
//   - values: The column values, in row order
//   - opts: Optional fit configuration (see category.Option)
//
// Returns:
//   - *category.Encoder[T]: The fitted encoder.
//   - error: ErrFitFailure if the fit did not complete, or an option error.
//
// Available options:
//   - category.WithMaxCategories(n) stops the fit once n categories are known
//   - category.WithMinCategories(n) fails fits with fewer than n categories
//   - category.WithUnseenPolicy(format.UnseenReserved|UnseenSentinel|UnseenZero)
//   - category.WithCapacityHint(n)
//   - category.WithProgress(every, fn)
//
// Example:
//
//	enc, err := catenc.FitSlice(values,
//	    category.WithMaxCategories(1000),
//	    category.WithUnseenPolicy(format.UnseenSentinel),
//	)
func FitSlice[T category.Value](values []T, opts ...category.Option) (*category.Encoder[T], error) {
	return category.FitSlice(values, opts...)
}

// Fit fits an encoder from a forward-only source, reading it until io.EOF or until
// the category cap is reached.
//
// Any error returned by the source other than io.EOF aborts the fit; it is wrapped
// together with ErrFitFailure.
func Fit[T category.Value](src category.Source[T], opts ...category.Option) (*category.Encoder[T], error) {
	return category.Fit(src, opts...)
}

// Marshal serializes a fitted encoder with the default settings: little-endian byte
// order and an uncompressed payload.
//
// Use MarshalCompact for large vocabularies, or blob.Marshal for full control.
func Marshal[T category.Value](enc *category.Encoder[T]) ([]byte, error) {
	return blob.Marshal(enc, defaultBlobOptions...)
}

// MarshalCompact serializes a fitted encoder with a Zstd-compressed payload.
//
// Compression pays off for string vocabularies of a few hundred categories or more;
// small tables are often larger compressed than raw.
func MarshalCompact[T category.Value](enc *category.Encoder[T]) ([]byte, error) {
	return blob.Marshal(enc, compactBlobOptions...)
}

// Unmarshal restores an encoder from a blob written by Marshal, MarshalCompact or
// blob.Marshal. The unseen policy stored in the blob is restored with it.
//
// Returns ErrSourceTypeMismatch if the blob holds values of another type than T, and
// ErrUnsupportedFormat, ErrTruncated or ErrMalformed for invalid blobs.
func Unmarshal[T category.Value](data []byte) (*category.Encoder[T], error) {
	return blob.Unmarshal[T](data)
}

// NewColumn creates an unfit, type-erased column for a binding.
//
// Unsupported source types are rejected here with ErrUnsupportedSourceType.
//
// Example:
//
//	col, err := catenc.NewColumn(column.Binding{Name: "color_idx", Source: "color", Type: format.SourceString})
func NewColumn(b column.Binding, opts ...column.Option) (column.Column, error) {
	return column.New(b, opts...)
}
