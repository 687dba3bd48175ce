// Package blob serializes fitted category tables and encoders.
//
// A blob is a fixed 32-byte header (see package section) followed by the table
// entries in index order. Decoding a blob reproduces the table exactly: the same
// values at the same indexes, and for Unmarshal the same unseen-value policy.
//
// # Encoding
//
//	enc, _ := category.FitSlice([]string{"red", "blue", "green"})
//
//	data, err := blob.Marshal(enc,
//	    blob.WithCompression(format.CompressionZstd),
//	)
//
// # Decoding
//
// The caller names the expected value type. A blob written for another type is
// rejected with ErrSourceTypeMismatch:
//
//	enc, err := blob.Unmarshal[string](data)
//	if errors.Is(err, errs.ErrSourceTypeMismatch) {
//	    // the column type changed since the model was saved
//	}
//
// Inspect decodes any blob without knowing its type and renders the categories as
// strings, for tooling.
//
// # Validation
//
// Decoders check, in order: the magic number and format version (ErrUnsupportedFormat),
// the header length and declared payload length (ErrTruncated), the header fields and
// trailing bytes (ErrMalformed), the source type (ErrSourceTypeMismatch), the payload
// checksum (ErrMalformed) and finally the entries themselves. Entry counts are checked
// against the payload size before any allocation.
//
// Blobs holding the same category twice cannot be produced by this package. If one is
// loaded anyway, the entries are kept verbatim and lookups resolve to the first index.
package blob
