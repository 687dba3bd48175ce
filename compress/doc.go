// Package compress provides the payload codecs for category table blobs.
//
// A blob payload is the concatenation of all category entries. For high-cardinality
// string columns it is dominated by the category text and usually compresses well;
// small numeric tables are best stored uncompressed. Compression is applied to the
// whole payload after encoding, and the blob header records the algorithm together
// with the uncompressed size so decoders can allocate the output exactly once.
//
// Supported algorithms:
//   - None (format.CompressionNone): payload stored as-is, the default
//   - Zstd (format.CompressionZstd): best ratio, for large string vocabularies
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// The Zstd codec uses github.com/klauspost/compress/zstd. Building with the cgo_zstd
// tag switches it to the cgo binding github.com/valyala/gozstd; both produce standard
// Zstandard frames and can read each other's output.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//
//	stored, err := codec.Compress(payload)
//	original, err := codec.Decompress(stored, len(payload))
//
// All codecs are stateless values backed by sync.Pool and safe for concurrent use.
package compress
