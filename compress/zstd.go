package compress

// ZstdCompressor provides Zstandard compression for table payloads.
//
// It gives the best ratio of the built-in codecs and suits large string vocabularies
// that are written once and loaded many times.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
