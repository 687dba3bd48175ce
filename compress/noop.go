package compress

// NoOpCompressor stores payloads uncompressed.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without copying.
//
// The returned slice shares memory with data.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is after checking it holds size bytes.
func (c NoOpCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if err := checkLength("uncompressed", len(data), size); err != nil {
		return nil, err
	}

	return data, nil
}
