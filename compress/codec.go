package compress

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// MaxDecompressedSize bounds the size a decoder will allocate for one payload.
//
// The header payload size is a uint32, but a corrupt header must not be able to make a
// decoder allocate gigabytes before the checksum is verified.
const MaxDecompressedSize = 256 * 1024 * 1024 // 256MiB

// Compressor compresses a complete table payload.
type Compressor interface {
	// Compress compresses data and returns the stored bytes.
	//
	// The input slice is not modified. The NoOp codec returns data itself, so callers
	// that reuse the input buffer must copy the result first.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload written by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses data into a new slice of exactly size bytes.
	//
	// size is the uncompressed payload size recorded in the blob header. An error is
	// returned if data is corrupt or does not expand to size bytes.
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a new Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of the payload (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrInvalidOption for an unknown compression type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrInvalidOption, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type: %s", errs.ErrInvalidOption, compressionType)
}

func checkSize(size int) error {
	if size < 0 || size > MaxDecompressedSize {
		return fmt.Errorf("%w: decompressed size %d out of range", errs.ErrMalformed, size)
	}

	return nil
}

func checkLength(algo string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s payload expanded to %d bytes, want %d", errs.ErrMalformed, algo, got, want)
	}

	return nil
}
