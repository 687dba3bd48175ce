package compress

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}
}

// vocabularyPayload builds a string-table-like payload: uvarint-prefixed category names.
func vocabularyPayload(n int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("category-%05d", i)
		buf.WriteByte(byte(len(name)))
		buf.WriteString(name)
	}

	return buf.Bytes()
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "payload")
			require.NoError(t, err)
			require.NotNil(t, codec)

			shared, err := GetCodec(ct)
			require.NoError(t, err)
			require.NotNil(t, shared)
		})
	}

	_, err := CreateCodec(format.CompressionType(0x7F), "payload")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
	require.Contains(t, err.Error(), "payload")

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte("red blue green")

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, decompressed)

	_, err = codec.Decompress(compressed, len(data)+1)
	require.ErrorIs(t, err, errs.ErrMalformed)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed, 0)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"single byte": {0x01},
		"small":       []byte("\x03red\x04blue\x05green"),
		"vocabulary":  vocabularyPayload(2000),
		"repeated":    bytes.Repeat([]byte{0xAB}, 64*1024),
		"incompressible": func() []byte {
			data := make([]byte, 4096)
			for i := range data {
				data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
			}

			return data
		}(),
	}

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			for pname, payload := range payloads {
				t.Run(pname, func(t *testing.T) {
					compressed, err := codec.Compress(payload)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed, len(payload))
					require.NoError(t, err)
					require.Equal(t, payload, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_CompressVocabulary(t *testing.T) {
	payload := vocabularyPayload(5000)

	for _, name := range []string{"Zstd", "S2", "LZ4"} {
		codec := getAllCodecs()[name]
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), name)
	}
}

func TestAllCodecs_SizeMismatch(t *testing.T) {
	payload := vocabularyPayload(100)

	for _, name := range []string{"Zstd", "S2", "LZ4"} {
		t.Run(name, func(t *testing.T) {
			codec := getAllCodecs()[name]
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			_, err = codec.Decompress(compressed, len(payload)+10)
			require.ErrorIs(t, err, errs.ErrMalformed)

			_, err = codec.Decompress(compressed, -1)
			require.ErrorIs(t, err, errs.ErrMalformed)

			_, err = codec.Decompress(compressed, MaxDecompressedSize+1)
			require.ErrorIs(t, err, errs.ErrMalformed)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte(strings.Repeat("\xff\x00\x13not-compressed", 8))

	for _, name := range []string{"Zstd", "S2", "LZ4"} {
		t.Run(name, func(t *testing.T) {
			codec := getAllCodecs()[name]
			_, err := codec.Decompress(garbage, 4096)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	payload := vocabularyPayload(500)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < 20; i++ {
						compressed, err := codec.Compress(payload)
						if err != nil {
							t.Errorf("compress: %v", err)
							return
						}
						decompressed, err := codec.Decompress(compressed, len(payload))
						if err != nil {
							t.Errorf("decompress: %v", err)
							return
						}
						if !bytes.Equal(payload, decompressed) {
							t.Errorf("round trip mismatch")
							return
						}
					}
				}()
			}
			wg.Wait()
		})
	}
}
