package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/catenc/errs"
)

// MaxVarStringLength is the longest string the uvarint length prefix may declare.
// Lengths are bounded by uint32 so the payload size still fits the header field.
const MaxVarStringLength = math.MaxUint32

// VarStringSize returns the encoded size of s: the uvarint length prefix plus the bytes.
func VarStringSize(s string) int {
	var tmp [binary.MaxVarintLen64]byte
	return binary.PutUvarint(tmp[:], uint64(len(s))) + len(s)
}

// AppendVarString appends s to dst as a uvarint byte length followed by the raw bytes.
func AppendVarString(dst []byte, s string) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(s)))
	return append(dst, s...)
}

// ReadVarString reads a length-prefixed string from the start of src.
//
// Returns:
//   - string: The decoded string (a copy, it does not alias src)
//   - int: Number of bytes consumed
//   - error: ErrTruncated if src ends inside the prefix or the bytes, ErrMalformed if the
//     prefix overflows or exceeds MaxVarStringLength
func ReadVarString(src []byte) (string, int, error) {
	length, n := binary.Uvarint(src)
	if n == 0 {
		return "", 0, fmt.Errorf("%w: string length prefix", errs.ErrTruncated)
	}
	if n < 0 || length > MaxVarStringLength {
		return "", 0, fmt.Errorf("%w: invalid string length prefix", errs.ErrMalformed)
	}

	end := uint64(n) + length
	if end > uint64(len(src)) {
		return "", 0, fmt.Errorf("%w: string needs %d bytes, have %d", errs.ErrTruncated, length, len(src)-n)
	}

	return string(src[n:end]), int(end), nil
}
