package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/catenc/errs"
)

type (
	SourceType      uint8
	CompressionType uint8
	UnseenPolicy    uint8
	OutputType      uint8
)

const (
	SourceInt8    SourceType = 0x1 // SourceInt8 represents a column of int8 values.
	SourceInt16   SourceType = 0x2 // SourceInt16 represents a column of int16 values.
	SourceInt32   SourceType = 0x3 // SourceInt32 represents a column of int32 values.
	SourceInt64   SourceType = 0x4 // SourceInt64 represents a column of int64 values.
	SourceUint8   SourceType = 0x5 // SourceUint8 represents a column of uint8 values.
	SourceUint16  SourceType = 0x6 // SourceUint16 represents a column of uint16 values.
	SourceUint32  SourceType = 0x7 // SourceUint32 represents a column of uint32 values.
	SourceUint64  SourceType = 0x8 // SourceUint64 represents a column of uint64 values.
	SourceFloat32 SourceType = 0x9 // SourceFloat32 represents a column of float32 values.
	SourceFloat64 SourceType = 0xA // SourceFloat64 represents a column of float64 values.
	SourceBool    SourceType = 0xB // SourceBool represents a column of bool values.
	SourceString  SourceType = 0xC // SourceString represents a column of string values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	// UnseenReserved maps every unseen value to an extra index equal to the number of
	// categories, so the output space is [0, n].
	UnseenReserved UnseenPolicy = 0x1
	// UnseenSentinel maps every unseen value to -1.
	UnseenSentinel UnseenPolicy = 0x2
	// UnseenZero maps every unseen value to index 0.
	UnseenZero UnseenPolicy = 0x3

	OutputInt64 OutputType = 0x1 // OutputInt64 is a single int64 category index per row.
)

var sourceTypeNames = map[SourceType]string{
	SourceInt8:    "int8",
	SourceInt16:   "int16",
	SourceInt32:   "int32",
	SourceInt64:   "int64",
	SourceUint8:   "uint8",
	SourceUint16:  "uint16",
	SourceUint32:  "uint32",
	SourceUint64:  "uint64",
	SourceFloat32: "float32",
	SourceFloat64: "float64",
	SourceBool:    "bool",
	SourceString:  "string",
}

func (s SourceType) String() string {
	if name, ok := sourceTypeNames[s]; ok {
		return name
	}

	return "Unknown"
}

// IsValid reports whether s is one of the supported source types.
func (s SourceType) IsValid() bool {
	_, ok := sourceTypeNames[s]
	return ok
}

// FixedWidth returns the encoded width of a value in bytes, or 0 for variable-width types.
func (s SourceType) FixedWidth() int {
	switch s {
	case SourceInt8, SourceUint8, SourceBool:
		return 1
	case SourceInt16, SourceUint16:
		return 2
	case SourceInt32, SourceUint32, SourceFloat32:
		return 4
	case SourceInt64, SourceUint64, SourceFloat64:
		return 8
	default:
		return 0
	}
}

// ParseSourceType parses a source type name such as "int32" or "string".
// Aliases "int" (int64), "float"/"double" (float64), "boolean" and "utf8" are accepted.
func ParseSourceType(name string) (SourceType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "int":
		return SourceInt64, nil
	case "float", "double":
		return SourceFloat64, nil
	case "boolean":
		return SourceBool, nil
	case "utf8", "str":
		return SourceString, nil
	}

	for st, n := range sourceTypeNames {
		if n == key {
			return st, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedSourceType, name)
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses "none", "zstd", "s2" or "lz4". An empty name means none.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidOption, name)
	}
}

func (p UnseenPolicy) String() string {
	switch p {
	case UnseenReserved:
		return "Reserved"
	case UnseenSentinel:
		return "Sentinel"
	case UnseenZero:
		return "Zero"
	default:
		return "Unknown"
	}
}

// IsValid reports whether p is a known unseen policy.
func (p UnseenPolicy) IsValid() bool {
	return p >= UnseenReserved && p <= UnseenZero
}

// ParseUnseenPolicy parses "reserved", "sentinel" or "zero". An empty name means reserved.
func ParseUnseenPolicy(name string) (UnseenPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "reserved":
		return UnseenReserved, nil
	case "sentinel":
		return UnseenSentinel, nil
	case "zero":
		return UnseenZero, nil
	default:
		return 0, fmt.Errorf("%w: unknown unseen policy %q", errs.ErrInvalidOption, name)
	}
}

func (o OutputType) String() string {
	if o == OutputInt64 {
		return "Int64"
	}

	return "Unknown"
}

// MarshalText encodes s by name, e.g. "int32".
func (s SourceType) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedSourceType, uint8(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText decodes a name accepted by ParseSourceType.
func (s *SourceType) UnmarshalText(text []byte) error {
	st, err := ParseSourceType(string(text))
	if err != nil {
		return err
	}
	*s = st

	return nil
}

// MarshalText encodes c by lower-case name, e.g. "zstd".
func (c CompressionType) MarshalText() ([]byte, error) {
	if c.String() == "Unknown" {
		return nil, fmt.Errorf("%w: compression 0x%02x", errs.ErrInvalidOption, uint8(c))
	}

	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText decodes a name accepted by ParseCompressionType.
func (c *CompressionType) UnmarshalText(text []byte) error {
	ct, err := ParseCompressionType(string(text))
	if err != nil {
		return err
	}
	*c = ct

	return nil
}

// MarshalText encodes p by lower-case name, e.g. "reserved".
func (p UnseenPolicy) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: unseen policy 0x%02x", errs.ErrInvalidOption, uint8(p))
	}

	return []byte(strings.ToLower(p.String())), nil
}

// UnmarshalText decodes a name accepted by ParseUnseenPolicy.
func (p *UnseenPolicy) UnmarshalText(text []byte) error {
	up, err := ParseUnseenPolicy(string(text))
	if err != nil {
		return err
	}
	*p = up

	return nil
}
