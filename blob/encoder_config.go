package blob

import (
	"fmt"

	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/options"
	"github.com/arloliu/catenc/section"
)

// EncoderConfig holds the header settings used by MarshalTable and Marshal.
type EncoderConfig struct {
	header *section.TableHeader
	engine endian.EndianEngine
}

// EncoderOption configures blob encoding.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig(sourceType format.SourceType, opts ...EncoderOption) (*EncoderConfig, error) {
	header := section.NewTableHeader(sourceType)
	cfg := &EncoderConfig{
		header: header,
		engine: header.GetEndianEngine(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

func (c *EncoderConfig) setEndianness(e endianness) {
	switch e {
	case bigEndianOpt:
		c.header.Flag.WithBigEndian()
	default:
		c.header.Flag.WithLittleEndian()
	}

	c.engine = c.header.GetEndianEngine()
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.header.Flag.SetCompression(comp)
		return nil
	default:
		return fmt.Errorf("%w: invalid payload compression: %v", errs.ErrInvalidOption, comp)
	}
}

func (c *EncoderConfig) setUnseenPolicy(policy format.UnseenPolicy) error {
	if !policy.IsValid() {
		return fmt.Errorf("%w: invalid unseen policy: %v", errs.ErrInvalidOption, policy)
	}
	c.header.Flag.SetUnseenPolicy(policy)

	return nil
}

// WithLittleEndian writes fixed-width values in little-endian order. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(littleEndianOpt)
	})
}

// WithBigEndian writes fixed-width values in big-endian order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(bigEndianOpt)
	})
}

// WithCompression compresses the payload with the given algorithm.
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithUnseenPolicy records the unseen-value policy in the header.
//
// MarshalTable stores format.UnseenReserved unless this option is given. Marshal always
// stores the encoder's own policy and ignores this option.
func WithUnseenPolicy(policy format.UnseenPolicy) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setUnseenPolicy(policy)
	})
}
