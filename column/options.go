package column

import (
	"github.com/arloliu/catenc/blob"
	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/internal/options"
)

// Config holds the fit and serialization settings of a column.
type Config struct {
	fitOpts  []category.Option
	blobOpts []blob.EncoderOption
}

// Option configures a column.
type Option = options.Option[*Config]

// WithFitOptions passes options to every category.Fit run by the column.
func WithFitOptions(opts ...category.Option) Option {
	return options.NoError(func(c *Config) {
		c.fitOpts = append(c.fitOpts, opts...)
	})
}

// WithBlobOptions passes options to blob.Marshal when the column is saved.
func WithBlobOptions(opts ...blob.EncoderOption) Option {
	return options.NoError(func(c *Config) {
		c.blobOpts = append(c.blobOpts, opts...)
	})
}
