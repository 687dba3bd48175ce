package category

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/encoding"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/options"
)

// Config holds the settings shared by accumulators, fits and encoders.
type Config struct {
	maxCategories int
	minCategories int
	capacityHint  int
	policy        format.UnseenPolicy
	progress      func(rows int, status Status)
	progressEvery int
}

// Option configures an accumulator, a fit or an encoder.
//
// Options that do not apply to the receiving operation are ignored, so the same option
// list can be passed to Fit and forwarded to NewEncoder.
type Option = options.Option[*Config]

// DefaultProgressInterval is the number of rows between progress callbacks.
const DefaultProgressInterval = 10_000

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		policy:        format.UnseenReserved,
		progressEvery: DefaultProgressInterval,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.maxCategories > 0 && cfg.minCategories > cfg.maxCategories {
		return nil, fmt.Errorf("%w: min categories %d exceeds max categories %d",
			errs.ErrInvalidOption, cfg.minCategories, cfg.maxCategories)
	}

	return cfg, nil
}

// MaxCategories returns the configured category cap, or 0 if uncapped.
func (c *Config) MaxCategories() int { return c.maxCategories }

// MinCategories returns the number of categories a fit must find.
func (c *Config) MinCategories() int { return c.minCategories }

// Policy returns the unseen-value policy.
func (c *Config) Policy() format.UnseenPolicy { return c.policy }

// WithMaxCategories stops the fit once n distinct categories have been seen.
//
// The accumulator reports StatusComplete as soon as the n-th category is inserted and
// ignores every later value. n must be in [1, MaxCategories].
func WithMaxCategories(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 || n > MaxCategories {
			return fmt.Errorf("%w: max categories %d out of range [1, %d]", errs.ErrInvalidOption, n, MaxCategories)
		}
		c.maxCategories = n

		return nil
	})
}

// WithMinCategories makes Finalize fail with ErrFitFailure if fewer than n categories
// were seen. The default 0 accepts an empty input.
func WithMinCategories(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 || n > MaxCategories {
			return fmt.Errorf("%w: min categories %d out of range", errs.ErrInvalidOption, n)
		}
		c.minCategories = n

		return nil
	})
}

// WithCapacityHint pre-sizes the accumulator for about n categories.
func WithCapacityHint(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative capacity hint %d", errs.ErrInvalidOption, n)
		}
		c.capacityHint = min(n, MaxCategories)

		return nil
	})
}

// WithUnseenPolicy sets how the encoder maps values that were not seen during the fit.
func WithUnseenPolicy(policy format.UnseenPolicy) Option {
	return options.New(func(c *Config) error {
		if !policy.IsValid() {
			return fmt.Errorf("%w: unseen policy %d", errs.ErrInvalidOption, policy)
		}
		c.policy = policy

		return nil
	})
}

// WithProgress registers fn to be called during Fit every `every` rows and once when
// the pass ends. A non-positive interval uses DefaultProgressInterval.
func WithProgress(every int, fn func(rows int, status Status)) Option {
	return options.NoError(func(c *Config) {
		c.progress = fn
		if every > 0 {
			c.progressEvery = every
		}
	})
}

func sourceTypeOf[T Value]() (format.SourceType, error) {
	return encoding.SourceTypeOf[T]()
}
