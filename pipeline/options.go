package pipeline

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/internal/metrics"
	"github.com/arloliu/catenc/internal/options"
)

// Settings holds the runtime collaborators of an Estimator or Transformer.
type Settings struct {
	metrics *metrics.Metrics
	alloc   memory.Allocator
}

// Option configures an Estimator or a loaded Transformer.
type Option = options.Option[*Settings]

func newSettings(opts ...Option) (*Settings, error) {
	s := &Settings{alloc: memory.DefaultAllocator}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// WithRegisterer registers the pipeline metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return options.New(func(s *Settings) error {
		if reg == nil {
			return fmt.Errorf("%w: nil prometheus registerer", errs.ErrInvalidOption)
		}
		s.metrics = metrics.New(reg)

		return nil
	})
}

// WithAllocator sets the allocator used for output arrays.
func WithAllocator(mem memory.Allocator) Option {
	return options.New(func(s *Settings) error {
		if mem == nil {
			return fmt.Errorf("%w: nil allocator", errs.ErrInvalidOption)
		}
		s.alloc = mem

		return nil
	})
}
