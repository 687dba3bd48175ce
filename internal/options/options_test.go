package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	limit   int
	name    string
	applied []string
}

func withLimit(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errors.New("limit cannot be negative")
		}
		c.limit = n
		c.applied = append(c.applied, "limit")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.applied = append(c.applied, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withName("color"), withLimit(8))
		require.NoError(t, err)
		require.Equal(t, 8, cfg.limit)
		require.Equal(t, "color", cfg.name)
		require.Equal(t, []string{"name", "limit"}, cfg.applied)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withLimit(-1), withName("never"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "limit cannot be negative")
		require.Empty(t, cfg.name)
	})

	t.Run("returns option error unchanged", func(t *testing.T) {
		errRejected := errors.New("rejected")
		reject := New(func(*testConfig) error { return errRejected })

		err := Apply[*testConfig](&testConfig{}, withName("first"), reject)
		require.ErrorIs(t, err, errRejected)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, nil, withName("x"))
		require.NoError(t, err)
		require.Equal(t, "x", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{limit: 3}

		require.NoError(t, Apply(cfg))
		require.Equal(t, 3, cfg.limit)
	})
}
