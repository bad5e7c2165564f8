package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	maxDepth int
	order    string
	calls    []string
}

func withMaxDepth(depth int) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if depth <= 0 {
			return errors.New("max depth must be positive")
		}
		c.maxDepth = depth
		c.calls = append(c.calls, "depth")

		return nil
	})
}

func withOrder(order string) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.order = order
		c.calls = append(c.calls, "order")
	})
}

func TestApply(t *testing.T) {
	cfg := &codecConfig{}

	err := Apply(cfg, withOrder("LE"), withMaxDepth(32))
	require.NoError(t, err)
	require.Equal(t, 32, cfg.maxDepth)
	require.Equal(t, "LE", cfg.order)
	require.Equal(t, []string{"order", "depth"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &codecConfig{}

	err := Apply(cfg, withMaxDepth(0), withOrder("BE"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "max depth must be positive")
	require.Empty(t, cfg.order, "options after a failure must not run")
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &codecConfig{maxDepth: 64}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 64, cfg.maxDepth)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &codecConfig{}

	require.NoError(t, Apply(cfg, nil, withOrder("LE")))
	require.Equal(t, "LE", cfg.order)
}

func TestApply_LastWins(t *testing.T) {
	cfg := &codecConfig{}

	require.NoError(t, Apply(cfg, withMaxDepth(8), withMaxDepth(16)))
	require.Equal(t, 16, cfg.maxDepth)
}
