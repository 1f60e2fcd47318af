package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type config struct {
	name  string
	limit int
}

func withName(name string) Option[*config] {
	return NoError(func(c *config) {
		c.name = name
	})
}

func withLimit(limit int) Option[*config] {
	return New(func(c *config) error {
		if limit <= 0 {
			return errors.New("limit must be positive")
		}
		c.limit = limit

		return nil
	})
}

func TestApply(t *testing.T) {
	c := &config{}
	err := Apply(c, withName("drawing"), withLimit(8))
	require.NoError(t, err)
	require.Equal(t, "drawing", c.name)
	require.Equal(t, 8, c.limit)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	c := &config{}
	err := Apply(c, withLimit(-1), withName("drawing"))
	require.Error(t, err)

	// Later options never run once one fails.
	require.Empty(t, c.name)
}

func TestApply_NoOptions(t *testing.T) {
	c := &config{}
	require.NoError(t, Apply(c))
}
