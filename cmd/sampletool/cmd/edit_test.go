package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minetrack/sampletool/pkg/samplefile"
)

func TestParseCoordinate(t *testing.T) {
	t.Run("accepts negative values", func(t *testing.T) {
		n, err := parseCoordinate("-5", "Z coordinate")
		require.NoError(t, err)
		assert.Equal(t, int32(-5), n)
	})

	t.Run("accepts 32-bit extremes", func(t *testing.T) {
		n, err := parseCoordinate("-2147483648", "dimension ID")
		require.NoError(t, err)
		assert.Equal(t, int32(-2147483648), n)

		n, err = parseCoordinate("2147483647", "X coordinate")
		require.NoError(t, err)
		assert.Equal(t, int32(2147483647), n)
	})

	t.Run("rejects non-integers as usage errors", func(t *testing.T) {
		for _, arg := range []string{"ten", "1.5", "", "0x10", "2147483648"} {
			_, err := parseCoordinate(arg, "X coordinate")
			var usageErr *samplefile.UsageError
			require.ErrorAs(t, err, &usageErr, "arg %q", arg)
			assert.Contains(t, err.Error(), "X coordinate must be an integer")
		}
	})
}

func TestParseKey(t *testing.T) {
	key, err := parseKey([]string{"1", "10", "-5"})
	require.NoError(t, err)
	assert.Equal(t, samplefile.Key{Dimension: 1, X: 10, Z: -5}, key)

	_, err = parseKey([]string{"1", "bogus", "-5"})
	var usageErr *samplefile.UsageError
	assert.ErrorAs(t, err, &usageErr)
}
