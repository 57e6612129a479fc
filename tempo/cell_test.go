package tempo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSetOnce(t *testing.T) {
	var c cell[int]

	_, ok := c.get()
	assert.False(t, ok, "an empty cell reports no value")

	first := 1
	require.NoError(t, c.set(&first))

	value, ok := c.get()
	require.True(t, ok)
	assert.Same(t, &first, value)

	second := 2
	assert.ErrorIs(t, c.set(&second), ErrAlreadyStarted)

	value, ok = c.get()
	require.True(t, ok)
	assert.Same(t, &first, value, "a failed set leaves the first value in place")
}
