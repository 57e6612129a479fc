package tempo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeBeforeStartIsIgnored(t *testing.T) {
	h, dc, b := newTestBuilder(t)

	_, err := b.Build()
	require.NoError(t, err)

	h.SetClientSize(800, 600)

	assert.Empty(t, dc.viewports, "no viewport change before the loop starts")

	w, ht := h.BufferSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, ht)
}

func TestResizeFollowsClientSize(t *testing.T) {
	h, dc, b := newTestBuilder(t)

	r, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, r.Start(world{}, 60, 0.1))

	h.SetClientSize(800, 600)

	w, ht := h.BufferSize()
	assert.Equal(t, 800, w, "without a hook the backing store follows the client size")
	assert.Equal(t, 600, ht)

	require.Len(t, dc.viewports, 1)
	assert.Equal(t, [2]int{800, 600}, dc.viewports[0])
}

func TestResizeHookDecidesBackingSize(t *testing.T) {
	h, dc, b := newTestBuilder(t)

	var sawClient [2]int
	require.NoError(t, b.WithOnResize(func(state *world, width, height int) (int, int) {
		sawClient = [2]int{width, height}

		// render at half resolution
		return width / 2, height / 2
	}))

	r, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, r.Start(world{}, 60, 0.1))

	h.SetClientSize(1000, 500)

	assert.Equal(t, [2]int{1000, 500}, sawClient, "the hook sees the client size")

	w, ht := h.BufferSize()
	assert.Equal(t, 500, w)
	assert.Equal(t, 250, ht)

	require.Len(t, dc.viewports, 1)
	assert.Equal(t, [2]int{500, 250}, dc.viewports[0], "the viewport uses the hook result")
}

func TestResizeAfterCloseIsIgnored(t *testing.T) {
	h, dc, b := newTestBuilder(t)

	r, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, r.Start(world{}, 60, 0.1))

	r.Close()
	h.SetClientSize(800, 600)

	assert.Empty(t, dc.viewports)
}

func TestResizeHookSharesTheLoopState(t *testing.T) {
	h, _, b := newTestBuilder(t)

	require.NoError(t, b.WithOnResize(func(state *world, width, height int) (int, int) {
		state.steps = width
		return width, height
	}))

	var seen int
	require.NoError(t, b.WithOnUpdate(func(info *UpdateInfo[world]) {
		seen = info.State.steps
	}))

	r, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, r.Start(world{}, 100, 1.0))

	h.SetClientSize(321, 200)

	require.True(t, h.RunFrame(0.0))
	require.True(t, h.RunFrame(0.015))

	assert.Equal(t, 321, seen, "the resize hook mutated the shared state")
}
