package tempo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameTimesTracksDeltas(t *testing.T) {
	var ft frameTimes

	ft.tick(1.0)
	assert.Equal(t, uint64(1), ft.frames)
	assert.Zero(t, ft.delta, "the first frame has no delta")

	ft.tick(1.016)
	assert.Equal(t, uint64(2), ft.frames)
	assert.InDelta(t, 16, float64(ft.delta.Milliseconds()), 1)
	assert.Equal(t, ft.delta, ft.max)
}

func TestFrameTimesAverageAndFPS(t *testing.T) {
	var ft frameTimes

	now := 0.0
	for range 200 {
		ft.tick(now)
		now += 1.0 / 60
	}

	assert.InDelta(t, 60, ft.fps(), 1)
	assert.InDelta(t, float64(time.Second/60), float64(ft.average), float64(time.Millisecond))
}

func TestFrameTimesIgnoresBackwardsClock(t *testing.T) {
	var ft frameTimes

	ft.tick(2.0)
	ft.tick(1.0)

	assert.Equal(t, time.Duration(0), ft.delta)
	assert.Equal(t, time.Duration(0), ft.max)
}

func TestFrameTimesPeriodicCue(t *testing.T) {
	var ft frameTimes

	var cues int
	for i := range 180 {
		if ft.tick(float64(i) / 60) {
			cues++
		}
	}

	assert.Equal(t, 3, cues, "a cue every 60 frames")
}

func TestStatsSnapshot(t *testing.T) {
	h, _, b := newTestBuilder(t)
	require.NoError(t, b.WithOnUpdate(func(*UpdateInfo[world]) {}))
	require.NoError(t, b.WithOnRender(func(*RenderInfo[world]) {}))

	r, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, r.Start(world{}, 60, 0.1))

	require.True(t, h.RunFrame(0.0))
	require.True(t, h.RunFrame(0.05))

	stats := r.Stats()
	assert.Equal(t, uint64(3), stats.Updates, "0.05s at 60 ups drains three steps")
	assert.Equal(t, uint64(2), stats.Renders)
	assert.Equal(t, uint64(2), stats.Frames)
	assert.Equal(t, 50*time.Millisecond, stats.Delta)
	assert.InDelta(t, 20, stats.FPS(), 0.1)
}
