package tempo

import "time"

// Stats is a snapshot of the loop counters and the recent frame pacing.
type Stats struct {
	Updates uint64
	Renders uint64

	Frames  uint64
	Delta   time.Duration
	Average time.Duration
	Max     time.Duration
}

func (s Stats) FPS() float64 {
	return 1 / s.Average.Seconds()
}

const pacingWindow = 64

// frameTimes tracks pacing over an exponential window fed with the host
// frame instants.
type frameTimes struct {
	frames  uint64
	delta   time.Duration
	average time.Duration
	max     time.Duration

	lastTime float64
}

// tick records a frame at the given instant in seconds. It reports true
// every 60 frames as a cue for periodic logging.
func (t *frameTimes) tick(now float64) bool {
	if t.frames > 0 {
		t.record(time.Duration(max(now-t.lastTime, 0) * float64(time.Second)))
	}

	t.lastTime = now
	t.frames++

	return t.frames%60 == 0
}

func (t *frameTimes) record(d time.Duration) {
	t.delta = d
	t.max = max(t.max, d)

	// seed the average until half a window of samples arrived
	if t.frames < pacingWindow/2 {
		t.average = d
		return
	}

	t.average = ((pacingWindow-1)*t.average + d) / pacingWindow
}

func (t *frameTimes) fps() float64 {
	return 1 / t.average.Seconds()
}
