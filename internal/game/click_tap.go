package game

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// clickTap is an endless beep.Streamer that outputs silence until Trigger
// is called, then a short decaying sine burst. The speaker goroutine reads
// from it while the game loop triggers it, hence the lock.
type clickTap struct {
	sampleRate beep.SampleRate
	freq       float64
	gain       float64
	length     int

	mu        sync.Mutex
	remaining int
}

func newClickTap(sr beep.SampleRate, freq, seconds, gain float64) *clickTap {
	n := int(seconds * float64(sr))
	if n < 1 {
		n = 1
	}
	return &clickTap{
		sampleRate: sr,
		freq:       freq,
		gain:       gain,
		length:     n,
	}
}

// Trigger restarts the burst from its first sample.
func (t *clickTap) Trigger() {
	t.mu.Lock()
	t.remaining = t.length
	t.mu.Unlock()
}

func (t *clickTap) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range samples {
		if t.remaining == 0 {
			samples[i] = [2]float64{}
			continue
		}
		n := t.length - t.remaining
		env := 1 - float64(n)/float64(t.length)
		v := t.gain * env * env * math.Sin(2*math.Pi*t.freq*float64(n)/float64(t.sampleRate))
		samples[i] = [2]float64{v, v}
		t.remaining--
	}
	return len(samples), true
}

func (t *clickTap) Err() error { return nil }

// active reports whether a burst is still playing.
func (t *clickTap) active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining > 0
}
