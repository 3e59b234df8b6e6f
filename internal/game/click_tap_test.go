package game

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
)

func newTestTap() *clickTap {
	// 100 samples per burst at 10 kHz
	return newClickTap(beep.SampleRate(10000), 1000, 0.01, 0.5)
}

func maxAbs(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		for _, v := range s {
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
	}
	return m
}

func TestClickTapSilentUntilTriggered(t *testing.T) {
	tap := newTestTap()
	buf := make([][2]float64, 256)
	n, ok := tap.Stream(buf)

	assert.Equal(t, len(buf), n)
	assert.True(t, ok)
	assert.Zero(t, maxAbs(buf))
	assert.NoError(t, tap.Err())
	assert.False(t, tap.active())
}

func TestClickTapBurst(t *testing.T) {
	tap := newTestTap()
	tap.Trigger()
	assert.True(t, tap.active())

	burst := make([][2]float64, 100)
	tap.Stream(burst)
	assert.Greater(t, maxAbs(burst), 0.0)
	assert.LessOrEqual(t, maxAbs(burst), 0.5)
	for _, s := range burst {
		assert.Equal(t, s[0], s[1])
	}
	assert.False(t, tap.active())

	after := make([][2]float64, 64)
	tap.Stream(after)
	assert.Zero(t, maxAbs(after))
}

func TestClickTapRetriggerRestarts(t *testing.T) {
	tap := newTestTap()
	tap.Trigger()
	tap.Stream(make([][2]float64, 90))
	tap.Trigger()

	buf := make([][2]float64, 50)
	tap.Stream(buf)
	// a fresh burst still has sound after the first ten samples
	assert.Greater(t, maxAbs(buf[10:]), 0.0)
}

func TestClickTapMinimumLength(t *testing.T) {
	tap := newClickTap(beep.SampleRate(1000), 100, 0, 1)
	assert.Equal(t, 1, tap.length)
}
