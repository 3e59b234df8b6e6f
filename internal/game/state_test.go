package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func TestNewStateDefaults(t *testing.T) {
	s := NewState(nil)
	assert.Equal(t, 200.0, s.Size)
	assert.Equal(t, 6, s.Segments)
	assert.Zero(t, s.Speed)
	assert.Zero(t, s.Rot)
	assert.False(t, s.Spinning())
}

func TestUpdateClickFromRest(t *testing.T) {
	s := NewState(nil)
	s.Update(true, fixedRand(0))
	assert.Equal(t, 200.0, s.Speed)

	s.Integrate(1)
	assert.Equal(t, 200.0, s.Rot)
	assert.Equal(t, 150.0, s.Speed)
}

func TestUpdateSlowTierBoost(t *testing.T) {
	s := NewState(nil)
	s.Speed = 50
	s.Update(true, fixedRand(0.5))
	assert.Equal(t, 300.0, s.Speed)
}

func TestUpdateFastTierBoost(t *testing.T) {
	s := NewState(nil)
	s.Speed = 150
	s.Update(true, fixedRand(0.5))
	assert.Equal(t, 275.0, s.Speed)
}

func TestUpdateWithoutClickKeepsSpeed(t *testing.T) {
	s := NewState(nil)
	s.Speed = 123
	s.Update(false, fixedRand(0.9))
	assert.Equal(t, 123.0, s.Speed)
}

func TestUpdateClampsToMax(t *testing.T) {
	for speed := 0.0; speed <= 400; speed += 12.5 {
		for _, r := range []float64{0, 0.25, 0.5, 0.999999} {
			s := NewState(nil)
			s.Speed = speed
			s.Update(true, fixedRand(r))
			assert.LessOrEqual(t, s.Speed, 400.0, "speed=%v rand=%v", speed, r)
			assert.Greater(t, s.Speed, 0.0)
		}
	}
}

func TestUpdateRepeatedClicksSaturate(t *testing.T) {
	s := NewState(nil)
	for i := 0; i < 10; i++ {
		s.Update(true, fixedRand(0.999))
	}
	assert.Equal(t, 400.0, s.Speed)
}

func TestIntegrateKeepsRotationWrapped(t *testing.T) {
	for _, speed := range []float64{0.2, 1, 90, 200, 359.9, 400} {
		for _, dt := range []float64{0, 1.0 / 60, 0.5, 1, 2.7, 10} {
			s := NewState(nil)
			s.Rot = 359.5
			s.Speed = speed
			s.Integrate(dt)
			assert.GreaterOrEqual(t, s.Rot, 0.0, "speed=%v dt=%v", speed, dt)
			assert.Less(t, s.Rot, 360.0, "speed=%v dt=%v", speed, dt)
		}
	}
}

func TestIntegrateRestIsIdempotent(t *testing.T) {
	s := NewState(nil)
	s.Rot = 185
	for i := 0; i < 120; i++ {
		s.Update(false, fixedRand(0.5))
		s.Integrate(1.0 / 60)
	}
	assert.Zero(t, s.Speed)
	assert.Equal(t, 185.0, s.Rot)
}

func TestIntegrateDecaysMonotonically(t *testing.T) {
	s := NewState(nil)
	s.Speed = 300
	dt := 1.0 / 60

	frames := 0
	for s.Spinning() {
		prev := s.Speed
		s.Integrate(dt)
		require.Less(t, s.Speed, prev)
		frames++
		require.Less(t, frames, 10000, "wheel never stopped")
	}
	assert.Zero(t, s.Speed)
	// 300 deg/s at 50 deg/s^2 takes about six seconds
	assert.InDelta(t, 360, frames, 2)
}

func TestIntegrateSnapsCreepToZero(t *testing.T) {
	s := NewState(nil)
	s.Speed = 0.12
	s.Integrate(1.0 / 60)
	assert.Zero(t, s.Speed)
}

func TestIndex(t *testing.T) {
	tests := []struct {
		rot  float64
		want int
	}{
		{0, 0},
		{29.9, 0},
		{30, 1},
		{185, 3},
		{330, 6},
		{359.9, 6},
	}
	for _, tt := range tests {
		s := NewState(nil)
		s.Rot = tt.rot
		assert.Equal(t, tt.want, s.Index(), "rot=%v", tt.rot)
	}
}

func TestNewRandIsReproducible(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 16; i++ {
		v := a.Float64()
		assert.Equal(t, v, b.Float64())
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
