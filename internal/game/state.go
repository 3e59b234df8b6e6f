package game

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/wheel-spinner/internal/config"
)

// Rand yields pseudo-random floats in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a reproducible generator for click boosts.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// State is the whole animation state, mutated in place once per frame.
type State struct {
	Font     *text.GoTextFaceSource
	Size     float64 // wedge radius in pixels
	Speed    float64 // degrees per second
	Segments int
	Rot      float64 // degrees, always in [0, 360)
}

func NewState(font *text.GoTextFaceSource) *State {
	return &State{
		Font:     font,
		Size:     config.WheelSize,
		Segments: config.Segments,
	}
}

// Update applies a click boost when clicked is set and clamps the speed.
func (s *State) Update(clicked bool, rng Rand) {
	if clicked {
		if s.Speed < config.SlowThreshold {
			s.Speed += config.SlowBoost + rng.Float64()*config.SlowBoostRange
		} else {
			s.Speed += config.FastBoost + rng.Float64()*config.FastBoostRange
		}
	}
	s.Speed = clampMax(s.Speed, config.MaxSpeed)
}

// Integrate advances the wheel by dt seconds and applies friction.
func (s *State) Integrate(dt float64) {
	if s.Speed > 0 {
		s.Rot = wrapDegrees(s.Rot + dt*s.Speed)
		s.Speed -= dt * config.Deceleration
	}
	if s.Speed < config.RestThreshold {
		s.Speed = 0
	}
}

// Spinning reports whether the wheel is moving.
func (s *State) Spinning() bool {
	return s.Speed > 0
}

// Index is the wedge number shown in the readout.
func (s *State) Index() int {
	return int(math.Round(s.Rot / segmentAngle(s.Segments)))
}
