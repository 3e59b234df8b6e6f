package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/wheel-spinner/internal/config"
)

// Ticker sounds a tick whenever a new wedge passes the pointer.
type Ticker interface {
	Trigger()
}

// StartTickSound opens the audio device and starts the tick streamer.
func StartTickSound() (Ticker, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	tap := newClickTap(sr, config.TickFrequency, config.TickLength, config.TickGain)
	speaker.Play(tap)
	return tap, nil
}
