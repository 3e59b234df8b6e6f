package config

const (
	WindowWidth  = 700
	WindowHeight = 700
	WindowTitle  = "Roulette - Click to spin, Esc/Q: Quit"

	// Wheel geometry
	CenterX   = 350.0
	CenterY   = 350.0
	WheelSize = 200.0
	Segments  = 6
	ArrowSize = 50.0
	EdgeWidth = 2.0

	// Spin physics, degrees per second
	MaxSpeed       = 400.0
	SlowThreshold  = 100.0
	SlowBoost      = 200.0
	SlowBoostRange = 100.0
	FastBoost      = 50.0
	FastBoostRange = 150.0
	Deceleration   = 50.0
	RestThreshold  = 0.1
	RandomSeed     = 0x5eed

	// Readout
	ReadoutX      = 50.0
	ReadoutY      = 10.0
	ReadoutSize   = 30.0
	PulseScale    = 1.6
	PulseDuration = 0.5

	// Tick sound
	SampleRate    = 44100
	TickFrequency = 1800.0
	TickLength    = 0.012
	TickGain      = 0.35
)
