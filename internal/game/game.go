package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/wheel-spinner/internal/config"
)

// LoadFont parses TrueType or OpenType data for the readout.
func LoadFont(ttf []byte) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return src, nil
}

// Game drives State from the ebiten loop.
type Game struct {
	state    *State
	rng      Rand
	renderer *Renderer
	ticker   Ticker

	// readout pulse when the wheel comes to rest
	pulse        *gween.Tween
	readoutScale float64

	lastIndex int
}

// NewGame builds a game around state. ticker may be nil when no audio
// device is available.
func NewGame(state *State, rng Rand, ticker Ticker) *Game {
	return &Game{
		state:        state,
		rng:          rng,
		ticker:       ticker,
		readoutScale: 1,
		lastIndex:    state.Index(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	dt := 1 / float64(ebiten.TPS())
	g.step(dt, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	return nil
}

// step runs one tick. Physics for the frame already presented is
// integrated before this tick's click is applied, which keeps the
// click, draw, integrate order of consecutive frames.
func (g *Game) step(dt float64, clicked bool) {
	wasSpinning := g.state.Spinning()
	g.state.Integrate(dt)

	if idx := g.state.Index(); idx != g.lastIndex {
		g.lastIndex = idx
		if g.ticker != nil {
			g.ticker.Trigger()
		}
	}

	if wasSpinning && !g.state.Spinning() {
		g.pulse = gween.New(config.PulseScale, 1, config.PulseDuration, ease.OutBack)
	}
	if g.pulse != nil {
		v, done := g.pulse.Update(float32(dt))
		g.readoutScale = float64(v)
		if done {
			g.pulse = nil
			g.readoutScale = 1
		}
	}

	g.state.Update(clicked, g.rng)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		g.renderer = NewRenderer()
	}
	g.renderer.Render(screen, g.state.Draw(g.readoutScale))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
