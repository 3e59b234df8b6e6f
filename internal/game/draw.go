package game

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/wheel-spinner/internal/config"
)

// palette colors wedges by index; it wraps when there are more than 8.
var palette = [8]color.RGBA{
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff}, // magenta
	{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}, // orange
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // red
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // yellow
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff}, // aqua
	{R: 0x80, G: 0x00, B: 0x00, A: 0xff}, // maroon
	{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}, // pink
}

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func wedgeColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

// Draw records one frame: the spinning wheel, the fixed pointer and the
// index readout. readoutScale multiplies the readout text size.
func (s *State) Draw(readoutScale float64) *DrawList {
	d := NewDrawList()
	d.Clear(black)

	s.drawWheel(d)
	d.Transform().Clear()

	s.drawPointer(d)
	d.Transform().Clear()

	d.Text(s.Font, strconv.Itoa(s.Index())).
		Position(config.ReadoutX, config.ReadoutY).
		Size(config.ReadoutSize*readoutScale).
		Color(white).
		Align(text.AlignCenter, text.AlignCenter)

	return d
}

func (s *State) drawWheel(d *DrawList) {
	t := d.Transform()
	t.Push(translation(config.CenterX, config.CenterY))
	t.Push(rotation(toRadians(s.Rot)))

	angle := toRadians(segmentAngle(s.Segments))
	t.Push(rotation(-angle / 2))

	// Each push stacks on the previous wedge, so wedge i sits at i*angle.
	for i := 0; i < s.Segments; i++ {
		t.Push(rotation(angle))
		d.Triangle(
			Point{0, 0},
			Point{0, s.Size},
			Point{s.Size * math.Sin(angle), s.Size * math.Cos(angle)},
		).Color(wedgeColor(i))
	}
}

// drawPointer draws the arrow in screen space, independent of the wheel.
func (s *State) drawPointer(d *DrawList) {
	d.Transform().Push(translation(config.CenterX, config.CenterY))

	angle := toRadians(segmentAngle(s.Segments))
	height := s.Size * math.Sin(angle)
	p1 := Point{-config.ArrowSize / 2, -s.Size - config.ArrowSize}
	p2 := Point{config.ArrowSize / 2, -s.Size - config.ArrowSize}
	p3 := Point{0, -height}

	d.Triangle(p1, p2, p3).Color(white)
	d.Line(p1, p2).Width(config.EdgeWidth).Color(black)
	d.Line(p2, p3).Width(config.EdgeWidth).Color(black)
	d.Line(p3, p1).Width(config.EdgeWidth).Color(black)
}
