package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type commandKind int

const (
	cmdClear commandKind = iota
	cmdTriangle
	cmdLine
	cmdText
)

// Command is one recorded drawing primitive. Geometry is stored in screen
// space, resolved through the transform stack when the command was emitted.
type Command struct {
	kind   commandKind
	points [3]Point
	color  color.RGBA
	width  float64

	// text only
	font   *text.GoTextFaceSource
	str    string
	size   float64
	geoM   ebiten.GeoM
	hAlign text.Align
	vAlign text.Align
}

// Color sets the fill or stroke color.
func (c *Command) Color(clr color.RGBA) *Command {
	c.color = clr
	return c
}

// Width sets the stroke width of a line.
func (c *Command) Width(w float64) *Command {
	c.width = w
	return c
}

// Position sets the text anchor in the coordinate frame active at emission.
func (c *Command) Position(x, y float64) *Command {
	px, py := c.geoM.Apply(x, y)
	c.points[0] = Point{X: px, Y: py}
	return c
}

func (c *Command) Size(s float64) *Command {
	c.size = s
	return c
}

func (c *Command) Align(h, v text.Align) *Command {
	c.hAlign = h
	c.vAlign = v
	return c
}

// DrawList records an ordered sequence of commands for a Renderer.
type DrawList struct {
	cmds      []*Command
	transform TransformStack
}

func NewDrawList() *DrawList {
	return &DrawList{}
}

func (d *DrawList) Transform() *TransformStack {
	return &d.transform
}

func (d *DrawList) Commands() []*Command {
	return d.cmds
}

func (d *DrawList) emit(c *Command) *Command {
	d.cmds = append(d.cmds, c)
	return c
}

func (d *DrawList) Clear(clr color.RGBA) {
	d.emit(&Command{kind: cmdClear, color: clr})
}

func (d *DrawList) Triangle(p1, p2, p3 Point) *Command {
	t := &d.transform
	return d.emit(&Command{
		kind:   cmdTriangle,
		points: [3]Point{t.Apply(p1), t.Apply(p2), t.Apply(p3)},
		color:  color.RGBA{A: 0xff},
	})
}

func (d *DrawList) Line(p1, p2 Point) *Command {
	t := &d.transform
	return d.emit(&Command{
		kind:   cmdLine,
		points: [3]Point{t.Apply(p1), t.Apply(p2)},
		color:  color.RGBA{A: 0xff},
		width:  1,
	})
}

func (d *DrawList) Text(font *text.GoTextFaceSource, s string) *Command {
	c := &Command{
		kind:  cmdText,
		font:  font,
		str:   s,
		size:  12,
		color: color.RGBA{A: 0xff},
		geoM:  d.transform.Top(),
	}
	return d.emit(c.Position(0, 0))
}

