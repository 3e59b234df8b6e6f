package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer submits a DrawList to an ebiten image.
type Renderer struct {
	// 1x1 white source for solid-color triangles
	white *ebiten.Image

	verts   []ebiten.Vertex
	indices []uint16
	face    *text.GoTextFace
}

func NewRenderer() *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Renderer{
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		verts:   make([]ebiten.Vertex, 3),
		indices: []uint16{0, 1, 2},
	}
}

func (r *Renderer) Render(dst *ebiten.Image, d *DrawList) {
	for _, c := range d.Commands() {
		switch c.kind {
		case cmdClear:
			dst.Fill(c.color)
		case cmdTriangle:
			r.drawTriangle(dst, c)
		case cmdLine:
			a, b := c.points[0], c.points[1]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(c.width), c.color, true)
		case cmdText:
			r.drawText(dst, c)
		}
	}
}

func (r *Renderer) drawTriangle(dst *ebiten.Image, c *Command) {
	cr := float32(c.color.R) / 0xff
	cg := float32(c.color.G) / 0xff
	cb := float32(c.color.B) / 0xff
	ca := float32(c.color.A) / 0xff
	for i, p := range c.points {
		r.verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(r.verts, r.indices, r.white, op)
}

func (r *Renderer) drawText(dst *ebiten.Image, c *Command) {
	if c.font == nil {
		return
	}
	if r.face == nil || r.face.Source != c.font {
		r.face = &text.GoTextFace{Source: c.font}
	}
	r.face.Size = c.size

	op := &text.DrawOptions{}
	op.GeoM.Translate(c.points[0].X, c.points[0].Y)
	op.ColorScale.ScaleWithColor(c.color)
	op.PrimaryAlign = c.hAlign
	op.SecondaryAlign = c.vAlign
	text.Draw(dst, c.str, r.face, op)
}
