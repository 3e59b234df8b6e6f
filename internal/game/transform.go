package game

import "github.com/hajimehoshi/ebiten/v2"

// Point is a 2D coordinate in either local or screen space.
type Point struct {
	X, Y float64
}

// TransformStack composes affine transforms for subsequent draw calls.
// The zero value is an empty stack whose top is the identity.
type TransformStack struct {
	stack []ebiten.GeoM
}

// Push composes m on top of the current transform. m acts on local
// coordinates first, then everything already on the stack.
func (s *TransformStack) Push(m ebiten.GeoM) {
	m.Concat(s.Top())
	s.stack = append(s.stack, m)
}

func (s *TransformStack) Pop() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Clear drops every pushed transform, leaving the identity.
func (s *TransformStack) Clear() {
	s.stack = s.stack[:0]
}

func (s *TransformStack) Len() int {
	return len(s.stack)
}

// Top returns the composed transform.
func (s *TransformStack) Top() ebiten.GeoM {
	if len(s.stack) == 0 {
		return ebiten.GeoM{}
	}
	return s.stack[len(s.stack)-1]
}

// Apply maps a local point to screen space.
func (s *TransformStack) Apply(p Point) Point {
	m := s.Top()
	x, y := m.Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

func translation(x, y float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(x, y)
	return m
}

func rotation(rad float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Rotate(rad)
	return m
}
