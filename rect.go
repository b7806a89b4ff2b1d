package edgeprob

import "math/rand/v2"

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// UnitSquare returns the rectangle spanning [0, 1] × [0, 1].
func UnitSquare() Rect {
	return Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies in the half-open rectangle
// [X0, X1) × [Y0, Y1).
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// BottomEdge returns the edge from (X0, Y0) to (X1, Y0).
func (r Rect) BottomEdge() Line {
	return Line{
		P0: Pt(r.X0, r.Y0),
		P1: Pt(r.X1, r.Y0),
	}
}

// BottomCorners returns the two corners of the bottom edge, left first.
func (r Rect) BottomCorners() (Point, Point) {
	return Pt(r.X0, r.Y0), Pt(r.X1, r.Y0)
}

// RandomPoint returns a point drawn uniformly from r using rng.
func (r Rect) RandomPoint(rng *rand.Rand) Point {
	return Point{
		X: r.X0 + rng.Float64()*r.Width(),
		Y: r.Y0 + rng.Float64()*r.Height(),
	}
}
