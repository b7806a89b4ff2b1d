package edgeprob

import "math"

// Triangle is a triangle given by its three vertices, in any order.
type Triangle struct {
	P0 Point
	P1 Point
	P2 Point
}

// LowerTriangle returns the triangle with vertices (0, 0), (1, 0) and
// (0.5, 0.5). The diagonals of the unit square split it into four congruent
// triangles, and this is the one whose closest edge is the bottom edge.
func LowerTriangle() Triangle {
	return Triangle{
		P0: Pt(0, 0),
		P1: Pt(1, 0),
		P2: Pt(0.5, 0.5),
	}
}

// SignedArea returns the signed area of the triangle. It is positive when
// the vertices are in anti-clockwise order in a y-up coordinate system.
func (tri Triangle) SignedArea() float64 {
	return 0.5 * tri.P1.Sub(tri.P0).Cross(tri.P2.Sub(tri.P0))
}

// Area returns the unsigned area of the triangle.
func (tri Triangle) Area() float64 {
	return math.Abs(tri.SignedArea())
}

// Barycentric returns the barycentric coordinates of pt with respect to P0,
// P1 and P2. The coordinates sum to 1. The final return value is false if the
// triangle is degenerate, in which case the coordinates are undefined.
func (tri Triangle) Barycentric(pt Point) (a, b, c float64, ok bool) {
	x1, y1 := tri.P0.Splat()
	x2, y2 := tri.P1.Splat()
	x3, y3 := tri.P2.Splat()

	denom := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if denom == 0 {
		return 0, 0, 0, false
	}
	a = ((y2-y3)*(pt.X-x3) + (x3-x2)*(pt.Y-y3)) / denom
	b = ((y3-y1)*(pt.X-x3) + (x1-x3)*(pt.Y-y3)) / denom
	c = 1 - a - b
	return a, b, c, true
}

// Contains reports whether pt lies inside the triangle or on its boundary.
// Degenerate triangles contain no points.
func (tri Triangle) Contains(pt Point) bool {
	a, b, c, ok := tri.Barycentric(pt)
	if !ok {
		return false
	}
	in := func(v float64) bool { return v >= 0 && v <= 1 }
	return in(a) && in(b) && in(c)
}

// Centroid returns the triangle's center of mass.
func (tri Triangle) Centroid() Point {
	return Point{
		X: (tri.P0.X + tri.P1.X + tri.P2.X) / 3,
		Y: (tri.P0.Y + tri.P1.Y + tri.P2.Y) / 3,
	}
}
