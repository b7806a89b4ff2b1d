package edgeprob

import "math"

// Line represents a line segment between two points. Some methods treat it
// as the infinite line through those points; they say so.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// PerpendicularBisector returns the line of points equidistant from a and b.
// The returned segment starts at their midpoint. If a and b coincide, the
// segment is degenerate and crosses nothing.
func PerpendicularBisector(a, b Point) Line {
	mid := a.Midpoint(b)
	return Line{
		P0: mid,
		P1: mid.Translate(b.Sub(a).Turn90()),
	}
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It returns false if the lines are parallel or either is
// degenerate.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Project returns the parameter t of the point on the infinite line closest
// to pt, such that l.Eval(t) is that point. It is NaN for degenerate lines.
func (l Line) Project(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	return d.Dot(pt.Sub(l.P0)) / d.Hypot2()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Translate(l.P1.Sub(l.P0).Mul(t))
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN() || math.IsNaN(l.Length())
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}
