package edgeprob

import "math"

type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Segment returns a circle segment by cutting out parts of this circle.
func (c Circle) Segment(innerRadius float64, startAngle, sweepAngle float64) CircleSegment {
	return CircleSegment{
		Center:      c.Center,
		OuterRadius: c.Radius,
		InnerRadius: innerRadius,
		StartAngle:  startAngle,
		SweepAngle:  sweepAngle,
	}
}

// Quarter returns the quarter of the circle that starts at startAngle and
// sweeps π/2 anti-clockwise.
func (c Circle) Quarter(startAngle float64) CircleSegment {
	return c.Segment(0, startAngle, math.Pi/2)
}

// OverlapArea returns the area of the intersection of c and o.
func (c Circle) OverlapArea(o Circle) float64 {
	return CircleOverlapArea(math.Abs(c.Radius), math.Abs(o.Radius), c.Center.Distance(o.Center))
}

// OverlapCase describes how two circles intersect.
type OverlapCase uint8

const (
	// Disjoint circles share no area. Externally tangent circles are
	// disjoint.
	Disjoint OverlapCase = iota
	// Contained means the smaller circle lies entirely within the larger one.
	Contained
	// Partial overlap produces a lens bounded by one arc of each circle.
	Partial
)

func (oc OverlapCase) String() string {
	switch oc {
	case Disjoint:
		return "disjoint"
	case Contained:
		return "contained"
	case Partial:
		return "partial"
	default:
		return "OverlapCase(invalid)"
	}
}

// ClassifyOverlap reports how two circles with radii r1 and r2, whose centers
// are d apart, intersect.
func ClassifyOverlap(r1, r2, d float64) OverlapCase {
	if d >= r1+r2 {
		return Disjoint
	}
	if d <= math.Abs(r1-r2) {
		return Contained
	}
	return Partial
}

// CircleOverlapArea returns the area shared by two circles with radii r1 and
// r2 whose centers are d apart. The radii must not be negative.
//
// In the partial case, the lens is the sum of two circular segments, one cut
// from each circle by the common chord. The angle each segment subtends at
// its circle's center follows from the law of cosines. Rounding can push the
// cosine marginally outside of [-1, 1] when the circles are nearly tangent, so
// it gets clamped before taking the arc cosine.
func CircleOverlapArea(r1, r2, d float64) float64 {
	switch ClassifyOverlap(r1, r2, d) {
	case Disjoint:
		return 0
	case Contained:
		r := min(r1, r2)
		return math.Pi * r * r
	}

	th1 := 2 * math.Acos(clamp((d*d+r1*r1-r2*r2)/(2*d*r1), -1, 1))
	th2 := 2 * math.Acos(clamp((d*d+r2*r2-r1*r1)/(2*d*r2), -1, 1))
	return 0.5*r1*r1*(th1-math.Sin(th1)) + 0.5*r2*r2*(th2-math.Sin(th2))
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// CircleSegment represents a segment of a circle.
//
// If InnerRadius > 0, then the shape will be a doughnut segment.
type CircleSegment struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
	StartAngle  float64
	SweepAngle  float64
}

// Contains reports whether pt lies inside the segment.
func (cs CircleSegment) Contains(pt Point) bool {
	return cs.Winding(pt) != 0
}

func (cs CircleSegment) Area() float64 {
	return 0.5 * math.Abs(cs.OuterRadius*cs.OuterRadius-cs.InnerRadius*cs.InnerRadius) * cs.SweepAngle
}

// StartPoint returns the point where the outer arc begins.
func (cs CircleSegment) StartPoint() Point {
	return pointOnCircle(cs.Center, cs.OuterRadius, cs.StartAngle)
}

// EndPoint returns the point where the outer arc ends.
func (cs CircleSegment) EndPoint() Point {
	return pointOnCircle(cs.Center, cs.OuterRadius, cs.StartAngle+cs.SweepAngle)
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}

func (cs CircleSegment) Winding(pt Point) int {
	angle := pt.Sub(cs.Center).Angle()
	if angle < cs.StartAngle || angle > cs.StartAngle+cs.SweepAngle {
		return 0
	}
	dist2 := pt.Sub(cs.Center).Hypot2()
	if dist2 < cs.OuterRadius*cs.OuterRadius && dist2 > cs.InnerRadius*cs.InnerRadius ||
		dist2 < cs.InnerRadius*cs.InnerRadius && dist2 > cs.OuterRadius*cs.OuterRadius {
		return 1
	} else {
		return 0
	}
}
