package edgeprob

import "math"

// Field anchors the two quarter circles whose radii are the blue point's
// distances to Left and Right. The segment from Left to Right is the edge on
// which an equidistant point is sought.
type Field struct {
	Left  Point
	Right Point
}

// UnitField returns the field anchored at the bottom corners of the unit
// square, (0, 0) and (1, 0).
func UnitField() Field {
	l, r := UnitSquare().BottomCorners()
	return Field{Left: l, Right: r}
}

// Separation returns the distance between the two anchors.
func (f Field) Separation() float64 {
	return f.Left.Distance(f.Right)
}

// Radii returns the distances from blue to Left and Right.
func (f Field) Radii(blue Point) (r1, r2 float64) {
	return blue.Distance(f.Left), blue.Distance(f.Right)
}

// Circles returns the two circles centered on the anchors that pass through
// blue.
func (f Field) Circles(blue Point) (Circle, Circle) {
	r1, r2 := f.Radii(blue)
	return Circle{Center: f.Left, Radius: r1}, Circle{Center: f.Right, Radius: r2}
}

// QuarterCircles returns the parts of [Field.Circles] that lie on the blue
// point's side of the edge, between the edge and the perpendiculars raised at
// its ends.
func (f Field) QuarterCircles(blue Point) (CircleSegment, CircleSegment) {
	c1, c2 := f.Circles(blue)
	base := f.Right.Sub(f.Left).Angle()
	return c1.Quarter(base), c2.Quarter(base + math.Pi/2)
}

// OverlapCase reports how the two circles through blue intersect.
func (f Field) OverlapCase(blue Point) OverlapCase {
	r1, r2 := f.Radii(blue)
	return ClassifyOverlap(r1, r2, f.Separation())
}

// Overlap returns the area of the lens shared by the two circles through
// blue. Only half of it lies on the blue point's side of the edge.
func (f Field) Overlap(blue Point) float64 {
	r1, r2 := f.Radii(blue)
	return CircleOverlapArea(r1, r2, f.Separation())
}

// ValidArea returns the area of red point positions for which the edge holds a
// point equidistant from blue and red.
//
// Such a point exists exactly when red is inside one of the two quarter
// circles and outside the other. The quarter circles have areas πr₁²/4 and
// πr₂²/4 and share half of the lens, so the area inside exactly one of them is
// their sum minus the full lens.
//
// blue must lie in the triangle formed by the edge and the center of the
// square built on it; see [LowerTriangle]. Elsewhere the quarter circles may
// leave the square and the result has no probabilistic meaning.
func (f Field) ValidArea(blue Point) float64 {
	r1, r2 := f.Radii(blue)
	overlap := CircleOverlapArea(r1, r2, f.Separation())
	return math.Pi*r1*r1/4 + math.Pi*r2*r2/4 - overlap
}

// ValidAreaField returns [Field.ValidArea] of the unit field for the blue
// point (x, y), which must lie in [LowerTriangle].
func ValidAreaField(x, y float64) float64 {
	return UnitField().ValidArea(Pt(x, y))
}
