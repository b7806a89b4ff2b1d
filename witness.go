package edgeprob

// Witness is the geometry behind a single draw of a blue and a red point. It
// holds what a front end needs to show why the red point does or doesn't
// count.
type Witness struct {
	Blue Point
	Red  Point
	// Quarters are the quarter circles around the field's anchors that pass
	// through Blue, left anchor first.
	Quarters [2]CircleSegment
	// Bisector is the perpendicular bisector of Blue and Red.
	Bisector Line
	// Foot is where Bisector crosses the line through the field's anchors.
	// It is only meaningful if HasFoot is true, which is the case unless
	// the bisector is parallel to that line or Blue and Red coincide.
	Foot    Point
	HasFoot bool
	// InLeft and InRight report whether Red lies inside the circles through
	// Blue around the left and right anchor.
	InLeft  bool
	InRight bool

	edge Line
}

// NewWitness computes the witness for blue and red in field f.
func NewWitness(f Field, blue, red Point) Witness {
	c1, c2 := f.Circles(blue)
	q1, q2 := f.QuarterCircles(blue)
	w := Witness{
		Blue:     blue,
		Red:      red,
		Quarters: [2]CircleSegment{q1, q2},
		Bisector: PerpendicularBisector(blue, red),
		InLeft:   c1.Contains(red),
		InRight:  c2.Contains(red),
		edge:     Line{P0: f.Left, P1: f.Right},
	}
	w.Foot, w.HasFoot = w.Bisector.CrossingPoint(w.edge)
	return w
}

// Valid reports whether Red lies inside exactly one of the two circles. This
// is the case exactly when the edge between the anchors holds a point
// equidistant from Blue and Red, which [Witness.FootOnEdge] checks directly.
// The two only disagree for points on a circle's boundary.
func (w Witness) Valid() bool {
	return w.InLeft != w.InRight
}

// FootOnEdge reports whether Foot exists and lies on the segment between the
// field's anchors.
func (w Witness) FootOnEdge() bool {
	if !w.HasFoot {
		return false
	}
	t := w.edge.Project(w.Foot)
	return t >= 0 && t <= 1
}
