package edgeprob

import (
	"math"
	"testing"
)

func TestCircleArea(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-7
	}

	center := Pt(5, 5)
	c := Circle{center, 5}
	if a := c.Area(); !approxEqual(a, 25*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	if w := c.Winding(center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}
	if c.Contains(Pt(10, 5)) {
		t.Error("circle shouldn't contain a point on its boundary")
	}

	q := c.Quarter(0)
	if a := q.Area(); !approxEqual(a, c.Area()/4) {
		t.Errorf("got quarter area %v, expected %v", a, c.Area()/4)
	}
	if !q.Contains(Pt(7, 7)) {
		t.Error("quarter circle should contain (7, 7)")
	}
	if q.Contains(Pt(3, 7)) {
		t.Error("quarter circle shouldn't contain (3, 7)")
	}
	if p := q.StartPoint(); !approxEqual(p.X, 10) || !approxEqual(p.Y, 5) {
		t.Errorf("got start point %v, expected (10, 5)", p)
	}
	if p := q.EndPoint(); !approxEqual(p.X, 5) || !approxEqual(p.Y, 10) {
		t.Errorf("got end point %v, expected (5, 10)", p)
	}
}

func TestClassifyOverlap(t *testing.T) {
	tests := []struct {
		r1, r2, d float64
		want      OverlapCase
	}{
		{1, 1, 3, Disjoint},
		{0.5, 0.5, 1, Disjoint}, // externally tangent
		{0, 1, 1, Disjoint},
		{2, 1, 1, Contained}, // internally tangent
		{3, 1, 1, Contained},
		{1, 1, 0, Contained},
		{1, 1, 1, Partial},
		{0.6, 0.6, 1, Partial},
	}
	for _, tt := range tests {
		if got := ClassifyOverlap(tt.r1, tt.r2, tt.d); got != tt.want {
			t.Errorf("ClassifyOverlap(%v, %v, %v) = %v, want %v", tt.r1, tt.r2, tt.d, got, tt.want)
		}
	}
	if s := OverlapCase(42).String(); s != "OverlapCase(invalid)" {
		t.Errorf("got %q for invalid case", s)
	}
}

func TestCircleOverlapArea(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}

	// Two unit circles one unit apart.
	if got, want := CircleOverlapArea(1, 1, 1), 2*math.Pi/3-math.Sqrt(3)/2; !approxEqual(got, want) {
		t.Errorf("got lens area %v, expected %v", got, want)
	}
	if got := CircleOverlapArea(1, 1, 1); math.Abs(got-1.2284) > 1e-4 {
		t.Errorf("got lens area %v, expected ≈1.2284", got)
	}

	for _, r := range []float64{0.25, 1, 3} {
		if got, want := CircleOverlapArea(r, r, 0), math.Pi*r*r; got != want {
			t.Errorf("concentric circles of radius %v: got %v, expected %v", r, got, want)
		}
	}

	if got := CircleOverlapArea(3, 1, 1); got != math.Pi {
		t.Errorf("contained circle: got %v, expected π", got)
	}
	if got := CircleOverlapArea(0.5, 0.5, 1); got != 0 {
		t.Errorf("tangent circles: got %v, expected 0", got)
	}

	// Symmetric in the radii.
	if a, b := CircleOverlapArea(0.4, 0.9, 1), CircleOverlapArea(0.9, 0.4, 1); a != b {
		t.Errorf("got %v and %v, expected them to be equal", a, b)
	}

	// The lens of two equal circles is twice the segment cut off by the
	// common chord.
	r, d := 0.8, 1.0
	th := 2 * math.Acos(d/(2*r))
	if got, want := CircleOverlapArea(r, r, d), r*r*(th-math.Sin(th)); !approxEqual(got, want) {
		t.Errorf("got lens area %v, expected %v", got, want)
	}
}

func TestCircleOverlapAreaNearTangent(t *testing.T) {
	// 0.3 + 0.7 rounds to exactly 1, so the circles are classified as
	// overlapping while the cosines round to just beyond ±1.
	d := math.Nextafter(1, 0)
	got := CircleOverlapArea(0.3, 0.7, d)
	if math.IsNaN(got) || got < 0 || got > 1e-12 {
		t.Errorf("got %v for nearly tangent circles, expected a tiny non-negative area", got)
	}

	d = math.Nextafter(2-1, 2)
	got = CircleOverlapArea(2, 1, d)
	if math.IsNaN(got) || math.Abs(got-math.Pi) > 1e-6 {
		t.Errorf("got %v for nearly internally tangent circles, expected ≈π", got)
	}
}

func TestCircleOverlapAreaMethod(t *testing.T) {
	a := Circle{Pt(0, 0), 1}
	b := Circle{Pt(0.6, 0.8), 1}
	if got, want := a.OverlapArea(b), CircleOverlapArea(1, 1, 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v, expected %v", got, want)
	}
	if got := a.OverlapArea(a.Translate(Vec(5, 0))); got != 0 {
		t.Errorf("got %v for distant circles, expected 0", got)
	}
}
