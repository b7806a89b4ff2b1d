package edgeprob

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"sin", math.Sin, 0, math.Pi, 2},
		{"cubic", func(x float64) float64 { return x * x * x }, 0, 1, 0.25},
		{"exp", math.Exp, -1, 2, math.Exp(2) - math.Exp(-1)},
		{"sqrt", math.Sqrt, 0, 1, 2.0 / 3},
		{"reversed", math.Sin, math.Pi, 0, -2},
		{"quarter circle", func(x float64) float64 { return math.Sqrt(1 - x*x) }, 0, 1, math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Integrate(tt.f, tt.a, tt.b, QuadOptions{})
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(res.Value-tt.want) > 1e-11 {
				t.Errorf("got %v, want %v", res.Value, tt.want)
			}
			if res.AbsErr > 1e-11 {
				t.Errorf("error estimate %v is larger than the tolerance", res.AbsErr)
			}
			if res.Evaluations < 21 || res.Evaluations%21 != 0 {
				t.Errorf("got %d evaluations, expected a positive multiple of 21", res.Evaluations)
			}
			if res.Intervals < 1 {
				t.Errorf("got %d intervals", res.Intervals)
			}
		})
	}
}

func TestIntegratePolynomialExact(t *testing.T) {
	// The Kronrod rule integrates polynomials up to degree 31 exactly, so a
	// single interval suffices.
	res, err := Integrate(func(x float64) float64 { return 5*x*x*x*x - 3*x + 1 }, -1, 1, QuadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Value-4) > 1e-14 {
		t.Errorf("got %v, want 4", res.Value)
	}
	if res.Evaluations != 21 || res.Intervals != 1 {
		t.Errorf("got %d evaluations over %d intervals, want 21 over 1", res.Evaluations, res.Intervals)
	}
}

func TestIntegrateEmptyRange(t *testing.T) {
	called := false
	res, err := Integrate(func(float64) float64 { called = true; return 1 }, 0.5, 0.5, QuadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, QuadResult{}, res)
	if called {
		t.Error("integrand shouldn't be evaluated for an empty range")
	}
}

func TestIntegrateNoConvergence(t *testing.T) {
	step := func(x float64) float64 {
		if x < 1.0/3 {
			return 0
		}
		return 1
	}
	res, err := Integrate(step, 0, 1, QuadOptions{AbsTol: 1e-14, MaxSubdivisions: 2})
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("got error %v, want ErrNoConvergence", err)
	}
	if res.Intervals != 2 {
		t.Errorf("got %d intervals, want 2", res.Intervals)
	}
	if math.Abs(res.Value-2.0/3) > 0.1 {
		t.Errorf("best estimate %v is far off from 2/3", res.Value)
	}

	// Given enough room, the discontinuity gets isolated.
	res, err = Integrate(step, 0, 1, QuadOptions{AbsTol: 1e-10, MaxSubdivisions: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Value-2.0/3) > 1e-9 {
		t.Errorf("got %v, want 2/3", res.Value)
	}
}

func TestIntegrateNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1)} {
		_, err := Integrate(func(x float64) float64 {
			if x > 0.7 {
				return v
			}
			return x
		}, 0, 1, QuadOptions{})
		if !errors.Is(err, ErrNonFinite) {
			t.Errorf("got error %v, want ErrNonFinite", err)
		}
	}
}

func TestIntegrateInvalidOptions(t *testing.T) {
	for _, opts := range []QuadOptions{
		{AbsTol: -1},
		{RelTol: math.NaN()},
	} {
		if _, err := Integrate(math.Sin, 0, 1, opts); err == nil {
			t.Errorf("expected error for options %+v", opts)
		}
	}
}

func TestIntegrate2(t *testing.T) {
	zero := func(float64) float64 { return 0 }
	ident := func(x float64) float64 { return x }

	res, err := Integrate2(func(x, y float64) float64 { return x + y }, 0, 1, zero, ident, QuadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Value-0.5) > 1e-14 {
		t.Errorf("got %v, want 0.5", res.Value)
	}
	if res.Evaluations != 21*21 {
		t.Errorf("got %d evaluations, want %d", res.Evaluations, 21*21)
	}

	// The area of the lower triangle.
	res, err = Integrate2(func(x, y float64) float64 { return 1 }, 0, 0.5, zero, ident, QuadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	res2, err := Integrate2(func(x, y float64) float64 { return 1 }, 0.5, 1, zero, func(x float64) float64 { return 1 - x }, QuadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Value + res2.Value; math.Abs(got-LowerTriangle().Area()) > 1e-14 {
		t.Errorf("got area %v, want 0.25", got)
	}

	// The inner variable is y.
	res, err = Integrate2(func(x, y float64) float64 { return y }, 0, 2, zero, func(float64) float64 { return 1 }, QuadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Value-1) > 1e-14 {
		t.Errorf("got %v, want 1", res.Value)
	}
}

func TestIntegrate2InnerFailure(t *testing.T) {
	f := func(x, y float64) float64 {
		if x > 0.5 {
			return math.NaN()
		}
		return x * y
	}
	_, err := Integrate2(f, 0, 1, func(float64) float64 { return 0 }, func(float64) float64 { return 1 }, QuadOptions{})
	if !errors.Is(err, ErrNonFinite) {
		t.Fatalf("got error %v, want ErrNonFinite", err)
	}
}

func TestIntegrate2InnerNoConvergence(t *testing.T) {
	f := func(x, y float64) float64 {
		if y < 1.0/3 {
			return 1
		}
		return 0
	}
	zero := func(float64) float64 { return 0 }
	one := func(float64) float64 { return 1 }
	res, err := Integrate2(f, 0, 1, zero, one, QuadOptions{AbsTol: 1e-12, MaxSubdivisions: 2})
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("got error %v, want ErrNoConvergence", err)
	}
	if !strings.Contains(err.Error(), "inner integral at x = ") {
		t.Errorf("error %q doesn't name the inner integral", err)
	}
	// The inner estimates are still used, and they don't depend on x.
	if math.Abs(res.Value-1.0/3) > 0.02 {
		t.Errorf("best estimate %v is far off from 1/3", res.Value)
	}
}
