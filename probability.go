package edgeprob

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Options controls [Probability]. The zero value selects the defaults.
type Options struct {
	// Tolerance is used as both the absolute and the relative error bound
	// of every integral. Zero means [DefaultTolerance].
	Tolerance float64
	// MaxSubdivisions limits the intervals of each one-dimensional
	// integral. Zero means [DefaultMaxSubdivisions].
	MaxSubdivisions int
	// Parallel integrates the two halves of the triangle concurrently. The
	// result is identical to the sequential one.
	Parallel bool
}

func (opts Options) quad() (QuadOptions, error) {
	tol := opts.Tolerance
	if math.IsNaN(tol) || tol < 0 {
		return QuadOptions{}, fmt.Errorf("invalid tolerance %g", tol)
	}
	if tol == 0 {
		tol = DefaultTolerance
	}
	if opts.MaxSubdivisions < 0 {
		return QuadOptions{}, fmt.Errorf("invalid subdivision limit %d", opts.MaxSubdivisions)
	}
	return QuadOptions{
		AbsTol:          tol,
		RelTol:          tol,
		MaxSubdivisions: opts.MaxSubdivisions,
	}, nil
}

// Result is the probability computed by [Probability].
type Result struct {
	Value float64
	// AbsErr estimates the absolute error of Value.
	AbsErr float64
	// Evaluations counts evaluations of [Field.ValidArea].
	Evaluations int
}

// Rounded returns Value rounded to ten decimal places.
func (r Result) Rounded() float64 {
	return math.Round(r.Value*1e10) / 1e10
}

// String formats Value with exactly ten digits after the decimal point.
func (r Result) String() string {
	return FormatProbability(r.Value)
}

// FormatProbability formats p with exactly ten digits after the decimal
// point.
func FormatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', 10, 64)
}

// half is one of the two parts the lower triangle is split into at its apex.
// Both parts have y ∈ [0, yhi(x)].
type half struct {
	x0, x1 float64
	yhi    func(x float64) float64
}

func lowerTriangleHalves() [2]half {
	tri := LowerTriangle()
	apex := tri.P2
	return [2]half{
		{x0: tri.P0.X, x1: apex.X, yhi: func(x float64) float64 { return x }},
		{x0: apex.X, x1: tri.P1.X, yhi: func(x float64) float64 { return 1 - x }},
	}
}

func integrateHalf(h half, f func(x, y float64) float64, opts QuadOptions) (QuadResult, error) {
	zero := func(float64) float64 { return 0 }
	res, err := Integrate2(f, h.x0, h.x1, zero, h.yhi, opts)
	if err != nil {
		return res, fmt.Errorf("integrating x ∈ [%g, %g]: %w", h.x0, h.x1, err)
	}
	return res, nil
}

// Probability computes the probability that, for two points drawn
// independently and uniformly from the unit square, the edge closest to the
// first point holds a point equidistant from both.
//
// By symmetry, the first point can be restricted to [LowerTriangle], whose
// closest edge is the bottom one. The result is the mean of
// [ValidAreaField] over that triangle: its integral divided by the
// triangle's area. The triangle is split at its apex into two parts with
// simple bounds that are integrated separately.
//
// Failure to reach the requested tolerance is reported as an error wrapping
// [ErrNoConvergence]. The Result is still filled in with the best estimate
// available, and its AbsErr reflects the missed tolerance.
func Probability(ctx context.Context, opts Options) (Result, error) {
	qopts, err := opts.quad()
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	field := UnitField()
	f := func(x, y float64) float64 { return field.ValidArea(Pt(x, y)) }
	halves := lowerTriangleHalves()

	var (
		parts [len(halves)]QuadResult
		// Non-convergence of one half doesn't stop the other.
		unconverged [len(halves)]error
	)
	integrate := func(i int) error {
		var err error
		parts[i], err = integrateHalf(halves[i], f, qopts)
		if errors.Is(err, ErrNoConvergence) {
			unconverged[i] = err
			return nil
		}
		return err
	}

	if opts.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i := range halves {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return integrate(i)
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	} else {
		for i := range halves {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			if err := integrate(i); err != nil {
				return Result{}, err
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	area := LowerTriangle().Area()
	var res Result
	for _, p := range parts {
		res.Value += p.Value
		res.AbsErr += p.AbsErr
		res.Evaluations += p.Evaluations
	}
	res.Value /= area
	res.AbsErr /= area
	return res, errors.Join(unconverged[:]...)
}

// ComputeProbability returns the probability computed by [Probability] with
// default options, rounded to ten decimal places. On failure to converge the
// rounded estimate is returned together with the error.
func ComputeProbability() (float64, error) {
	res, err := Probability(context.Background(), Options{})
	if err != nil && !errors.Is(err, ErrNoConvergence) {
		return 0, err
	}
	return res.Rounded(), err
}
