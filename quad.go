package edgeprob

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the absolute and relative error bound used when
	// none is given. It is tight enough to give ten stable decimals for
	// smooth integrands of moderate magnitude.
	DefaultTolerance = 1e-12

	// DefaultMaxSubdivisions is the default limit on the number of
	// intervals a single call to [Integrate] may split its range into.
	DefaultMaxSubdivisions = 200
)

var (
	// ErrNoConvergence is returned when the requested accuracy cannot be
	// reached within the subdivision budget.
	ErrNoConvergence = errors.New("quadrature did not converge")

	// ErrNonFinite is returned when the integrand produces NaN or ±Inf.
	ErrNonFinite = errors.New("integrand is not finite")
)

// QuadOptions controls [Integrate] and [Integrate2].
//
// The zero value is valid. If both AbsTol and RelTol are zero, both default
// to [DefaultTolerance]. A MaxSubdivisions of zero selects
// [DefaultMaxSubdivisions].
type QuadOptions struct {
	AbsTol          float64
	RelTol          float64
	MaxSubdivisions int
}

func (opts QuadOptions) withDefaults() QuadOptions {
	if opts.AbsTol == 0 && opts.RelTol == 0 {
		opts.AbsTol = DefaultTolerance
		opts.RelTol = DefaultTolerance
	}
	if opts.MaxSubdivisions <= 0 {
		opts.MaxSubdivisions = DefaultMaxSubdivisions
	}
	return opts
}

func (opts QuadOptions) validate() error {
	if math.IsNaN(opts.AbsTol) || opts.AbsTol < 0 {
		return fmt.Errorf("invalid absolute tolerance %g", opts.AbsTol)
	}
	if math.IsNaN(opts.RelTol) || opts.RelTol < 0 {
		return fmt.Errorf("invalid relative tolerance %g", opts.RelTol)
	}
	return nil
}

// QuadResult is the outcome of a numerical integration.
type QuadResult struct {
	// Value is the estimate of the integral.
	Value float64
	// AbsErr is an estimate of the absolute error of Value.
	AbsErr float64
	// Evaluations counts how many times the integrand was called.
	Evaluations int
	// Intervals is the number of intervals the range ended up split into.
	Intervals int
}

// Integrate computes the integral of f over [a, b].
//
// This is a globally adaptive scheme: the range is repeatedly bisected,
// always splitting the interval with the largest error estimate, until the
// sum of the estimates satisfies
//
//	AbsErr ≤ max(AbsTol, RelTol·|Value|)
//
// Each interval is evaluated with the 21-point Kronrod rule. The difference
// to the embedded 10-point Gauss–Legendre rule serves as its error estimate.
// The rules never evaluate f at the interval's end points, so integrands that
// are only defined on the open interval are fine.
//
// If the accuracy cannot be reached within opts.MaxSubdivisions intervals,
// the best estimate is returned together with an error wrapping
// [ErrNoConvergence].
func Integrate(f func(float64) float64, a, b float64, opts QuadOptions) (QuadResult, error) {
	if err := opts.validate(); err != nil {
		return QuadResult{}, err
	}
	opts = opts.withDefaults()

	if a == b {
		return QuadResult{}, nil
	}
	if a > b {
		res, err := Integrate(f, b, a, opts)
		res.Value = -res.Value
		return res, err
	}

	var res QuadResult
	eval := func(x float64) float64 {
		res.Evaluations++
		return f(x)
	}

	first, ok := kronrod21(eval, a, b)
	if !ok {
		return res, fmt.Errorf("integrating over [%g, %g]: %w", a, b, ErrNonFinite)
	}
	q := intervalQueue{first}
	value, absErr := first.value, first.err
	for absErr > max(opts.AbsTol, opts.RelTol*math.Abs(value)) {
		if len(q) >= opts.MaxSubdivisions {
			res.Value, res.AbsErr, res.Intervals = q.sum()
			return res, fmt.Errorf("integrating over [%g, %g] with %d intervals, error estimate %g: %w",
				a, b, len(q), res.AbsErr, ErrNoConvergence)
		}

		worst := heap.Pop(&q).(interval)
		mid := 0.5 * (worst.a + worst.b)
		if mid <= worst.a || mid >= worst.b {
			// The interval can't be bisected any further in floating point.
			heap.Push(&q, worst)
			res.Value, res.AbsErr, res.Intervals = q.sum()
			return res, fmt.Errorf("integrating over [%g, %g], interval [%g, %g] is too narrow to split: %w",
				a, b, worst.a, worst.b, ErrNoConvergence)
		}
		left, ok1 := kronrod21(eval, worst.a, mid)
		right, ok2 := kronrod21(eval, mid, worst.b)
		if !ok1 || !ok2 {
			return res, fmt.Errorf("integrating over [%g, %g]: %w", worst.a, worst.b, ErrNonFinite)
		}
		heap.Push(&q, left)
		heap.Push(&q, right)

		value += left.value + right.value - worst.value
		absErr += left.err + right.err - worst.err
	}

	// Summing the intervals afresh avoids the cancellation that accumulates
	// in the running totals.
	res.Value, res.AbsErr, res.Intervals = q.sum()
	return res, nil
}

// Integrate2 computes the iterated integral
//
//	∫[x0, x1] ∫[ylo(x), yhi(x)] f(x, y) dy dx
//
// Both the inner and the outer integral are computed by [Integrate] with the
// same options. An inner integral that doesn't converge contributes its best
// estimate, and the first such failure is returned alongside the result, as
// [Integrate] does for the outer one. Any other inner failure aborts the
// computation and is returned.
func Integrate2(
	f func(x, y float64) float64,
	x0, x1 float64,
	ylo, yhi func(x float64) float64,
	opts QuadOptions,
) (QuadResult, error) {
	var (
		evals    int
		innerErr error
		noConv   error
		maxErr   float64
	)
	outer := func(x float64) float64 {
		if innerErr != nil {
			return 0
		}
		r, err := Integrate(func(y float64) float64 { return f(x, y) }, ylo(x), yhi(x), opts)
		evals += r.Evaluations
		if err != nil {
			err = fmt.Errorf("inner integral at x = %g: %w", x, err)
			if !errors.Is(err, ErrNoConvergence) {
				innerErr = err
				return 0
			}
			if noConv == nil {
				noConv = err
			}
		}
		maxErr = max(maxErr, r.AbsErr)
		return r.Value
	}

	res, err := Integrate(outer, x0, x1, opts)
	res.Evaluations = evals
	if innerErr != nil {
		return res, innerErr
	}
	// Errors of the inner integrals accumulate over the width of the
	// outer range.
	res.AbsErr += math.Abs(x1-x0) * maxErr
	if err == nil {
		err = noConv
	}
	return res, err
}

type interval struct {
	a, b  float64
	value float64
	err   float64
}

// intervalQueue is a max-heap of intervals ordered by error estimate.
type intervalQueue []interval

func (q intervalQueue) Len() int           { return len(q) }
func (q intervalQueue) Less(i, j int) bool { return q[i].err > q[j].err }
func (q intervalQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *intervalQueue) Push(x any)        { *q = append(*q, x.(interval)) }
func (q *intervalQueue) Pop() any {
	old := *q
	n := len(old)
	iv := old[n-1]
	*q = old[:n-1]
	return iv
}

func (q intervalQueue) sum() (value, err float64, n int) {
	for _, iv := range q {
		value += iv.value
		err += iv.err
	}
	return value, err, len(q)
}

// kronrod21 applies the 21-point Gauss–Kronrod rule to f over [a, b]. It
// returns false if f produced a value that isn't finite.
func kronrod21(f func(float64) float64, a, b float64) (interval, bool) {
	center := 0.5 * (a + b)
	halfLength := 0.5 * (b - a)

	fc := f(center)
	resK := kronrodCoeffs21Half[len(kronrodCoeffs21Half)-1][0] * fc
	var resG float64
	finite := !math.IsNaN(fc) && !math.IsInf(fc, 0)
	for j, coeff := range kronrodCoeffs21Half[:len(kronrodCoeffs21Half)-1] {
		wk, xk := coeff[0], coeff[1]
		dx := halfLength * xk
		f1 := f(center - dx)
		f2 := f(center + dx)
		sum := f1 + f2
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			finite = false
		}
		resK += wk * sum
		if j%2 == 1 {
			resG += gaussLegendreWeights10Half[j/2] * sum
		}
	}
	if !finite {
		return interval{}, false
	}
	return interval{
		a:     a,
		b:     b,
		value: resK * halfLength,
		err:   math.Abs((resK - resG) * halfLength),
	}, true
}

// Tables of Gauss–Kronrod quadrature coefficients, adapted from QUADPACK's
// qk21.
//
// kronrodCoeffs21Half holds {weight, abscissa} pairs of the 21-point Kronrod
// rule for the non-negative abscissae in decreasing order; the last entry is
// the center. The abscissae at odd indices are those of the 10-point
// Gauss–Legendre rule, whose weights are in gaussLegendreWeights10Half, in
// the same order.

var kronrodCoeffs21Half = [...][2]float64{
	{0.011694638867371874278064396062192, 0.995657163025808080735527280689003},
	{0.032558162307964727478818972459390, 0.973906528517171720077964012084452},
	{0.054755896574351996031381300244580, 0.930157491355708226001207180059508},
	{0.075039674810919952767043140916190, 0.865063366688984510732096688423493},
	{0.093125454583697605535065465083366, 0.780817726586416897063717578345042},
	{0.109387158802297641899210590325805, 0.679409568299024406234327365114874},
	{0.123491976262065851077208064998150, 0.562757134668604683339000099272694},
	{0.134709217311473325928054001771707, 0.433395394129247190799265943165784},
	{0.142775938577060080797094273138717, 0.294392862701460198131126603103866},
	{0.147739104901338491374841515972068, 0.148874338981631210884826001129720},
	{0.149445554002916905664936468389821, 0.000000000000000000000000000000000},
}

var gaussLegendreWeights10Half = [...]float64{
	0.066671344308688137593568809893332,
	0.149451349150580593145776339657697,
	0.219086362515982043995534934228163,
	0.269266719309996355091226921569469,
	0.295524224714752870173892994651338,
}
