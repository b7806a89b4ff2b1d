// Package edgeprob computes a geometric probability exactly: pick a blue and a
// red point independently and uniformly from the unit square; what is the
// probability that the edge of the square closest to the blue point contains a
// point that is equidistant from both?
//
// The answer, to ten decimal places, is 0.4914075788. See [Probability] and
// [ComputeProbability].
//
// # Reducing the problem
//
// The square's diagonals divide it into four congruent triangles, and every
// point in one of them is closest to that triangle's outer edge. By symmetry it
// suffices to place the blue point in [LowerTriangle], whose outer edge is the
// bottom one, from (0, 0) to (1, 0).
//
// A point (t, 0) on the bottom edge is equidistant from blue and red where the
// perpendicular bisector of the two points crosses the x axis. The squared
// difference of distances is linear in t, so such a point with t ∈ [0, 1]
// exists exactly when the difference changes sign between the two corners,
// which is when the red point lies inside exactly one of the two circles
// around (0, 0) and (1, 0) that pass through the blue point.
//
// # Shapes
//
// The package includes the handful of primitives needed to express this:
//   - [Point] and [Vec2]
//   - [Circle] and [CircleSegment], whose quarter circles bound the region
//     of valid red points
//   - [Line], for perpendicular bisectors and their crossings
//   - [Rect], for the unit square
//   - [Triangle], for the region the blue point is restricted to
//
// [CircleOverlapArea] computes the area of the lens shared by two circles.
// [Field] evaluates, for a given blue point, the area of red points that count;
// [ValidAreaField] is its version for the unit square.
//
// # Integration
//
// The probability is the mean of [ValidAreaField] over [LowerTriangle]. The
// triangle is split at its apex into two parts whose bounds are simple
// functions of x, and each part is integrated with [Integrate2], an iterated
// globally adaptive Gauss–Kronrod scheme. The integrand is smooth inside the
// triangle; the rule doesn't evaluate it on the corners, where one of the
// circles degenerates to a point.
//
// [Witness] reproduces the geometry for a single pair of points, for the
// benefit of programs that want to visualize it.
//
// # Literature
//
//   - [Circle-circle intersection] on MathWorld
//   - [QUADPACK] by Piessens, de Doncker-Kapenga, Überhuber and Kahaner
//
// [Circle-circle intersection]: https://mathworld.wolfram.com/Circle-CircleIntersection.html
// [QUADPACK]: https://en.wikipedia.org/wiki/QUADPACK
package edgeprob
