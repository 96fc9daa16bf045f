package assdraw

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for floating point comparisons of world and screen coordinates.
const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// round rounds half away from zero to the nearest integer coordinate.
func round(f float64) int {
	return int(math.Round(f))
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D world or screen space.
type Point struct {
	X, Y float64
}

// Pt returns the point at integer coordinates (x,y).
func Pt(x, y int) Point {
	return Point{float64(x), float64(y)}
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Div divides x and y by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Dot returns the dot product between OP and OQ.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// DistSqr returns the squared Euclidean distance between P and Q.
func (p Point) DistSqr(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// Round returns the integer coordinates nearest to P.
func (p Point) Round() (int, int) {
	return round(p.X), round(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with its origin at the top-left (y pointing down).
type Rect struct {
	X, Y, W, H float64
}

// Expand grows R by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.W + 2*d, r.H + 2*d}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

////////////////////////////////////////////////////////////////

// ViewMatrix is the world-to-screen transformation in the element order of a 2D canvas setTransform call: [a b c d e f].
// Only the axis scales a and d and the translation e and f are ever written, b and c stay zero.
type ViewMatrix [6]float64

// Identity is the view without scaling or panning.
var Identity = ViewMatrix{1.0, 0.0, 0.0, 1.0, 0.0, 0.0}

// Apply maps a world point to screen coordinates.
func (m ViewMatrix) Apply(p Point) Point {
	return Point{m[0]*p.X + m[4], m[3]*p.Y + m[5]}
}

// Invert maps a screen point back to world coordinates. The scale factors must be non-zero.
func (m ViewMatrix) Invert(p Point) Point {
	return Point{(p.X - m[4]) / m[0], (p.Y - m[5]) / m[3]}
}

// Scale returns the horizontal and vertical scale factors.
func (m ViewMatrix) Scale() (float64, float64) {
	return m[0], m[3]
}

// Offset returns the translation in screen units.
func (m ViewMatrix) Offset() (float64, float64) {
	return m[4], m[5]
}

// Translate pans the view by (dx,dy) in screen units.
func (m ViewMatrix) Translate(dx, dy float64) ViewMatrix {
	m[4] += dx
	m[5] += dy
	return m
}

// Zoom multiplies both scale factors by f, clamped to [lo,hi], and adjusts the translation so that the world point under the screen point p stays under p.
func (m ViewMatrix) Zoom(f float64, p Point, lo, hi float64) ViewMatrix {
	w := m.Invert(p)
	m[0] = clampScale(m[0]*f, lo, hi)
	m[3] = clampScale(m[3]*f, lo, hi)
	m[4] = p.X - m[0]*w.X
	m[5] = p.Y - m[3]*w.Y
	return m
}

// ScreenToWorld converts a distance in screen units to world units using the horizontal scale.
func (m ViewMatrix) ScreenToWorld(d float64) float64 {
	return d / m[0]
}

// Equals returns true if all elements of M and Q are equal with tolerance tol.
func (m ViewMatrix) Equals(q ViewMatrix, tol float64) bool {
	for i := range m {
		if tol < math.Abs(m[i]-q[i]) {
			return false
		}
	}
	return true
}

func (m ViewMatrix) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g, %g, %g]", m[0], m[1], m[2], m[3], m[4], m[5])
}

// ClampScale returns M with the magnitude of both scale factors clamped to [lo,hi]. A zero or NaN scale becomes lo, or 1 when lo is not positive.
func (m ViewMatrix) ClampScale(lo, hi float64) ViewMatrix {
	for _, i := range [2]int{0, 3} {
		if m[i] == 0.0 || math.IsNaN(m[i]) {
			m[i] = 1.0
			if 0.0 < lo {
				m[i] = lo
			}
		}
		m[i] = clampScale(m[i], lo, hi)
	}
	return m
}

// clampScale keeps the magnitude of scale within [lo,hi], preserving its sign. A non-positive bound is ignored.
func clampScale(scale, lo, hi float64) float64 {
	sign := 1.0
	if scale < 0.0 {
		sign, scale = -1.0, -scale
	}
	if 0.0 < lo && scale < lo {
		scale = lo
	} else if 0.0 < hi && hi < scale {
		scale = hi
	}
	return sign * scale
}
