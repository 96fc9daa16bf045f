package assdraw

import "math"

// Tolerance is the default maximum deviation in world units of a flattened bezier from the true curve.
const Tolerance = 0.1

// maxSubdivisions bounds the recursion depth when flattening.
const maxSubdivisions = 16

// NearestHandle returns the index of the handle closest to p, if its distance is less than maxDist. Ties resolve to the first handle in drawing order.
func (s *Shape) NearestHandle(p Point, maxDist float64) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, h := range s.handles {
		if dist := h.Point().DistSqr(p); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best == -1 || maxDist*maxDist <= bestDist {
		return -1, false
	}
	return best, true
}

// HandlesWithin calls f for every handle whose distance to p is at most maxDist, passing its squared distance.
func (s *Shape) HandlesWithin(p Point, maxDist float64, f func(i int, h Handle, distSqr float64)) {
	maxDistSqr := maxDist * maxDist
	for i, h := range s.handles {
		if dist := h.Point().DistSqr(p); dist <= maxDistSqr {
			f(i, h, dist)
		}
	}
}

// cubicSplit splits the cubic bezier p0,p1,p2,p3 at t using De Casteljau's algorithm.
func cubicSplit(p0, p1, p2, p3 Point, t float64) ([4]Point, [4]Point) {
	q0 := p0.Interpolate(p1, t)
	q1 := p1.Interpolate(p2, t)
	q2 := p2.Interpolate(p3, t)
	r0 := q0.Interpolate(q1, t)
	r1 := q1.Interpolate(q2, t)
	s := r0.Interpolate(r1, t)
	return [4]Point{p0, q0, r0, s}, [4]Point{s, r1, q2, p3}
}

// cubicFlat returns true if the control points lie within tolerance of the chord p0-p3.
func cubicFlat(p0, p1, p2, p3 Point, tolerance float64) bool {
	chord := p3.Sub(p0)
	length := chord.Length()
	if length < Epsilon {
		return p1.DistSqr(p0) <= tolerance*tolerance && p2.DistSqr(p0) <= tolerance*tolerance
	}
	d1 := math.Abs(chord.X*(p1.Y-p0.Y)-chord.Y*(p1.X-p0.X)) / length
	d2 := math.Abs(chord.X*(p2.Y-p0.Y)-chord.Y*(p2.X-p0.X)) / length
	return d1 <= tolerance && d2 <= tolerance
}

// flattenCubic appends the vertices approximating the cubic bezier, excluding p0, by recursive subdivision at t=0.5.
func flattenCubic(pts []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	if depth == maxSubdivisions || cubicFlat(p0, p1, p2, p3, tolerance) {
		return append(pts, p3)
	}
	a, b := cubicSplit(p0, p1, p2, p3, 0.5)
	pts = flattenCubic(pts, a[0], a[1], a[2], a[3], tolerance, depth+1)
	return flattenCubic(pts, b[0], b[1], b[2], b[3], tolerance, depth+1)
}

// Flatten returns the shape as a polyline starting at the origin, with beziers subdivided until they deviate at most tolerance from the curve.
func (s *Shape) Flatten(tolerance float64) []Point {
	pts := make([]Point, 0, len(s.handles))
	for i := 0; i < len(s.handles); i++ {
		h := s.handles[i]
		switch h.Kind {
		case Origin, LineEnd:
			pts = append(pts, h.Point())
		case BezierControl1:
			p0 := s.handles[i-1].Point()
			pts = flattenCubic(pts, p0, h.Point(), s.handles[i+1].Point(), s.handles[i+2].Point(), tolerance, 0)
			i += 2
		}
	}
	return pts
}

// Bounds returns the bounding box of the shape's flattened outline.
func (s *Shape) Bounds() Rect {
	pts := s.Flatten(Tolerance)
	x0, y0 := pts[0].X, pts[0].Y
	x1, y1 := x0, y0
	for _, p := range pts[1:] {
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Bounds returns the bounding box of all shapes, or the zero Rect for an empty drawing.
func (d *Drawing) Bounds() Rect {
	if len(d.shapes) == 0 {
		return Rect{}
	}
	r := d.shapes[0].Bounds()
	for _, s := range d.shapes[1:] {
		b := s.Bounds()
		x0 := math.Min(r.X, b.X)
		y0 := math.Min(r.Y, b.Y)
		x1 := math.Max(r.X+r.W, b.X+b.W)
		y1 := math.Max(r.Y+r.H, b.Y+b.H)
		r = Rect{x0, y0, x1 - x0, y1 - y0}
	}
	return r
}
