package assdraw

import "fmt"

// HandleKind is the role of a handle within its shape.
type HandleKind int

// See HandleKind.
const (
	Origin HandleKind = iota
	LineEnd
	BezierControl1
	BezierControl2
	BezierEnd
)

func (k HandleKind) String() string {
	switch k {
	case Origin:
		return "Origin"
	case LineEnd:
		return "LineEnd"
	case BezierControl1:
		return "BezierControl1"
	case BezierControl2:
		return "BezierControl2"
	case BezierEnd:
		return "BezierEnd"
	}
	return fmt.Sprintf("HandleKind(%d)", int(k))
}

// Handle is a single editable point of a shape.
type Handle struct {
	Kind HandleKind
	X, Y int
}

// Point returns the handle position in world coordinates.
func (h Handle) Point() Point {
	return Pt(h.X, h.Y)
}

func (h Handle) String() string {
	return fmt.Sprintf("%v(%d,%d)", h.Kind, h.X, h.Y)
}

////////////////////////////////////////////////////////////////

// SegmentKind is the drawing command a segment stands for.
type SegmentKind int

// See SegmentKind.
const (
	MoveSegment SegmentKind = iota
	LineSegment
	BezierSegment
)

func (k SegmentKind) String() string {
	switch k {
	case MoveSegment:
		return "m"
	case LineSegment:
		return "l"
	case BezierSegment:
		return "b"
	}
	return fmt.Sprintf("SegmentKind(%d)", int(k))
}

// Segment is one drawing command of a shape together with the handles it owns: one for a move or line, three for a bezier.
type Segment struct {
	Kind    SegmentKind
	Start   int
	Handles []Handle
}

// segmentLen returns the number of handles owned by a segment starting with a handle of kind k, or zero if no segment can start there.
func segmentLen(k HandleKind) int {
	switch k {
	case Origin, LineEnd:
		return 1
	case BezierControl1:
		return 3
	}
	return 0
}

////////////////////////////////////////////////////////////////

// Shape is a sub-path: an origin handle followed by line and bezier segments.
// Handles are stored in drawing order, segments holds the index of the first handle of every segment, segments[0] is always the origin.
type Shape struct {
	handles  []Handle
	segments []int
}

// NewShape returns a shape with only an origin handle at (x,y).
func NewShape(x, y int) *Shape {
	return &Shape{
		handles:  []Handle{{Origin, x, y}},
		segments: []int{0},
	}
}

// Len returns the number of handles.
func (s *Shape) Len() int {
	return len(s.handles)
}

// Handle returns the i-th handle.
func (s *Shape) Handle(i int) Handle {
	return s.handles[i]
}

// Handles returns a copy of the handles in drawing order.
func (s *Shape) Handles() []Handle {
	return append([]Handle{}, s.handles...)
}

// Origin returns the first handle.
func (s *Shape) Origin() Handle {
	return s.handles[0]
}

// Last returns the last handle, which is where the next segment starts drawing from.
func (s *Shape) Last() Handle {
	return s.handles[len(s.handles)-1]
}

// SetHandle moves the i-th handle to (x,y), keeping its kind.
func (s *Shape) SetHandle(i, x, y int) {
	s.handles[i].X = x
	s.handles[i].Y = y
}

// SegmentCount returns the number of segments including the origin.
func (s *Shape) SegmentCount() int {
	return len(s.segments)
}

// SegmentStart returns the index of the first handle of the i-th segment.
func (s *Shape) SegmentStart(i int) int {
	return s.segments[i]
}

// Segment returns the i-th segment.
func (s *Shape) Segment(i int) (Segment, error) {
	if i < 0 || len(s.segments) <= i {
		return Segment{}, fmt.Errorf("%w: %d", ErrInvalidSegment, i)
	}
	start := s.segments[i]
	var kind SegmentKind
	switch s.handles[start].Kind {
	case Origin:
		kind = MoveSegment
	case LineEnd:
		kind = LineSegment
	case BezierControl1:
		kind = BezierSegment
	default:
		return Segment{}, fmt.Errorf("%w: segment %d starts at %v", ErrCorruptShape, i, s.handles[start])
	}
	n := segmentLen(s.handles[start].Kind)
	if len(s.handles) < start+n {
		return Segment{}, fmt.Errorf("%w: segment %d is truncated", ErrCorruptShape, i)
	}
	return Segment{
		Kind:    kind,
		Start:   start,
		Handles: append([]Handle{}, s.handles[start:start+n]...),
	}, nil
}

// Segments returns all segments in order, starting with the origin.
func (s *Shape) Segments() []Segment {
	segs := make([]Segment, 0, len(s.segments))
	for i := range s.segments {
		seg, err := s.Segment(i)
		if err != nil {
			panic(err) // invariant violated by a mutation outside this package
		}
		segs = append(segs, seg)
	}
	return segs
}

// AddLine appends a line to (x,y).
func (s *Shape) AddLine(x, y int) *Shape {
	s.segments = append(s.segments, len(s.handles))
	s.handles = append(s.handles, Handle{LineEnd, x, y})
	return s
}

// AddBezier appends a cubic bezier with control points (x1,y1) and (x2,y2) ending at (x3,y3).
func (s *Shape) AddBezier(x1, y1, x2, y2, x3, y3 int) *Shape {
	s.segments = append(s.segments, len(s.handles))
	s.handles = append(s.handles,
		Handle{BezierControl1, x1, y1},
		Handle{BezierControl2, x2, y2},
		Handle{BezierEnd, x3, y3},
	)
	return s
}

// RemoveSegment removes the i-th segment and returns the handles it owned. Later segment starts are renumbered.
func (s *Shape) RemoveSegment(i int) ([]Handle, error) {
	if i < 0 || len(s.segments) <= i {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSegment, i)
	}
	start := s.segments[i]
	kind := s.handles[start].Kind
	if i == 0 || kind == Origin {
		return nil, ErrCannotRemoveOrigin
	}
	n := segmentLen(kind)
	if n == 0 || len(s.handles) < start+n {
		return nil, fmt.Errorf("%w: segment %d starts at %v", ErrCorruptShape, i, s.handles[start])
	}

	removed := append([]Handle{}, s.handles[start:start+n]...)
	s.handles = append(s.handles[:start], s.handles[start+n:]...)
	s.segments = append(s.segments[:i], s.segments[i+1:]...)
	for j := i; j < len(s.segments); j++ {
		s.segments[j] -= n
	}
	return removed, nil
}

// Translate moves every handle by (dx,dy).
func (s *Shape) Translate(dx, dy int) {
	for i := range s.handles {
		s.handles[i].X += dx
		s.handles[i].Y += dy
	}
}

// Copy returns a deep copy.
func (s *Shape) Copy() *Shape {
	return &Shape{
		handles:  append([]Handle{}, s.handles...),
		segments: append([]int{}, s.segments...),
	}
}

// Equals returns true if both shapes have the same handles and segment boundaries.
func (s *Shape) Equals(q *Shape) bool {
	if len(s.handles) != len(q.handles) || len(s.segments) != len(q.segments) {
		return false
	}
	for i := range s.handles {
		if s.handles[i] != q.handles[i] {
			return false
		}
	}
	for i := range s.segments {
		if s.segments[i] != q.segments[i] {
			return false
		}
	}
	return true
}

// Draw replays the shape as path commands, optionally closing it.
func (s *Shape) Draw(p Pather, close bool) {
	for i := 0; i < len(s.handles); i++ {
		h := s.handles[i]
		switch h.Kind {
		case Origin:
			p.MoveTo(float64(h.X), float64(h.Y))
		case LineEnd:
			p.LineTo(float64(h.X), float64(h.Y))
		case BezierControl1:
			c2, end := s.handles[i+1], s.handles[i+2]
			p.CubeTo(float64(h.X), float64(h.Y), float64(c2.X), float64(c2.Y), float64(end.X), float64(end.Y))
			i += 2
		}
	}
	if close {
		p.Close()
	}
}

func (s *Shape) String() string {
	return string(s.appendText(nil))
}
