package assdraw

// Drawing is the whole document: shapes in paint order.
type Drawing struct {
	shapes []*Shape
}

// NewDrawing returns an empty drawing.
func NewDrawing() *Drawing {
	return &Drawing{}
}

// AddShape appends a new shape with its origin at (x,y) and returns it.
func (d *Drawing) AddShape(x, y int) *Shape {
	s := NewShape(x, y)
	d.shapes = append(d.shapes, s)
	return s
}

// Len returns the number of shapes.
func (d *Drawing) Len() int {
	return len(d.shapes)
}

// Empty returns true if the drawing has no shapes.
func (d *Drawing) Empty() bool {
	return len(d.shapes) == 0
}

// Shape returns the i-th shape.
func (d *Drawing) Shape(i int) *Shape {
	return d.shapes[i]
}

// Shapes returns the shapes in paint order. The slice is a copy, the shapes are not.
func (d *Drawing) Shapes() []*Shape {
	return append([]*Shape{}, d.shapes...)
}

// Copy returns a deep copy.
func (d *Drawing) Copy() *Drawing {
	q := &Drawing{shapes: make([]*Shape, len(d.shapes))}
	for i, s := range d.shapes {
		q.shapes[i] = s.Copy()
	}
	return q
}

// Equals returns true if both drawings are structurally equal: the same shapes with the same handles, kinds, coordinates and segment boundaries.
func (d *Drawing) Equals(q *Drawing) bool {
	if len(d.shapes) != len(q.shapes) {
		return false
	}
	for i := range d.shapes {
		if !d.shapes[i].Equals(q.shapes[i]) {
			return false
		}
	}
	return true
}

// String serializes the drawing to the m/l/b text format.
func (d *Drawing) String() string {
	var buf []byte
	for i, s := range d.shapes {
		if i != 0 {
			buf = append(buf, ' ')
		}
		buf = s.appendText(buf)
	}
	return string(buf)
}
