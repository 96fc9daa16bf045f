package editor

import "github.com/tdewolff/assdraw"

// ShapeStyle selects how a shape is painted.
type ShapeStyle struct {
	Current bool // the shape being edited
	Stroke  bool // outline the shape in addition to filling it
}

// Painter receives a frame. SetView is called before any shape or handle, coordinates passed afterwards are in world units.
// Shapes are closed and filled with the even-odd rule.
type Painter interface {
	Clear()
	SetView(m assdraw.ViewMatrix)
	PaintShape(s *assdraw.Shape, style ShapeStyle)
	PaintHandle(h assdraw.Handle, grabbed bool)
}

// Paint composes the current frame. The current shape is painted last, and the handles of the current shape near the hover position are shown unless the active tool hides them. The captured tool, if any, is the active one.
func (s *Session) Paint(p Painter) {
	p.Clear()
	p.SetView(s.view)

	tool := s.tool
	if s.captured != nil {
		tool = s.captured
	}
	flatten := tool.ShowFlattenedShape()
	current := s.CurrentShape()
	for _, shape := range s.drawing.Shapes() {
		if shape != current {
			p.PaintShape(shape, ShapeStyle{Stroke: !flatten})
		}
	}
	if current == nil {
		return
	}
	p.PaintShape(current, ShapeStyle{Current: !flatten, Stroke: !flatten})

	hover, ok := s.Hover()
	if !ok || tool.HideHandles() {
		return
	}
	grab, grabbed := current.NearestHandle(hover, s.view.ScreenToWorld(s.opts.GrabRadius))
	current.HandlesWithin(hover, s.view.ScreenToWorld(s.opts.VisibleRadius), func(i int, h assdraw.Handle, _ float64) {
		p.PaintHandle(h, grabbed && i == grab)
	})
}
