package editor

import (
	"fmt"

	"github.com/tdewolff/assdraw"
)

// Session is the state of one editor: the drawing, the current shape, the view, the current tool and the tool holding the pointer capture.
// It is not safe for concurrent use, events must be delivered from a single goroutine.
type Session struct {
	drawing *assdraw.Drawing
	opts    *Options
	view    assdraw.ViewMatrix

	tools      []Tool
	tool       Tool
	captured   Tool
	pan        *PanTool
	moveHandle *MoveHandleTool
	current    int

	hover    assdraw.Point
	hovering bool

	// OnRepaint is called whenever the session state changed in a way visible on screen.
	OnRepaint func()
}

// NewSession returns a session editing d, which may be nil for an empty drawing. Passing nil options uses DefaultOptions. The pan tool is selected initially.
func NewSession(d *assdraw.Drawing, opts *Options) *Session {
	if d == nil {
		d = assdraw.NewDrawing()
	}
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	s := &Session{
		drawing: d,
		opts:    opts,
		view:    assdraw.Identity,
	}
	s.pan = newPanTool(s)
	s.moveHandle = newMoveHandleTool(s)
	s.tools = []Tool{
		s.pan,
		newMoveShapeTool(s),
		newCreateShapeTool(s),
		newAppendLineTool(s),
		newAppendBezierTool(s),
		s.moveHandle,
	}
	s.tool = s.pan
	s.tool.Init(nil)
	return s
}

// Drawing returns the drawing being edited.
func (s *Session) Drawing() *assdraw.Drawing {
	return s.drawing
}

// Options returns the session's options.
func (s *Session) Options() *Options {
	return s.opts
}

// Tools returns the tools in selection order, the index being the one used by SelectTool.
func (s *Session) Tools() []Tool {
	return append([]Tool{}, s.tools...)
}

// CurrentTool returns the selected tool.
func (s *Session) CurrentTool() Tool {
	return s.tool
}

// Captured returns the tool holding the pointer capture, or nil.
func (s *Session) Captured() Tool {
	return s.captured
}

// SwitchTool selects the tool by its id. The outgoing tool is closed and the new one is initialized with the previous tool.
func (s *Session) SwitchTool(id string) error {
	for _, t := range s.tools {
		if t.ID() == id {
			s.setTool(t)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTool, id)
}

// SelectTool selects the i-th tool of Tools.
func (s *Session) SelectTool(i int) error {
	if i < 0 || len(s.tools) <= i {
		return fmt.Errorf("%w: index %d", ErrInvalidTool, i)
	}
	s.setTool(s.tools[i])
	return nil
}

func (s *Session) setTool(t Tool) {
	prev := s.tool
	prev.Close()
	s.tool = t
	t.Init(prev)
	assdraw.Logger().Debug("switch tool", "from", prev.ID(), "to", t.ID())
	s.repaint()
}

// CurrentShape returns the current shape, or nil if the drawing is empty.
func (s *Session) CurrentShape() *assdraw.Shape {
	if s.current < 0 || s.drawing.Len() <= s.current {
		return nil
	}
	return s.drawing.Shape(s.current)
}

// CurrentShapeIndex returns the index of the current shape.
func (s *Session) CurrentShapeIndex() int {
	return s.current
}

// SetCurrentShape selects the i-th shape, wrapping around at both ends, and re-initializes the current tool.
func (s *Session) SetCurrentShape(i int) {
	if n := s.drawing.Len(); n == 0 {
		i = 0
	} else if i = i % n; i < 0 {
		i += n
	}
	s.current = i
	s.releaseCapture()
	s.tool.Init(s.tool)
	s.repaint()
}

// NextShape selects the shape after the current one.
func (s *Session) NextShape() {
	s.SetCurrentShape(s.current + 1)
}

// PrevShape selects the shape before the current one.
func (s *Session) PrevShape() {
	s.SetCurrentShape(s.current - 1)
}

// View returns the world-to-screen transformation.
func (s *Session) View() assdraw.ViewMatrix {
	return s.view
}

// SetView sets the world-to-screen transformation. Its scale is clamped to [MinScale,MaxScale] and a zero scale becomes MinScale.
func (s *Session) SetView(m assdraw.ViewMatrix) {
	s.view = m.ClampScale(s.opts.MinScale, s.opts.MaxScale)
	s.repaint()
}

// ResetView resets the view to the identity.
func (s *Session) ResetView() {
	s.SetView(assdraw.Identity)
}

// Hover returns the last pointer position in world coordinates, and false if the pointer is not over the editor.
func (s *Session) Hover() (assdraw.Point, bool) {
	return s.hover, s.hovering
}

// route returns the tool that receives a pointer down. The pan and move handle bindings take precedence over the current tool.
func (s *Session) route(ev PointerEvent) Tool {
	switch {
	case ev.Button == s.opts.PanButton:
		return s.pan
	case s.opts.PanModifier != 0 && ev.Mods&s.opts.PanModifier == s.opts.PanModifier:
		return s.pan
	case s.opts.MoveHandleModifier != 0 && ev.Mods&s.opts.MoveHandleModifier == s.opts.MoveHandleModifier:
		return s.moveHandle
	}
	return s.tool
}

// PointerDown handles a button press at a screen position and returns true if a tool captured the pointer.
func (s *Session) PointerDown(ev PointerEvent) bool {
	pt := s.view.Invert(ev.Screen)
	s.hover, s.hovering = pt, true

	t := s.captured
	if t == nil {
		t = s.route(ev)
	}
	captured := t.PointerDown(ev, pt)
	if captured && s.captured == nil {
		assdraw.Logger().Debug("capture pointer", "tool", t.ID())
		s.captured = t
	}
	s.repaint()
	return captured
}

// PointerMove handles pointer motion. A captured tool receives the event, otherwise only the hover position is updated.
func (s *Session) PointerMove(ev PointerEvent) {
	pt := s.view.Invert(ev.Screen)
	s.hover, s.hovering = pt, true
	if s.captured != nil {
		s.captured.PointerMove(ev, pt)
	}
	s.repaint()
}

// PointerUp handles a button release and returns true if the pointer is still captured afterwards.
func (s *Session) PointerUp(ev PointerEvent) bool {
	pt := s.view.Invert(ev.Screen)
	s.hover, s.hovering = pt, true
	if s.captured == nil {
		return false
	}
	if !s.captured.PointerUp(ev, pt) {
		assdraw.Logger().Debug("release pointer", "tool", s.captured.ID())
		s.captured = nil
	}
	s.repaint()
	return s.captured != nil
}

// PointerLeave clears the hover position.
func (s *Session) PointerLeave() {
	if s.hovering {
		s.hovering = false
		s.repaint()
	}
}

// Wheel zooms in for a negative DeltaY and out for a positive one, keeping the world point under the pointer fixed.
func (s *Session) Wheel(ev WheelEvent) {
	if ev.DeltaY == 0.0 {
		return
	}
	f := s.opts.ZoomFactor
	if 0.0 < ev.DeltaY {
		f = 1.0 / f
	}
	a, _ := s.view.Scale()
	s.view = s.view.Zoom(f, ev.Screen, s.opts.MinScale, s.opts.MaxScale)
	if b, _ := s.view.Scale(); b != a*f {
		assdraw.Logger().Debug("clamp zoom", "scale", b)
	}
	s.repaint()
}

// KeyDown handles a key press and returns true if the key was used. Tab cycles through the shapes, Space resets the view and the digits select a tool.
func (s *Session) KeyDown(key Key, mods Modifier) bool {
	switch key {
	case KeyTab:
		if mods&ModShift != 0 {
			s.PrevShape()
		} else {
			s.NextShape()
		}
		return true
	case KeySpace:
		s.ResetView()
		return true
	}
	if len(key) == 1 && '0' <= key[0] && key[0] <= '9' {
		i := int(key[0]-'0') - 1
		if i < 0 {
			i = 9
		}
		if err := s.SelectTool(i); err != nil {
			assdraw.Logger().Warn("select tool", "key", string(key), "err", err)
			return false
		}
		return true
	}
	return false
}

// Load replaces the drawing by the parsed text. On error the drawing is left untouched.
func (s *Session) Load(text string) error {
	d, err := assdraw.Parse(text)
	if err != nil {
		assdraw.Logger().Warn("load drawing", "err", err)
		return err
	}
	s.drawing = d
	s.releaseCapture()
	if s.drawing.Len() <= s.current {
		s.current = s.drawing.Len() - 1
	}
	s.tool.Init(s.tool)
	s.repaint()
	return nil
}

// Export serializes the drawing.
func (s *Session) Export() string {
	return s.drawing.String()
}

// releaseCapture resets the tool holding the capture, dropping its drag state.
func (s *Session) releaseCapture() {
	if s.captured != nil {
		s.captured.Init(s.captured)
		s.captured = nil
	}
}

func (s *Session) repaint() {
	if s.OnRepaint != nil {
		s.OnRepaint()
	}
}
