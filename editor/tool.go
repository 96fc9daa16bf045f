package editor

import (
	"errors"

	"github.com/tdewolff/assdraw"
)

// ErrInvalidTool is returned when selecting a tool by an unknown id or an out of range index.
var ErrInvalidTool = errors.New("invalid tool")

// Tool is an interaction mode of the editor. PointerDown returning true captures the pointer: move and up events go to this tool until PointerUp returns false.
// Points passed to the pointer methods are in world coordinates.
type Tool interface {
	ID() string
	Name() string
	Icon() string

	// HideHandles is true if no handle markers are shown while the tool is active.
	HideHandles() bool
	// ShowFlattenedShape is true if shapes are painted filled only, without highlighting the current one.
	ShowFlattenedShape() bool

	Init(prev Tool)
	Close()
	PointerDown(ev PointerEvent, pt assdraw.Point) bool
	PointerMove(ev PointerEvent, pt assdraw.Point)
	PointerUp(ev PointerEvent, pt assdraw.Point) bool
}

// toolInfo implements the descriptive part of Tool.
type toolInfo struct {
	id, name, icon       string
	hideHandles, flatten bool
}

func (t *toolInfo) ID() string               { return t.id }
func (t *toolInfo) Name() string             { return t.name }
func (t *toolInfo) Icon() string             { return t.icon }
func (t *toolInfo) HideHandles() bool        { return t.hideHandles }
func (t *toolInfo) ShowFlattenedShape() bool { return t.flatten }
func (t *toolInfo) Close()                   {}

////////////////////////////////////////////////////////////////

// PanTool drags the view. The pointer delta is applied in screen space so panning speed does not depend on zoom.
type PanTool struct {
	toolInfo
	s *Session

	dragging bool
	button   Button
	anchor   assdraw.Point
}

func newPanTool(s *Session) *PanTool {
	return &PanTool{
		toolInfo: toolInfo{id: "pan", name: "Pan", icon: "P", hideHandles: true, flatten: true},
		s:        s,
	}
}

func (t *PanTool) Init(Tool) {
	t.dragging = false
}

func (t *PanTool) PointerDown(ev PointerEvent, _ assdraw.Point) bool {
	if t.dragging {
		return true
	}
	t.dragging = true
	t.button = ev.Button
	t.anchor = ev.Screen
	return true
}

func (t *PanTool) PointerMove(ev PointerEvent, _ assdraw.Point) {
	if t.dragging {
		d := ev.Screen.Sub(t.anchor)
		t.anchor = ev.Screen
		t.s.view = t.s.view.Translate(d.X, d.Y)
	}
}

func (t *PanTool) PointerUp(ev PointerEvent, _ assdraw.Point) bool {
	if t.dragging && ev.Button == t.button {
		t.dragging = false
	}
	return t.dragging
}

////////////////////////////////////////////////////////////////

// MoveShapeTool drags the current shape. Translation is applied in whole world units, the remainder is kept in the anchor.
type MoveShapeTool struct {
	toolInfo
	s *Session

	dragging bool
	anchor   assdraw.Point
}

func newMoveShapeTool(s *Session) *MoveShapeTool {
	return &MoveShapeTool{
		toolInfo: toolInfo{id: "moveshape", name: "Move shape", icon: "D", hideHandles: true},
		s:        s,
	}
}

func (t *MoveShapeTool) Init(Tool) {
	t.dragging = false
}

func (t *MoveShapeTool) PointerDown(ev PointerEvent, pt assdraw.Point) bool {
	if ev.Button != ButtonPrimary || t.s.CurrentShape() == nil {
		return false
	}
	t.dragging = true
	t.anchor = pt
	return true
}

func (t *MoveShapeTool) PointerMove(_ PointerEvent, pt assdraw.Point) {
	shape := t.s.CurrentShape()
	if !t.dragging || shape == nil {
		return
	}
	dx, dy := pt.Sub(t.anchor).Round()
	if dx != 0 || dy != 0 {
		shape.Translate(dx, dy)
		t.anchor = t.anchor.Add(assdraw.Pt(dx, dy))
	}
}

func (t *MoveShapeTool) PointerUp(ev PointerEvent, _ assdraw.Point) bool {
	if ev.Button == ButtonPrimary {
		t.dragging = false
	}
	return t.dragging
}

////////////////////////////////////////////////////////////////

// CreateShapeTool starts a new shape at the clicked point and switches to AppendLineTool.
type CreateShapeTool struct {
	toolInfo
	s *Session
}

func newCreateShapeTool(s *Session) *CreateShapeTool {
	return &CreateShapeTool{
		toolInfo: toolInfo{id: "newshape", name: "Create shape", icon: "M", hideHandles: true, flatten: true},
		s:        s,
	}
}

func (t *CreateShapeTool) Init(Tool)                             {}
func (t *CreateShapeTool) PointerMove(PointerEvent, assdraw.Point) {}

func (t *CreateShapeTool) PointerDown(ev PointerEvent, pt assdraw.Point) bool {
	if ev.Button != ButtonPrimary {
		return false
	}
	x, y := pt.Round()
	t.s.drawing.AddShape(x, y)
	t.s.current = t.s.drawing.Len() - 1
	if err := t.s.SwitchTool("line"); err != nil {
		panic(err) // the line tool is always registered
	}
	return false
}

func (t *CreateShapeTool) PointerUp(PointerEvent, assdraw.Point) bool {
	return false
}

////////////////////////////////////////////////////////////////

// AppendLineTool appends a line to the clicked point to the current shape.
type AppendLineTool struct {
	toolInfo
	s *Session
}

func newAppendLineTool(s *Session) *AppendLineTool {
	return &AppendLineTool{
		toolInfo: toolInfo{id: "line", name: "Add lines", icon: "L"},
		s:        s,
	}
}

func (t *AppendLineTool) Init(Tool)                             {}
func (t *AppendLineTool) PointerMove(PointerEvent, assdraw.Point) {}

func (t *AppendLineTool) PointerDown(ev PointerEvent, pt assdraw.Point) bool {
	shape := t.s.CurrentShape()
	if ev.Button != ButtonPrimary || shape == nil {
		return false
	}
	shape.AddLine(pt.Round())
	return false
}

func (t *AppendLineTool) PointerUp(PointerEvent, assdraw.Point) bool {
	return false
}

////////////////////////////////////////////////////////////////

// AppendBezierTool appends a bezier to the clicked point to the current shape, with control points at one and two thirds of the way from the last handle.
type AppendBezierTool struct {
	toolInfo
	s *Session
}

func newAppendBezierTool(s *Session) *AppendBezierTool {
	return &AppendBezierTool{
		toolInfo: toolInfo{id: "bezier", name: "Add beziers", icon: "B"},
		s:        s,
	}
}

func (t *AppendBezierTool) Init(Tool)                             {}
func (t *AppendBezierTool) PointerMove(PointerEvent, assdraw.Point) {}

func (t *AppendBezierTool) PointerDown(ev PointerEvent, pt assdraw.Point) bool {
	shape := t.s.CurrentShape()
	if ev.Button != ButtonPrimary || shape == nil {
		return false
	}
	p0 := shape.Last().Point()
	x1, y1 := p0.Interpolate(pt, 1.0/3.0).Round()
	x2, y2 := p0.Interpolate(pt, 2.0/3.0).Round()
	x3, y3 := pt.Round()
	shape.AddBezier(x1, y1, x2, y2, x3, y3)
	return false
}

func (t *AppendBezierTool) PointerUp(PointerEvent, assdraw.Point) bool {
	return false
}

////////////////////////////////////////////////////////////////

// MoveHandleTool grabs the handle of the current shape nearest to the pointer and moves it along.
type MoveHandleTool struct {
	toolInfo
	s *Session

	shape  *assdraw.Shape
	handle int
}

func newMoveHandleTool(s *Session) *MoveHandleTool {
	return &MoveHandleTool{
		toolInfo: toolInfo{id: "movehandle", name: "Move handles", icon: "m"},
		s:        s,
	}
}

func (t *MoveHandleTool) Init(Tool) {
	t.shape = nil
}

func (t *MoveHandleTool) PointerDown(ev PointerEvent, pt assdraw.Point) bool {
	shape := t.s.CurrentShape()
	if ev.Button != ButtonPrimary || shape == nil {
		return false
	}
	i, ok := shape.NearestHandle(pt, t.s.view.ScreenToWorld(t.s.opts.GrabRadius))
	if !ok {
		return false
	}
	t.shape, t.handle = shape, i
	return true
}

func (t *MoveHandleTool) PointerMove(_ PointerEvent, pt assdraw.Point) {
	if t.shape != nil {
		x, y := pt.Round()
		t.shape.SetHandle(t.handle, x, y)
	}
}

func (t *MoveHandleTool) PointerUp(ev PointerEvent, _ assdraw.Point) bool {
	if ev.Button == ButtonPrimary {
		t.shape = nil
	}
	return t.shape != nil
}
