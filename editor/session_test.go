package editor

import (
	"errors"
	"testing"

	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/test"
)

func press(b Button, x, y float64) PointerEvent {
	return PointerEvent{Button: b, Screen: assdraw.Point{X: x, Y: y}}
}

func click(s *Session, x, y float64) {
	s.PointerDown(press(ButtonPrimary, x, y))
	s.PointerUp(press(ButtonPrimary, x, y))
}

func TestSessionTools(t *testing.T) {
	s := NewSession(nil, nil)
	test.String(t, s.CurrentTool().ID(), "pan")

	var ids, icons string
	for _, tool := range s.Tools() {
		ids += tool.ID() + " "
		icons += tool.Icon()
	}
	test.String(t, ids, "pan moveshape newshape line bezier movehandle ")
	test.String(t, icons, "PDMLBm")

	test.Error(t, s.SwitchTool("bezier"))
	test.String(t, s.CurrentTool().ID(), "bezier")

	err := s.SwitchTool("lasso")
	test.That(t, errors.Is(err, ErrInvalidTool))
	test.String(t, s.CurrentTool().ID(), "bezier")

	test.That(t, errors.Is(s.SelectTool(6), ErrInvalidTool))
	test.Error(t, s.SelectTool(1))
	test.String(t, s.CurrentTool().ID(), "moveshape")
}

type recordingTool struct {
	toolInfo
	inits  []Tool
	closed int
}

func (t *recordingTool) Init(prev Tool) { t.inits = append(t.inits, prev) }
func (t *recordingTool) Close()         { t.closed++ }
func (t *recordingTool) PointerDown(PointerEvent, assdraw.Point) bool {
	return false
}
func (t *recordingTool) PointerMove(PointerEvent, assdraw.Point) {}
func (t *recordingTool) PointerUp(PointerEvent, assdraw.Point) bool {
	return false
}

func TestSessionSwitchSequence(t *testing.T) {
	s := NewSession(nil, nil)
	a := &recordingTool{toolInfo: toolInfo{id: "a"}}
	b := &recordingTool{toolInfo: toolInfo{id: "b"}}
	s.tools = append(s.tools, a, b)

	repaints := 0
	s.OnRepaint = func() { repaints++ }

	test.Error(t, s.SwitchTool("a"))
	test.Error(t, s.SwitchTool("b"))
	test.T(t, a.closed, 1)
	test.T(t, len(b.inits), 1)
	test.That(t, b.inits[0] == Tool(a))
	test.T(t, repaints, 2)
}

func TestSessionCreateShape(t *testing.T) {
	s := NewSession(nil, nil)
	test.Error(t, s.SwitchTool("newshape"))

	s.SetView(assdraw.ViewMatrix{2, 0, 0, 2, 10, 10})
	click(s, 30.8, 50)
	test.String(t, s.CurrentTool().ID(), "line")
	test.T(t, s.Drawing().Len(), 1)
	test.T(t, s.CurrentShape().Origin(), assdraw.Handle{Kind: assdraw.Origin, X: 10, Y: 20})

	click(s, 10, 10)
	click(s, 50, 10)
	test.String(t, s.Export(), "m 10 20 l 0 0 20 0")

	test.Error(t, s.SwitchTool("bezier"))
	click(s, 16, 70)
	test.String(t, s.Export(), "m 10 20 l 0 0 20 0 b 14 10 9 20 3 30")

	test.Error(t, s.SwitchTool("newshape"))
	click(s, 10, 10)
	test.T(t, s.Drawing().Len(), 2)
	test.T(t, s.CurrentShapeIndex(), 1)
	test.String(t, s.CurrentTool().ID(), "line")
}

func TestSessionIgnoresOtherButtons(t *testing.T) {
	s := NewSession(assdraw.MustParse("m 0 0"), nil)
	test.Error(t, s.SwitchTool("line"))
	s.PointerDown(press(ButtonMiddle, 5, 5))
	s.PointerUp(press(ButtonMiddle, 5, 5))
	test.String(t, s.Export(), "m 0 0")
}

func TestSessionPan(t *testing.T) {
	s := NewSession(assdraw.MustParse("m 0 0 l 10 0"), nil)
	test.Error(t, s.SwitchTool("line"))

	// secondary button pans whatever the current tool
	test.That(t, s.PointerDown(press(ButtonSecondary, 10, 10)))
	test.That(t, s.Captured() == Tool(s.pan))
	s.PointerMove(press(ButtonSecondary, 15, 7))
	s.PointerMove(press(ButtonSecondary, 20, 4))
	test.T(t, s.View(), assdraw.ViewMatrix{1, 0, 0, 1, 10, -6})

	// releasing another button keeps the drag
	test.That(t, s.PointerUp(press(ButtonPrimary, 20, 4)))
	test.That(t, !s.PointerUp(press(ButtonSecondary, 20, 4)))
	test.That(t, s.Captured() == nil)
	test.String(t, s.CurrentTool().ID(), "line")
	test.String(t, s.Export(), "m 0 0 l 10 0")

	// panning is in screen space
	s.SetView(assdraw.ViewMatrix{4, 0, 0, 4, 0, 0})
	s.PointerDown(press(ButtonSecondary, 0, 0))
	s.PointerMove(press(ButtonSecondary, 8, 8))
	s.PointerUp(press(ButtonSecondary, 8, 8))
	test.T(t, s.View(), assdraw.ViewMatrix{4, 0, 0, 4, 8, 8})
}

func TestSessionPanModifier(t *testing.T) {
	opts := DefaultOptions
	opts.PanModifier = ModControl
	s := NewSession(assdraw.MustParse("m 0 0"), &opts)
	test.Error(t, s.SwitchTool("line"))

	s.PointerDown(PointerEvent{Button: ButtonPrimary, Mods: ModControl, Screen: assdraw.Point{X: 0, Y: 0}})
	s.PointerMove(PointerEvent{Button: ButtonPrimary, Screen: assdraw.Point{X: 3, Y: 4}})
	s.PointerUp(PointerEvent{Button: ButtonPrimary, Screen: assdraw.Point{X: 3, Y: 4}})
	test.T(t, s.View(), assdraw.ViewMatrix{1, 0, 0, 1, 3, 4})
	test.String(t, s.Export(), "m 0 0")
}

func TestSessionMoveShape(t *testing.T) {
	s := NewSession(assdraw.MustParse("m 0 0 l 10 0 m 100 100"), nil)
	test.Error(t, s.SwitchTool("moveshape"))
	s.SetView(assdraw.ViewMatrix{2, 0, 0, 2, 0, 0})

	test.That(t, s.PointerDown(press(ButtonPrimary, 0, 0)))
	s.PointerMove(press(ButtonPrimary, 1, 1)) // half a world unit, rounds to one
	s.PointerMove(press(ButtonPrimary, 2, 2))
	s.PointerMove(press(ButtonPrimary, 3, 3))
	test.That(t, !s.PointerUp(press(ButtonPrimary, 3, 3)))
	test.String(t, s.Export(), "m 2 2 l 12 2 m 100 100")

	s.PointerMove(press(ButtonPrimary, 100, 100))
	test.String(t, s.Export(), "m 2 2 l 12 2 m 100 100")
}

func TestSessionMoveHandle(t *testing.T) {
	s := NewSession(assdraw.MustParse("m 0 0 l 10 0 l 10 10"), nil)
	test.Error(t, s.SwitchTool("movehandle"))

	// too far from any handle
	test.That(t, !s.PointerDown(press(ButtonPrimary, 5, 5)))

	test.That(t, s.PointerDown(press(ButtonPrimary, 9, 1)))
	s.PointerMove(press(ButtonPrimary, 20.4, -3.6))
	test.That(t, !s.PointerUp(press(ButtonPrimary, 20.4, -3.6)))
	test.String(t, s.Export(), "m 0 0 l 20 -4 10 10")

	// grab radius is in screen pixels
	s.SetView(assdraw.ViewMatrix{0.5, 0, 0, 0.5, 0, 0})
	test.That(t, s.PointerDown(press(ButtonPrimary, 5, 8)))
	s.PointerUp(press(ButtonPrimary, 5, 8))
	s.SetView(assdraw.ViewMatrix{10, 0, 0, 10, 0, 0})
	test.That(t, !s.PointerDown(press(ButtonPrimary, 105, 100)))
	test.That(t, s.PointerDown(press(ButtonPrimary, 103, 100)))
	s.PointerUp(press(ButtonPrimary, 103, 100))
	test.String(t, s.Export(), "m 0 0 l 20 -4 10 10")
}

func TestSessionMoveHandleModifier(t *testing.T) {
	s := NewSession(assdraw.MustParse("m 0 0 l 10 0"), nil)
	test.Error(t, s.SwitchTool("line"))

	ev := PointerEvent{Button: ButtonPrimary, Mods: ModShift, Screen: assdraw.Point{X: 10, Y: 1}}
	test.That(t, s.PointerDown(ev))
	test.That(t, s.Captured() == Tool(s.moveHandle))
	ev.Mods = 0
	ev.Screen = assdraw.Point{X: 12, Y: 3}
	s.PointerMove(ev)
	s.PointerUp(ev)
	test.String(t, s.Export(), "m 0 0 l 12 3")
	test.String(t, s.CurrentTool().ID(), "line")
}

func TestSessionWheel(t *testing.T) {
	s := NewSession(nil, nil)
	p := assdraw.Point{X: 40, Y: 30}
	w := s.View().Invert(p)

	for i := 0; i < 3; i++ {
		s.Wheel(WheelEvent{DeltaY: -1, Screen: p})
	}
	a, _ := s.View().Scale()
	test.Float(t, a, 1.1*1.1*1.1)
	test.That(t, s.View().Invert(p).Equals(w))

	for i := 0; i < 3; i++ {
		s.Wheel(WheelEvent{DeltaY: 1, Screen: p})
	}
	test.That(t, s.View().Equals(assdraw.Identity, 1e-9), s.View())

	for i := 0; i < 100; i++ {
		s.Wheel(WheelEvent{DeltaY: 1, Screen: p})
	}
	a, _ = s.View().Scale()
	test.Float(t, a, DefaultOptions.MinScale)
	test.That(t, s.View().Invert(p).Equals(w))
}

func TestSessionKeys(t *testing.T) {
	s := NewSession(assdraw.MustParse("m 0 0 m 1 1 m 2 2"), nil)

	test.That(t, s.KeyDown(KeyTab, 0))
	test.T(t, s.CurrentShapeIndex(), 1)
	test.That(t, s.KeyDown(KeyTab, ModShift))
	test.That(t, s.KeyDown(KeyTab, ModShift))
	test.T(t, s.CurrentShapeIndex(), 2)
	test.That(t, s.KeyDown(KeyTab, 0))
	test.T(t, s.CurrentShapeIndex(), 0)

	test.That(t, s.KeyDown("5", 0))
	test.String(t, s.CurrentTool().ID(), "bezier")
	test.That(t, s.KeyDown("1", 0))
	test.String(t, s.CurrentTool().ID(), "pan")
	test.That(t, !s.KeyDown("0", 0))
	test.That(t, !s.KeyDown("7", 0))
	test.String(t, s.CurrentTool().ID(), "pan")
	test.That(t, !s.KeyDown("A", 0))

	s.SetView(assdraw.ViewMatrix{3, 0, 0, 3, 5, 5})
	test.That(t, s.KeyDown(KeySpace, 0))
	test.T(t, s.View(), assdraw.Identity)
}

func TestSessionLoad(t *testing.T) {
	s := NewSession(assdraw.MustParse("m 0 0 m 1 1 m 2 2"), nil)
	s.SetCurrentShape(2)

	err := s.Load("l 1 2")
	test.That(t, errors.Is(err, assdraw.ErrMalformedInput))
	test.String(t, s.Export(), "m 0 0 m 1 1 m 2 2")
	test.T(t, s.CurrentShapeIndex(), 2)

	// a capture is dropped by a successful load
	test.That(t, s.PointerDown(press(ButtonSecondary, 0, 0)))
	test.Error(t, s.Load("m 5 5 l 6 6"))
	test.That(t, s.Captured() == nil)
	test.T(t, s.CurrentShapeIndex(), 0)
	test.String(t, s.Export(), "m 5 5 l 6 6")
}

func TestSessionHover(t *testing.T) {
	s := NewSession(assdraw.MustParse("m 0 0"), nil)
	_, ok := s.Hover()
	test.That(t, !ok)

	s.SetView(assdraw.ViewMatrix{2, 0, 0, 2, 0, 0})
	s.PointerMove(press(ButtonPrimary, 8, 6))
	p, ok := s.Hover()
	test.That(t, ok)
	test.T(t, p, assdraw.Point{X: 4, Y: 3})

	s.PointerDown(press(ButtonSecondary, 8, 6))
	s.PointerMove(press(ButtonSecondary, 12, 6))
	p, ok = s.Hover()
	test.That(t, ok)
	test.T(t, p, assdraw.Point{X: 6, Y: 3})
	s.PointerUp(press(ButtonSecondary, 12, 6))

	s.PointerLeave()
	_, ok = s.Hover()
	test.That(t, !ok)
}

func TestSessionDefaultOptions(t *testing.T) {
	s := NewSession(nil, nil)
	s.Options().GrabRadius = 50.0
	test.Float(t, DefaultOptions.GrabRadius, 4.0)
	test.Float(t, NewSession(nil, nil).Options().GrabRadius, 4.0)
}

func TestSessionSetViewClamp(t *testing.T) {
	s := NewSession(nil, nil)
	s.SetView(assdraw.ViewMatrix{})
	a, d := s.View().Scale()
	test.Float(t, a, DefaultOptions.MinScale)
	test.Float(t, d, DefaultOptions.MinScale)

	test.Error(t, s.SwitchTool("newshape"))
	click(s, 1, 2)
	test.String(t, s.Export(), "m 100 200")

	s.SetView(assdraw.ViewMatrix{1000, 0, 0, -0.001, 5, 5})
	a, d = s.View().Scale()
	test.Float(t, a, DefaultOptions.MaxScale)
	test.Float(t, d, -DefaultOptions.MinScale)
}
