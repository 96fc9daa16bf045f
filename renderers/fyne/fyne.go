package fyne

import (
	"image"

	"fyne.io/fyne/v2"
	fyneCanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
	"github.com/tdewolff/assdraw/renderers/rasterizer"
)

var (
	_ fyne.Widget       = (*Editor)(nil)
	_ fyne.Scrollable   = (*Editor)(nil)
	_ fyne.Focusable    = (*Editor)(nil)
	_ fyne.Tabbable     = (*Editor)(nil)
	_ fyne.Draggable    = (*Editor)(nil)
	_ desktop.Mouseable = (*Editor)(nil)
	_ desktop.Hoverable = (*Editor)(nil)
	_ desktop.Keyable   = (*Editor)(nil)
)

// Editor is a fyne widget that forwards mouse, wheel and keyboard input to an editor session and shows its rasterized frames.
// Screen coordinates of the session are fyne's device independent units.
type Editor struct {
	widget.BaseWidget
	session *editor.Session
	raster  *fyneCanvas.Raster
	mods    editor.Modifier
	opts    rasterizer.Options

	// OnChanged is called after the session repainted, for example to update a status line.
	OnChanged func()
}

// NewEditor returns a widget editing the session. The session's OnRepaint is taken over by the widget.
func NewEditor(s *editor.Session) *Editor {
	e := &Editor{
		session: s,
		opts:    rasterizer.DefaultOptions,
	}
	e.raster = fyneCanvas.NewRaster(e.draw)
	s.OnRepaint = e.repaint
	e.ExtendBaseWidget(e)
	return e
}

// Session returns the session being edited.
func (e *Editor) Session() *editor.Session {
	return e.session
}

func (e *Editor) repaint() {
	e.raster.Refresh()
	if e.OnChanged != nil {
		e.OnChanged()
	}
}

// draw renders the frame at w by h pixels, which may be more than the widget size on high density displays.
func (e *Editor) draw(w, h int) image.Image {
	opts := e.opts
	if size := e.Size(); 0.0 < size.Width {
		opts.Scale = float64(w) / float64(size.Width)
	}
	return rasterizer.DrawFrame(e.session, w, h, &opts)
}

// CreateRenderer is a private method to fyne which links this widget to its renderer.
func (e *Editor) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(e.raster)
}

// MinSize returns the minimal size of the editor.
func (e *Editor) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (e *Editor) pointer(ev *desktop.MouseEvent) editor.PointerEvent {
	return editor.PointerEvent{
		Button: mouseButton(ev.Button),
		Mods:   e.mods | modifiers(ev.Modifier),
		Screen: point(ev.Position),
	}
}

// MouseDown forwards a button press.
func (e *Editor) MouseDown(ev *desktop.MouseEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(e); c != nil {
		c.Focus(e)
	}
	e.session.PointerDown(e.pointer(ev))
}

// MouseUp forwards a button release.
func (e *Editor) MouseUp(ev *desktop.MouseEvent) {
	e.session.PointerUp(e.pointer(ev))
}

// MouseIn forwards the pointer entering the widget.
func (e *Editor) MouseIn(ev *desktop.MouseEvent) {
	e.session.PointerMove(e.pointer(ev))
}

// MouseMoved forwards pointer motion.
func (e *Editor) MouseMoved(ev *desktop.MouseEvent) {
	e.session.PointerMove(e.pointer(ev))
}

// MouseOut clears the hover position.
func (e *Editor) MouseOut() {
	e.session.PointerLeave()
}

// Dragged forwards pointer motion while the primary button is held.
func (e *Editor) Dragged(ev *fyne.DragEvent) {
	e.session.PointerMove(editor.PointerEvent{
		Button: editor.ButtonPrimary,
		Mods:   e.mods,
		Screen: point(ev.Position),
	})
}

// DragEnd is called at the end of a drag, the button release is handled by MouseUp.
func (e *Editor) DragEnd() {}

// Scrolled zooms the view around the pointer.
func (e *Editor) Scrolled(ev *fyne.ScrollEvent) {
	// fyne scrolls away from the user for a positive DY
	e.session.Wheel(editor.WheelEvent{
		DeltaY: -float64(ev.Scrolled.DY),
		Screen: point(ev.Position),
	})
}

// FocusGained is called when the editor receives keyboard focus.
func (e *Editor) FocusGained() {}

// FocusLost drops the held modifiers, their release will not be seen.
func (e *Editor) FocusLost() {
	e.mods = 0
}

// AcceptsTab makes Tab cycle the shapes instead of moving the focus.
func (e *Editor) AcceptsTab() bool {
	return true
}

// TypedRune is ignored, keys are handled by TypedKey.
func (e *Editor) TypedRune(rune) {}

// TypedKey forwards a key press to the session.
func (e *Editor) TypedKey(ev *fyne.KeyEvent) {
	e.session.KeyDown(editor.Key(ev.Name), e.mods)
}

// KeyDown tracks the held modifiers.
func (e *Editor) KeyDown(ev *fyne.KeyEvent) {
	e.mods |= modifierKey(ev.Name)
}

// KeyUp tracks the held modifiers.
func (e *Editor) KeyUp(ev *fyne.KeyEvent) {
	e.mods &^= modifierKey(ev.Name)
}

func point(pos fyne.Position) assdraw.Point {
	return assdraw.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func mouseButton(b desktop.MouseButton) editor.Button {
	switch {
	case b&desktop.MouseButtonSecondary != 0:
		return editor.ButtonSecondary
	case b&desktop.MouseButtonTertiary != 0:
		return editor.ButtonMiddle
	}
	return editor.ButtonPrimary
}

func modifiers(m fyne.KeyModifier) editor.Modifier {
	var mods editor.Modifier
	if m&fyne.KeyModifierShift != 0 {
		mods |= editor.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		mods |= editor.ModControl
	}
	if m&fyne.KeyModifierAlt != 0 {
		mods |= editor.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		mods |= editor.ModSuper
	}
	return mods
}

func modifierKey(name fyne.KeyName) editor.Modifier {
	switch name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return editor.ModShift
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		return editor.ModControl
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		return editor.ModAlt
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		return editor.ModSuper
	}
	return 0
}
