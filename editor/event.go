package editor

import "github.com/tdewolff/assdraw"

// PointerEvent is a mouse event in screen coordinates.
type PointerEvent struct {
	Button Button
	Mods   Modifier
	Screen assdraw.Point
}

// WheelEvent is a scroll event at a screen position. A negative DeltaY scrolls towards the user and zooms in.
type WheelEvent struct {
	DeltaY float64
	Screen assdraw.Point
}

// Key names a keyboard key. The names match those of fyne key events.
type Key string

// See Key, also "0" through "9" are recognized for tool selection.
const (
	KeyTab   Key = "Tab"
	KeySpace Key = "Space"
)
