package editor

// Button identifies a pointer button, numbered like DOM mouse events.
type Button int

// See Button.
const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// Modifier is a bit set of held modifier keys.
type Modifier int

// See Modifier.
const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Options configures a Session. Radii are in screen pixels and converted to world units with the current view scale.
type Options struct {
	ZoomFactor         float64  // scale multiplier per wheel step towards the user, the opposite direction uses its reciprocal
	MinScale, MaxScale float64  // clamp of the view scale
	GrabRadius         float64  // distance within which a handle can be grabbed
	VisibleRadius      float64  // distance within which handles are shown around the pointer
	PanButton          Button   // button that pans regardless of the selected tool
	PanModifier        Modifier // modifier that pans regardless of the selected tool, zero to disable
	MoveHandleModifier Modifier // modifier that moves handles regardless of the selected tool, zero to disable
}

// DefaultOptions are the options used when nil is passed to NewSession.
var DefaultOptions = Options{
	ZoomFactor:         1.1,
	MinScale:           0.01,
	MaxScale:           100.0,
	GrabRadius:         4.0,
	VisibleRadius:      110.0,
	PanButton:          ButtonSecondary,
	MoveHandleModifier: ModShift,
}
