package editor

import (
	"image/color"

	"github.com/tdewolff/assdraw"
)

// Colors of an editor frame.
var (
	BackgroundColor     = color.NRGBA{255, 255, 255, 255}
	ShapeFillColor      = color.NRGBA{0xaa, 0xbb, 0xcc, 255}
	ShapeStrokeColor    = color.NRGBA{0, 0, 0, 128}
	CurrentFillColor    = color.NRGBA{0x88, 0xaa, 0x88, 255}
	CurrentStrokeColor  = color.NRGBA{0, 0, 0, 255}
	HandleFillColor     = color.NRGBA{250, 150, 150, 230}
	HandleStrokeColor   = color.NRGBA{150, 60, 60, 179}
	GrabbedFillColor    = color.NRGBA{150, 250, 250, 230}
	GrabbedStrokeColor  = color.NRGBA{60, 150, 150, 179}
	HandleStrokeWidth   = 1.0 // in screen pixels
	currentStrokeWidth  = 2.0
	inactiveStrokeWidth = 1.0
)

// FillColor returns the fill color of a shape.
func (style ShapeStyle) FillColor() color.NRGBA {
	if style.Current {
		return CurrentFillColor
	}
	return ShapeFillColor
}

// StrokeColor returns the outline color of a shape.
func (style ShapeStyle) StrokeColor() color.NRGBA {
	if style.Current {
		return CurrentStrokeColor
	}
	return ShapeStrokeColor
}

// StrokeWidth returns the outline width in screen pixels, lines are drawn with round caps and joins.
func (style ShapeStyle) StrokeWidth() float64 {
	if style.Current {
		return currentStrokeWidth
	}
	return inactiveStrokeWidth
}

// HandleColors returns the fill and stroke colors of a handle marker.
func HandleColors(grabbed bool) (color.NRGBA, color.NRGBA) {
	if grabbed {
		return GrabbedFillColor, GrabbedStrokeColor
	}
	return HandleFillColor, HandleStrokeColor
}

// circle control point distance for a quarter arc
const kappa = 0.5522847498307936

// HandleMarker outlines the marker of h in screen coordinates: a 5px square for line and bezier ends, a circle of radius 3px for control points and a diamond for the origin.
func HandleMarker(p assdraw.Pather, h assdraw.Handle, m assdraw.ViewMatrix) {
	c := m.Apply(h.Point())
	switch h.Kind {
	case assdraw.LineEnd, assdraw.BezierEnd:
		p.MoveTo(c.X-2.5, c.Y-2.5)
		p.LineTo(c.X+2.5, c.Y-2.5)
		p.LineTo(c.X+2.5, c.Y+2.5)
		p.LineTo(c.X-2.5, c.Y+2.5)
	case assdraw.BezierControl1, assdraw.BezierControl2:
		x, y, r := c.X-0.5, c.Y-0.5, 3.0
		k := kappa * r
		p.MoveTo(x+r, y)
		p.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
		p.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
		p.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
		p.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	default:
		p.MoveTo(c.X-3.0, c.Y)
		p.LineTo(c.X, c.Y-3.0)
		p.LineTo(c.X+3.0, c.Y)
		p.LineTo(c.X, c.Y+3.0)
	}
	p.Close()
}
