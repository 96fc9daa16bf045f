package ps

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
)

type Format int

const (
	PostScript Format = iota
	EncapsulatedPostScript
)

// Options are the PostScript renderer options.
type Options struct {
	Format
	Margin float64 // around the drawing when writing a whole drawing, in world units
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Format: EncapsulatedPostScript,
	Margin: 10.0,
}

// Writer writes the filled shapes of the drawing as a PostScript document that fits its bounds plus margin. One world unit is one point.
func Writer(opts *Options) assdraw.Writer {
	return func(w io.Writer, d *assdraw.Drawing) error {
		if opts == nil {
			opts = &DefaultOptions
		}
		bounds := d.Bounds().Expand(opts.Margin)
		r := New(w, bounds.W, bounds.H, opts)
		r.SetView(assdraw.Identity.Translate(-bounds.X, -bounds.Y))
		for _, s := range d.Shapes() {
			r.PaintShape(s, editor.ShapeStyle{})
		}
		return r.Close()
	}
}

// PS is a PostScript editor.Painter. PostScript has no transparency, translucent colors are blended with the background color instead.
type PS struct {
	w             io.Writer
	width, height float64
	view          assdraw.ViewMatrix
	opts          *Options
	err           error

	color     color.NRGBA
	lineWidth float64
}

// New returns a PostScript renderer with a page of width by height points.
func New(w io.Writer, width, height float64, opts *Options) *PS {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	r := &PS{
		w:         w,
		width:     width,
		height:    height,
		view:      assdraw.Identity,
		opts:      opts,
		lineWidth: 1.0,
	}
	if opts.Format == PostScript {
		r.printf("%%!PS-Adobe-3.0\n")
	} else if opts.Format == EncapsulatedPostScript {
		r.printf("%%!PS-Adobe-3.0 EPSF-3.0\n")
	}
	r.printf("%%%%Creator: tdewolff/assdraw\n")
	r.printf("%%%%CreationDate: %v\n", time.Now().Format(time.ANSIC))
	r.printf("%%%%BoundingBox: 0 0 %v %v\n", dec(width), dec(height))
	if opts.Format == EncapsulatedPostScript {
		r.printf("%%%%EndComments\n")
	}
	r.printf("1 setlinecap 1 setlinejoin")
	return r
}

func (r *PS) printf(format string, args ...interface{}) {
	if r.err == nil {
		_, r.err = fmt.Fprintf(r.w, format, args...)
	}
}

// Close finishes the document and returns the first write error.
func (r *PS) Close() error {
	r.printf("\nshowpage\n")
	if r.opts.Format == EncapsulatedPostScript {
		r.printf("%%%%EOF\n")
	}
	return r.err
}

// Size returns the size of the page in points.
func (r *PS) Size() (float64, float64) {
	return r.width, r.height
}

// Clear paints the background.
func (r *PS) Clear() {
	r.setColor(editor.BackgroundColor)
	r.printf("\n0 0 %v %v rectfill", dec(r.width), dec(r.height))
}

// SetView sets the world-to-screen transformation for the following shapes and handles. Screen coordinates run downwards like the other painters.
func (r *PS) SetView(m assdraw.ViewMatrix) {
	r.view = m
}

func (r *PS) setColor(c color.NRGBA) {
	c = opaque(c)
	if c != r.color {
		if c.R == c.G && c.R == c.B {
			r.printf(" %v setgray", dec(float64(c.R)/255.0))
		} else {
			r.printf(" %v %v %v setrgbcolor", dec(float64(c.R)/255.0), dec(float64(c.G)/255.0), dec(float64(c.B)/255.0))
		}
		r.color = c
	}
}

func (r *PS) setLineWidth(width float64) {
	if width != r.lineWidth {
		r.printf(" %v setlinewidth", dec(width))
		r.lineWidth = width
	}
}

func (r *PS) fillStroke(path *pathData, fill, stroke color.NRGBA, width float64, hasStroke bool) {
	r.printf("\n%s", path)
	r.setColor(fill)
	if hasStroke {
		r.printf(" gsave eofill grestore")
		r.setColor(stroke)
		r.setLineWidth(width)
		r.printf(" stroke")
	} else {
		r.printf(" eofill")
	}
}

// PaintShape draws the closed shape in page coordinates.
func (r *PS) PaintShape(s *assdraw.Shape, style editor.ShapeStyle) {
	path := &pathData{height: r.height}
	s.Draw(assdraw.ViewPather(path, r.view), true)
	r.fillStroke(path, style.FillColor(), style.StrokeColor(), style.StrokeWidth(), style.Stroke)
}

// PaintHandle draws the marker of a handle.
func (r *PS) PaintHandle(h assdraw.Handle, grabbed bool) {
	fill, stroke := editor.HandleColors(grabbed)
	path := &pathData{height: r.height}
	editor.HandleMarker(path, h, r.view)
	r.fillStroke(path, fill, stroke, editor.HandleStrokeWidth, true)
}
