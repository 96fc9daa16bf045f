package svg

import (
	"compress/gzip"
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
)

// Options are the SVG renderer options.
type Options struct {
	Compression int     // gzip compression level, zero for none
	Minify      bool    // write compact path data
	Margin      float64 // around the drawing when writing a whole drawing, in world units
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Margin: 10.0,
}

// Writer writes the filled shapes of the drawing as an SVG document that fits its bounds plus margin.
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

// SVG is a scalable vector graphics editor.Painter.
type SVG struct {
	w             io.Writer
	width, height float64
	view          assdraw.ViewMatrix
	opts          *Options
}

// New returns a scalable vector graphics (SVG) renderer of width by height screen units.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			clamped := *opts
			clamped.Compression = gzip.DefaultCompression
			opts = &clamped
		}
		w, _ = gzip.NewWriterLevel(w, opts.Compression)
	}

	fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(width), dec(height))
	return &SVG{
		w:      w,
		width:  width,
		height: height,
		view:   assdraw.Identity,
		opts:   opts,
	}
}

// Close finishes and closes the SVG.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</svg>")
	if r.opts.Compression != 0 {
		if errClose := r.w.(*gzip.Writer).Close(); err == nil {
			err = errClose // does not close underlying writer
		}
	}
	return err
}

// Size returns the size of the document in screen units.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// Clear paints the background.
func (r *SVG) Clear() {
	fmt.Fprintf(r.w, `<rect width="%v" height="%v" fill="%s"/>`, dec(r.width), dec(r.height), hexColor(editor.BackgroundColor))
}

// SetView sets the world-to-screen transformation for the following shapes and handles.
func (r *SVG) SetView(m assdraw.ViewMatrix) {
	r.view = m
}

func (r *SVG) writePaint(attr string, c color.NRGBA) {
	fmt.Fprintf(r.w, ` %s="%s"`, attr, hexColor(c))
	if c.A != 255 {
		fmt.Fprintf(r.w, ` %s-opacity="%v"`, attr, dec(float64(c.A)/255.0))
	}
}

func (r *SVG) writeStroke(c color.NRGBA, width float64) {
	r.writePaint("stroke", c)
	if width != 1.0 {
		fmt.Fprintf(r.w, ` stroke-width="%v"`, dec(width))
	}
	fmt.Fprintf(r.w, ` stroke-linecap="round" stroke-linejoin="round"`)
}

// PaintShape writes the closed shape as a path filled with the even-odd rule, in screen coordinates.
func (r *SVG) PaintShape(s *assdraw.Shape, style editor.ShapeStyle) {
	d := &pathData{minify: r.opts.Minify}
	s.Draw(assdraw.ViewPather(d, r.view), true)

	fmt.Fprintf(r.w, `<path d="%s"`, d)
	r.writePaint("fill", style.FillColor())
	fmt.Fprintf(r.w, ` fill-rule="evenodd"`)
	if style.Stroke {
		r.writeStroke(style.StrokeColor(), style.StrokeWidth())
	}
	fmt.Fprintf(r.w, `/>`)
}

// PaintHandle writes the marker of a handle.
func (r *SVG) PaintHandle(h assdraw.Handle, grabbed bool) {
	fill, stroke := editor.HandleColors(grabbed)
	d := &pathData{minify: r.opts.Minify}
	editor.HandleMarker(d, h, r.view)

	fmt.Fprintf(r.w, `<path d="%s"`, d)
	r.writePaint("fill", fill)
	r.writeStroke(stroke, editor.HandleStrokeWidth)
	fmt.Fprintf(r.w, `/>`)
}
