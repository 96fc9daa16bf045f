package rasterizer

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanx"
	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// Options are the rasterizer options.
type Options struct {
	Scale      float64     // pixels per screen unit
	Margin     float64     // around the drawing when rendering a whole drawing, in world units
	Background color.Color // nil for transparent
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Scale:      1.0,
	Margin:     10.0,
	Background: editor.BackgroundColor,
}

// PNGWriter writes the drawing as a PNG file.
func PNGWriter(opts *Options) assdraw.Writer {
	return func(w io.Writer, d *assdraw.Drawing) error {
		return png.Encode(w, Draw(d, opts))
	}
}

// JPGWriter writes the drawing as a JPG file.
func JPGWriter(opts *Options, jpgOpts *jpeg.Options) assdraw.Writer {
	return func(w io.Writer, d *assdraw.Drawing) error {
		return jpeg.Encode(w, Draw(d, opts), jpgOpts)
	}
}

// GIFWriter writes the drawing as a GIF file.
func GIFWriter(opts *Options, gifOpts *gif.Options) assdraw.Writer {
	return func(w io.Writer, d *assdraw.Drawing) error {
		return gif.Encode(w, Draw(d, opts), gifOpts)
	}
}

// TIFFWriter writes the drawing as a TIFF file.
func TIFFWriter(opts *Options, tiffOpts *tiff.Options) assdraw.Writer {
	return func(w io.Writer, d *assdraw.Drawing) error {
		return tiff.Encode(w, Draw(d, opts), tiffOpts)
	}
}

// Draw draws the filled shapes of the drawing on a new image that fits its bounds plus margin.
func Draw(d *assdraw.Drawing, opts *Options) *image.RGBA {
	if opts == nil {
		opts = &DefaultOptions
	}
	bounds := d.Bounds().Expand(opts.Margin)
	w := int(math.Ceil(bounds.W * opts.Scale))
	h := int(math.Ceil(bounds.H * opts.Scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	r := New(img, opts)
	r.Clear()
	r.SetView(assdraw.Identity.Translate(-bounds.X, -bounds.Y))
	for _, s := range d.Shapes() {
		r.PaintShape(s, editor.ShapeStyle{})
	}
	return img
}

// DrawFrame paints the session's current frame on a new image of w by h pixels.
func DrawFrame(s *editor.Session, w, h int, opts *Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	s.Paint(New(img, opts))
	return img
}

// Rasterizer is a rasterizing editor.Painter.
type Rasterizer struct {
	img   *image.RGBA
	opts  *Options
	view  assdraw.ViewMatrix
	pixel assdraw.ViewMatrix // screen units to pixels
}

// New returns a painter that draws to a rasterized image.
func New(img *image.RGBA, opts *Options) *Rasterizer {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	return &Rasterizer{
		img:   img,
		opts:  opts,
		view:  assdraw.Identity,
		pixel: assdraw.ViewMatrix{opts.Scale, 0.0, 0.0, opts.Scale, 0.0, 0.0},
	}
}

// Clear fills the image with the background color.
func (r *Rasterizer) Clear() {
	bg := r.opts.Background
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// SetView sets the world-to-screen transformation for the following shapes and handles.
func (r *Rasterizer) SetView(m assdraw.ViewMatrix) {
	r.view = m
}

// stroker returns a round capped and joined stroker of width in screen units.
func (r *Rasterizer) stroker(width float64, col color.Color) *rasterx.Stroker {
	size := r.img.Bounds().Size()
	width *= r.opts.Scale
	scanner := rasterx.NewScannerGV(size.X, size.Y, r.img, r.img.Bounds())
	stroker := rasterx.NewStroker(size.X, size.Y, scanner)
	stroker.SetStroke(toFixed(width), toFixed(4.0*width), rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	stroker.SetColor(col)
	return stroker
}

// PaintShape fills the closed shape with the even-odd rule and strokes its outline if requested.
func (r *Rasterizer) PaintShape(s *assdraw.Shape, style editor.ShapeStyle) {
	// the vector scanner only does non-zero winding
	size := r.img.Bounds().Size()
	scanner := scanx.NewScanner(scanx.NewImgSpanner(r.img), size.X, size.Y)

	filler := rasterx.NewFiller(size.X, size.Y, scanner)
	filler.SetWinding(false)
	filler.SetColor(style.FillColor())
	s.Draw(assdraw.ViewPather(assdraw.ViewPather(&adder{a: filler}, r.pixel), r.view), true)
	filler.Draw()

	if style.Stroke {
		stroker := r.stroker(style.StrokeWidth(), style.StrokeColor())
		s.Draw(assdraw.ViewPather(assdraw.ViewPather(&adder{a: stroker}, r.pixel), r.view), true)
		stroker.Draw()
	}
}

// PaintHandle draws the marker of a handle, its size is constant on screen.
func (r *Rasterizer) PaintHandle(h assdraw.Handle, grabbed bool) {
	fill, stroke := editor.HandleColors(grabbed)
	size := r.img.Bounds().Size()

	ras := vector.NewRasterizer(size.X, size.Y)
	editor.HandleMarker(assdraw.ViewPather(&vectorPather{ras}, r.pixel), h, r.view)
	ras.Draw(r.img, r.img.Bounds(), image.NewUniform(fill), image.Point{})

	stroker := r.stroker(editor.HandleStrokeWidth, stroke)
	editor.HandleMarker(assdraw.ViewPather(&adder{a: stroker}, r.pixel), h, r.view)
	stroker.Draw()
}
