package pdf

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
)

// Options are the PDF renderer options.
type Options struct {
	Compress bool
	Margin   float64 // around the drawing when writing a whole drawing, in world units
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Compress: true,
	Margin:   10.0,
}

// Writer writes the filled shapes of the drawing as a single page PDF that fits its bounds plus margin. One world unit is one point.
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

// PDF is a portable document format editor.Painter.
type PDF struct {
	w             io.Writer
	pdf           *gofpdf.Fpdf
	width, height float64
	view          assdraw.ViewMatrix
	opts          *Options
}

// New returns a portable document format (PDF) renderer with a page of width by height points.
func New(w io.Writer, width, height float64, opts *Options) *PDF {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetCompression(opts.Compress)
	pdf.SetMargins(0.0, 0.0, 0.0)
	pdf.SetAutoPageBreak(false, 0.0)
	pdf.SetCreator("assdraw", true)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	return &PDF{
		w:      w,
		pdf:    pdf,
		width:  width,
		height: height,
		view:   assdraw.Identity,
		opts:   opts,
	}
}

// SetInfo sets the document's title, subject, keywords and author.
func (r *PDF) SetInfo(title, subject, keywords, author string) {
	r.pdf.SetTitle(title, true)
	r.pdf.SetSubject(subject, true)
	r.pdf.SetKeywords(keywords, true)
	r.pdf.SetAuthor(author, true)
}

// Close writes the document to the writer.
func (r *PDF) Close() error {
	return r.pdf.Output(r.w)
}

// Size returns the size of the page in points.
func (r *PDF) Size() (float64, float64) {
	return r.width, r.height
}

// Clear paints the background.
func (r *PDF) Clear() {
	r.setFill(editor.BackgroundColor)
	r.pdf.Rect(0.0, 0.0, r.width, r.height, "F")
}

// SetView sets the world-to-screen transformation for the following shapes and handles.
func (r *PDF) SetView(m assdraw.ViewMatrix) {
	r.view = m
}

func (r *PDF) setFill(c color.NRGBA) {
	r.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	r.pdf.SetAlpha(float64(c.A)/255.0, "Normal")
}

func (r *PDF) setStroke(c color.NRGBA, width float64) {
	r.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	r.pdf.SetAlpha(float64(c.A)/255.0, "Normal")
	r.pdf.SetLineWidth(width)
}

// fillStroke fills the path with the even-odd rule, then strokes it. Fill and stroke each carry their own opacity.
func (r *PDF) fillStroke(path *assdraw.Recorder, fill, stroke color.NRGBA, width float64, hasStroke bool) {
	r.setFill(fill)
	path.Replay(&pather{r.pdf})
	r.pdf.DrawPath("F*")
	if hasStroke {
		r.setStroke(stroke, width)
		path.Replay(&pather{r.pdf})
		r.pdf.DrawPath("D")
	}
}

// PaintShape draws the closed shape in page coordinates.
func (r *PDF) PaintShape(s *assdraw.Shape, style editor.ShapeStyle) {
	path := &assdraw.Recorder{}
	s.Draw(assdraw.ViewPather(path, r.view), true)
	r.fillStroke(path, style.FillColor(), style.StrokeColor(), style.StrokeWidth(), style.Stroke)
}

// PaintHandle draws the marker of a handle.
func (r *PDF) PaintHandle(h assdraw.Handle, grabbed bool) {
	fill, stroke := editor.HandleColors(grabbed)
	path := &assdraw.Recorder{}
	editor.HandleMarker(path, h, r.view)
	r.fillStroke(path, fill, stroke, editor.HandleStrokeWidth, true)
}

type pather struct {
	pdf *gofpdf.Fpdf
}

func (p *pather) MoveTo(x, y float64) {
	p.pdf.MoveTo(x, y)
}

func (p *pather) LineTo(x, y float64) {
	p.pdf.LineTo(x, y)
}

func (p *pather) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	p.pdf.CurveBezierCubicTo(cx1, cy1, cx2, cy2, x, y)
}

func (p *pather) Close() {
	p.pdf.ClosePath()
}
