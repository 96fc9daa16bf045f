package ps

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
	"github.com/tdewolff/test"
)

func TestPathData(t *testing.T) {
	p := &pathData{height: 10.0}
	assdraw.MustParse("m 0 0 l 10 0 10 10").Shape(0).Draw(p, true)
	test.String(t, p.String(), "0 10 moveto 10 10 lineto 10 0 lineto closepath")

	p = &pathData{height: 0.0}
	p.CubeTo(1.5, 2, 3, 4, 5, 6)
	test.String(t, p.String(), "1.5 -2 3 -4 5 -6 curveto")
}

func TestOpaque(t *testing.T) {
	test.T(t, opaque(color.NRGBA{1, 2, 3, 255}), color.NRGBA{1, 2, 3, 255})
	test.T(t, opaque(color.NRGBA{0, 0, 0, 128}), color.NRGBA{127, 127, 127, 255})
	test.T(t, opaque(color.NRGBA{0, 0, 0, 0}), color.NRGBA{255, 255, 255, 255})
}

func TestWriter(t *testing.T) {
	d := assdraw.MustParse("m 0 0 l 10 0 10 10")
	w := &bytes.Buffer{}
	test.Error(t, d.Write(w, Writer(&Options{Format: EncapsulatedPostScript})))

	out := w.String()
	test.That(t, strings.HasPrefix(out, "%!PS-Adobe-3.0 EPSF-3.0\n"), out)
	test.That(t, strings.Contains(out, "%%BoundingBox: 0 0 10 10\n"), out)
	test.That(t, strings.Contains(out, "\n0 10 moveto 10 10 lineto 10 0 lineto closepath"), out)
	test.That(t, strings.Contains(out, " eofill"), out)
	test.That(t, !strings.Contains(out, " stroke"), out)
	test.That(t, strings.HasSuffix(out, "showpage\n%%EOF\n"), out)

	w.Reset()
	test.Error(t, d.Write(w, Writer(&Options{Format: PostScript})))
	test.That(t, strings.HasPrefix(w.String(), "%!PS-Adobe-3.0\n"))
	test.That(t, !strings.Contains(w.String(), "%%EOF"))
}

func TestFrame(t *testing.T) {
	s := editor.NewSession(assdraw.MustParse("m 0 0 l 10 0 10 10"), nil)
	s.SwitchTool("line")
	s.PointerMove(editor.PointerEvent{Screen: assdraw.Pt(10, 0)})

	w := &bytes.Buffer{}
	r := New(w, 20, 20, nil)
	s.Paint(r)
	test.Error(t, r.Close())

	out := w.String()
	test.That(t, strings.Contains(out, "0 0 20 20 rectfill"), out)
	test.That(t, strings.Contains(out, "gsave eofill grestore"), out)
	test.That(t, strings.Contains(out, " 2 setlinewidth"), out)
}
