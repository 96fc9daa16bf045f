package svg

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
	"github.com/tdewolff/test"
)

func TestPathData(t *testing.T) {
	var tts = []struct {
		drawing string
		minify  bool
		want    string
	}{
		{"m 10 10 l 30 10 30 30", false, "M 10 10 L 30 10 L 30 30 z"},
		{"m 10 10 l 30 10 30 30", true, "M10 10L30 10 30 30z"},
		{"m -5 -3 b 1 -2 3 4 -5 6", true, "M-5-3C1-2 3 4-5 6z"},
		{"m -5 -3 b 1 -2 3 4 -5 6", false, "M -5 -3 C 1 -2 3 4 -5 6 z"},
	}
	for _, tt := range tts {
		t.Run(tt.drawing, func(t *testing.T) {
			d := &pathData{minify: tt.minify}
			assdraw.MustParse(tt.drawing).Shape(0).Draw(d, true)
			test.String(t, d.String(), tt.want)
		})
	}
}

func TestHexColor(t *testing.T) {
	test.String(t, hexColor(editor.ShapeFillColor), "#abc")
	test.String(t, hexColor(editor.HandleFillColor), "#fa9696")
}

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, Writer(&Options{Minify: true, Margin: 10.0})(buf, assdraw.MustParse("m 20 20 l 40 20 40 40")))

	s := buf.String()
	test.That(t, strings.HasPrefix(s, "<svg "), s)
	test.That(t, strings.HasSuffix(s, "</svg>"), s)
	test.That(t, strings.Contains(s, `<path d="M10 10L30 10 30 30z" fill="#abc" fill-rule="evenodd"/>`), s)
}

func TestWriterCompression(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, Writer(&Options{Compression: gzip.BestSpeed})(buf, assdraw.MustParse("m 0 0 l 1 1")))

	r, err := gzip.NewReader(buf)
	test.Error(t, err)
	b, err := io.ReadAll(r)
	test.Error(t, err)
	test.That(t, strings.HasSuffix(string(b), "</svg>"))
}

func TestCompressionOutOfRange(t *testing.T) {
	opts := &Options{Compression: 42}
	buf := &bytes.Buffer{}
	r := New(buf, 10, 10, opts)
	test.Error(t, r.Close())
	test.T(t, opts.Compression, 42)

	zr, err := gzip.NewReader(buf)
	test.Error(t, err)
	b, err := io.ReadAll(zr)
	test.Error(t, err)
	test.That(t, strings.HasSuffix(string(b), "</svg>"))
}

func TestFrame(t *testing.T) {
	s := editor.NewSession(assdraw.MustParse("m 0 0 l 10 0 10 10 m 50 50 l 60 50"), nil)
	test.Error(t, s.SwitchTool("line"))
	s.PointerMove(editor.PointerEvent{Screen: assdraw.Point{X: 10, Y: 1}})

	buf := &bytes.Buffer{}
	r := New(buf, 100, 100, nil)
	s.Paint(r)
	test.Error(t, r.Close())

	out := buf.String()
	test.That(t, strings.Contains(out, `<rect width="100" height="100" fill="#fff"/>`), out)
	test.That(t, strings.Contains(out, `fill="#8a8" fill-rule="evenodd" stroke="#000" stroke-width="2"`), out)
	test.That(t, strings.Contains(out, `fill="#abc" fill-rule="evenodd" stroke="#000" stroke-opacity="`), out)
	test.T(t, strings.Count(out, `fill="#96fafa"`), 1) // grabbed
	test.T(t, strings.Count(out, `fill="#fa9696"`), 2)
}
