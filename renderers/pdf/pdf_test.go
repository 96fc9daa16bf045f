package pdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
	"github.com/tdewolff/test"
)

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, Writer(&Options{Compress: false, Margin: 5.0})(buf, assdraw.MustParse("m 0 0 l 10 0 b 10 5 5 10 0 10")))

	s := buf.String()
	test.That(t, strings.HasPrefix(s, "%PDF-"), s)
	test.That(t, strings.Contains(s, "%%EOF"))
	test.That(t, strings.Contains(s, "f*"), "even-odd fill")
}

func TestFrame(t *testing.T) {
	s := editor.NewSession(assdraw.MustParse("m 0 0 l 10 0 10 10"), nil)
	test.Error(t, s.SwitchTool("line"))
	s.PointerMove(editor.PointerEvent{Screen: assdraw.Point{X: 1, Y: 1}})

	buf := &bytes.Buffer{}
	r := New(buf, 100, 50, nil)
	s.Paint(r)
	test.Error(t, r.Close())

	w, h := r.Size()
	test.Float(t, w, 100)
	test.Float(t, h, 50)
	test.That(t, strings.HasPrefix(buf.String(), "%PDF-"))
}
