package rasterizer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
	"github.com/tdewolff/test"
)

var white = color.RGBA{255, 255, 255, 255}
var fill = color.RGBA{0xaa, 0xbb, 0xcc, 255}
var currentFill = color.RGBA{0x88, 0xaa, 0x88, 255}

func near(c, d color.RGBA) bool {
	diff := func(a, b uint8) bool {
		return int(a)+2 < int(b) || int(b)+2 < int(a)
	}
	return !diff(c.R, d.R) && !diff(c.G, d.G) && !diff(c.B, d.B) && !diff(c.A, d.A)
}

func TestDraw(t *testing.T) {
	d := assdraw.MustParse("m 10 10 l 30 10 30 30 10 30")
	img := Draw(d, nil)
	test.T(t, img.Bounds(), image.Rect(0, 0, 40, 40))
	test.That(t, near(img.RGBAAt(2, 2), white), img.RGBAAt(2, 2))
	test.That(t, near(img.RGBAAt(20, 20), fill), img.RGBAAt(20, 20))
	test.That(t, near(img.RGBAAt(37, 20), white), img.RGBAAt(37, 20))
}

func TestDrawEvenOdd(t *testing.T) {
	d := assdraw.MustParse("m 0 0 l 40 0 40 40 0 40 0 0 10 10 30 10 30 30 10 30 10 10")
	img := Draw(d, &Options{Scale: 1.0, Background: color.White})
	test.That(t, near(img.RGBAAt(5, 5), white), img.RGBAAt(5, 5))
	test.That(t, near(img.RGBAAt(15, 15), fill), img.RGBAAt(15, 15))
	test.That(t, near(img.RGBAAt(30, 30), white), img.RGBAAt(30, 30)) // hole
	test.That(t, near(img.RGBAAt(44, 44), fill), img.RGBAAt(44, 44))
}

func TestDrawScale(t *testing.T) {
	d := assdraw.MustParse("m 0 0 l 10 0 10 10 0 10")
	img := Draw(d, &Options{Scale: 2.0, Margin: 5.0})
	test.T(t, img.Bounds(), image.Rect(0, 0, 40, 40))
	test.That(t, near(img.RGBAAt(20, 20), fill), img.RGBAAt(20, 20))
	test.T(t, img.RGBAAt(2, 2), color.RGBA{}) // transparent
}

func TestPNGWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, PNGWriter(nil)(buf, assdraw.MustParse("m 0 0 l 10 0 10 10")))

	img, err := png.Decode(buf)
	test.Error(t, err)
	test.T(t, img.Bounds(), image.Rect(0, 0, 30, 30))
}

func TestDrawFrame(t *testing.T) {
	s := editor.NewSession(assdraw.MustParse("m 10 10 l 50 10 50 50 10 50"), nil)
	test.Error(t, s.SwitchTool("movehandle"))
	s.PointerMove(editor.PointerEvent{Screen: assdraw.Point{X: 30, Y: 30}})

	img := DrawFrame(s, 60, 60, nil)
	test.That(t, near(img.RGBAAt(30, 30), currentFill), img.RGBAAt(30, 30))
	test.That(t, near(img.RGBAAt(5, 55), white), img.RGBAAt(5, 55))

	// handle markers are opaque enough to differ from the fill
	c := img.RGBAAt(50, 50)
	test.That(t, !near(c, white) && !near(c, currentFill), c)
}

func TestNewDefaultOptions(t *testing.T) {
	r := New(image.NewRGBA(image.Rect(0, 0, 1, 1)), nil)
	r.opts.Scale = 3.0
	test.Float(t, DefaultOptions.Scale, 1.0)
}
