package ps

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/tdewolff/assdraw/editor"
	"github.com/tdewolff/minify/v2"
)

const precision = 8

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", precision, f)
	return string(minify.Decimal([]byte(s), precision))
}

// opaque blends a translucent color with the background color.
func opaque(c color.NRGBA) color.NRGBA {
	if c.A == 255 {
		return c
	}
	bg := editor.BackgroundColor
	blend := func(a, b uint8) uint8 {
		return uint8((uint32(a)*uint32(c.A) + uint32(b)*uint32(255-c.A) + 127) / 255)
	}
	return color.NRGBA{blend(c.R, bg.R), blend(c.G, bg.G), blend(c.B, bg.B), 255}
}

// pathData writes path operators, flipping the y-axis to point upwards.
type pathData struct {
	sb     strings.Builder
	height float64
}

func (p *pathData) op(name string, coords ...float64) {
	if p.sb.Len() != 0 {
		p.sb.WriteByte(' ')
	}
	for i := 0; i < len(coords); i += 2 {
		fmt.Fprintf(&p.sb, "%v %v ", dec(coords[i]), dec(p.height-coords[i+1]))
	}
	p.sb.WriteString(name)
}

func (p *pathData) MoveTo(x, y float64) {
	p.op("moveto", x, y)
}

func (p *pathData) LineTo(x, y float64) {
	p.op("lineto", x, y)
}

func (p *pathData) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	p.op("curveto", cx1, cy1, cx2, cy2, x, y)
}

func (p *pathData) Close() {
	p.op("closepath")
}

func (p *pathData) String() string {
	return p.sb.String()
}
