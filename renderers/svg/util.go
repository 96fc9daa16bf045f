package svg

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// precision is the number of significant digits of written coordinates.
const precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", precision, f)
	return string(minify.Number([]byte(s), precision))
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", precision, f)
	return string(minify.Decimal([]byte(s), precision))
}

func hexColor(c color.NRGBA) string {
	if c.R>>4 == c.R&0x0f && c.G>>4 == c.G&0x0f && c.B>>4 == c.B&0x0f {
		return fmt.Sprintf("#%x%x%x", c.R&0x0f, c.G&0x0f, c.B&0x0f)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// pathData writes path commands as SVG path data. Minified output omits repeated commands and separators that are not needed.
type pathData struct {
	sb      strings.Builder
	minify  bool
	prev    byte
	needSep bool
}

func (p *pathData) cmd(c byte, vs ...float64) {
	if !p.minify {
		if p.sb.Len() != 0 {
			p.sb.WriteByte(' ')
		}
		p.sb.WriteByte(c)
		for _, v := range vs {
			p.sb.WriteByte(' ')
			p.sb.WriteString(num(v).String())
		}
		return
	}

	if c != p.prev || c == 'M' || c == 'z' {
		p.sb.WriteByte(c)
		p.needSep = false
	}
	for _, v := range vs {
		s := num(v).String()
		if p.needSep && s[0] != '-' {
			p.sb.WriteByte(' ')
		}
		p.sb.WriteString(s)
		p.needSep = true
	}
	p.prev = c
}

func (p *pathData) MoveTo(x, y float64) {
	p.cmd('M', x, y)
}

func (p *pathData) LineTo(x, y float64) {
	p.cmd('L', x, y)
}

func (p *pathData) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	p.cmd('C', cx1, cy1, cx2, cy2, x, y)
}

func (p *pathData) Close() {
	p.cmd('z')
}

func (p *pathData) String() string {
	return p.sb.String()
}
