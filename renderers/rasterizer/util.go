package rasterizer

import (
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64.0)
}

// adder feeds path commands to a rasterx filler or stroker. Every sub-path must be stopped before the next one starts.
type adder struct {
	a       rasterx.Adder
	started bool
}

func (p *adder) MoveTo(x, y float64) {
	if p.started {
		p.a.Stop(false)
	}
	p.a.Start(rasterx.ToFixedP(x, y))
	p.started = true
}

func (p *adder) LineTo(x, y float64) {
	p.a.Line(rasterx.ToFixedP(x, y))
}

func (p *adder) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	p.a.CubeBezier(rasterx.ToFixedP(cx1, cy1), rasterx.ToFixedP(cx2, cy2), rasterx.ToFixedP(x, y))
}

func (p *adder) Close() {
	if p.started {
		p.a.Stop(true)
		p.started = false
	}
}

// vectorPather feeds path commands to a non-zero winding vector rasterizer.
type vectorPather struct {
	ras *vector.Rasterizer
}

func (p *vectorPather) MoveTo(x, y float64) {
	p.ras.MoveTo(float32(x), float32(y))
}

func (p *vectorPather) LineTo(x, y float64) {
	p.ras.LineTo(float32(x), float32(y))
}

func (p *vectorPather) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	p.ras.CubeTo(float32(cx1), float32(cy1), float32(cx2), float32(cy2), float32(x), float32(y))
}

func (p *vectorPather) Close() {
	p.ras.ClosePath()
}
