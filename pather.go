package assdraw

// Pather receives the geometry of a shape as path commands, the contract of a 2D canvas painter.
type Pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(cx1, cy1, cx2, cy2, x, y float64)
	Close()
}

type viewPather struct {
	p Pather
	m ViewMatrix
}

// ViewPather wraps p so that world coordinates are mapped through m before being passed on.
func ViewPather(p Pather, m ViewMatrix) Pather {
	if m == Identity {
		return p
	}
	return viewPather{p, m}
}

func (v viewPather) MoveTo(x, y float64) {
	q := v.m.Apply(Point{x, y})
	v.p.MoveTo(q.X, q.Y)
}

func (v viewPather) LineTo(x, y float64) {
	q := v.m.Apply(Point{x, y})
	v.p.LineTo(q.X, q.Y)
}

func (v viewPather) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	c1 := v.m.Apply(Point{cx1, cy1})
	c2 := v.m.Apply(Point{cx2, cy2})
	q := v.m.Apply(Point{x, y})
	v.p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
}

func (v viewPather) Close() {
	v.p.Close()
}

// Recorder is a Pather that records the commands it receives, useful to replay a shape more than once.
type Recorder struct {
	Cmds []Cmd
}

// Cmd is a recorded path command. Args holds 2 values for MoveTo and LineTo, 6 for CubeTo and none for Close.
type Cmd struct {
	Op   byte // 'M', 'L', 'C' or 'z'
	Args []float64
}

func (r *Recorder) MoveTo(x, y float64) {
	r.Cmds = append(r.Cmds, Cmd{'M', []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Cmds = append(r.Cmds, Cmd{'L', []float64{x, y}})
}

func (r *Recorder) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	r.Cmds = append(r.Cmds, Cmd{'C', []float64{cx1, cy1, cx2, cy2, x, y}})
}

func (r *Recorder) Close() {
	r.Cmds = append(r.Cmds, Cmd{'z', nil})
}

// Replay sends the recorded commands to p.
func (r *Recorder) Replay(p Pather) {
	for _, cmd := range r.Cmds {
		switch cmd.Op {
		case 'M':
			p.MoveTo(cmd.Args[0], cmd.Args[1])
		case 'L':
			p.LineTo(cmd.Args[0], cmd.Args[1])
		case 'C':
			p.CubeTo(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3], cmd.Args[4], cmd.Args[5])
		case 'z':
			p.Close()
		}
	}
}
