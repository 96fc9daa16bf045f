package assdraw

import (
	"math"
	"strconv"

	"github.com/tdewolff/parse/v2"
	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

// lexer reads tokens of the drawing text. pos counts the bytes consumed so far.
type lexer struct {
	z   *parse.Input
	pos int
}

func (l *lexer) peek() byte {
	return l.z.Peek(0)
}

func (l *lexer) move() {
	l.z.Move(1)
	l.pos++
}

func (l *lexer) eof() bool {
	return l.peek() == 0 && l.z.Err() != nil
}

func (l *lexer) skipWhitespace() int {
	n := 0
	for parse.IsWhitespace(l.peek()) {
		l.move()
		n++
	}
	return n
}

// integer reads a signed decimal integer.
func (l *lexer) integer() (int, bool) {
	l.z.Skip()
	if c := l.peek(); c == '-' || c == '+' {
		l.move()
	}
	digits := 0
	for c := l.peek(); '0' <= c && c <= '9'; c = l.peek() {
		l.move()
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	i, n := parseStrconv.ParseInt(l.z.Shift())
	if n == 0 || i < math.MinInt || math.MaxInt < i {
		return 0, false // overflow
	}
	return int(i), true
}

// ints fills vs with integers separated by whitespace. Whitespace before the first one is optional.
func (l *lexer) ints(vs []int) bool {
	for i := range vs {
		if l.skipWhitespace() == 0 && i != 0 {
			return false
		}
		v, ok := l.integer()
		if !ok {
			return false
		}
		vs[i] = v
	}
	return true
}

func isNumStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '-' || c == '+'
}

// Parse parses the ASS drawing mini-language: a sequence of shapes, each a move command "m X Y" followed by line runs "l X Y [X Y ...]" and bezier runs "b X1 Y1 X2 Y2 X3 Y3 [...]".
// Coordinates following a run without a new command letter extend that run. Errors are of type *ParseError and wrap ErrMalformedInput.
func Parse(s string) (*Drawing, error) {
	l := &lexer{z: parse.NewInputString(s)}
	d := &Drawing{}

	var shape *Shape
	var run byte // command that bare coordinates continue
	var vs [6]int
	for {
		offset := l.pos
		ws := l.skipWhitespace()
		if l.eof() {
			break
		}

		c := l.peek()
		switch {
		case c == 'm':
			l.move()
			if !l.ints(vs[:2]) {
				return nil, &ParseError{offset, "bad parameters for move command"}
			}
			shape = d.AddShape(vs[0], vs[1])
			run = 'm'
		case shape == nil:
			return nil, &ParseError{offset, "does not start with a move command"}
		case c == 'l':
			l.move()
			if !l.ints(vs[:2]) {
				return nil, &ParseError{offset, "bad parameters for line command"}
			}
			shape.AddLine(vs[0], vs[1])
			run = 'l'
		case c == 'b':
			l.move()
			if !l.ints(vs[:6]) {
				return nil, &ParseError{offset, "bad parameters for bezier command"}
			}
			shape.AddBezier(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5])
			run = 'b'
		case 0 < ws && run == 'l' && isNumStart(c):
			if !l.ints(vs[:2]) {
				return nil, &ParseError{offset, "bad parameters for line continuation"}
			}
			shape.AddLine(vs[0], vs[1])
		case 0 < ws && run == 'b' && isNumStart(c):
			if !l.ints(vs[:6]) {
				return nil, &ParseError{offset, "bad parameters for bezier continuation"}
			}
			shape.AddBezier(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5])
		default:
			return nil, &ParseError{offset, "invalid command or bad parameters"}
		}
	}
	if shape == nil {
		return nil, &ParseError{0, "empty drawing"}
	}
	return d, nil
}

// MustParse parses a drawing and panics on error.
func MustParse(s string) *Drawing {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// appendText serializes the shape. A command letter is only written when the segment kind changes, consecutive segments of the same kind form a run.
func (s *Shape) appendText(buf []byte) []byte {
	var run byte
	for i, h := range s.handles {
		var cmd byte
		switch h.Kind {
		case Origin:
			cmd = 'm'
		case LineEnd:
			cmd = 'l'
		case BezierControl1:
			cmd = 'b'
		}
		if cmd != 0 && cmd != run {
			if i != 0 {
				buf = append(buf, ' ')
			}
			buf = append(buf, cmd)
			run = cmd
		}
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(h.X), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(h.Y), 10)
	}
	return buf
}
