package mml

// SourceLocation pins a position in an MML source file. Lines and
// columns are zero-based; column resets to zero on every '\n'.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

func (l SourceLocation) String() string {
	return l.File + ":" + itoa(l.Line+1) + ":" + itoa(l.Column+1)
}

// cursor walks an MML source string one rune at a time, tracking the
// file/line/column triple every command and directive gets stamped
// with. It never decodes bytes itself (callers already hand it text);
// see internal/loader for the SHIFT_JIS/UTF-8 front door.
type cursor struct {
	file string
	src  []rune
	pos  int
	line int
	col  int
}

func newCursor(file, src string) *cursor {
	return &cursor{file: file, src: []rune(src)}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) peek() rune {
	if c.done() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) loc() SourceLocation {
	return SourceLocation{File: c.file, Line: c.line, Column: c.col}
}

// advance consumes and returns the current rune, updating line/column
// bookkeeping the way original_source's Code.inc_chars/inc_lines does.
func (c *cursor) advance() (rune, bool) {
	if c.done() {
		return 0, false
	}
	r := c.src[c.pos]
	c.pos++
	if r == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	return r, true
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
