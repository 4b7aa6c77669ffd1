package tabclip

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// token is one display-column step of a row. text aliases the row string.
type token struct {
	role Role
	text string
	xpos int
}

// lineIter walks a row string and its template in lock-step, one character at
// a time. The row cursor advances by the character's byte length, the template
// cursor by its display width, so the two stay aligned on display columns.
type lineIter struct {
	row    string
	tmpl   Template
	force8 bool

	pos  int // byte offset into row
	xpos int // display column, indexes tmpl
}

func newLineIter(row string, tmpl Template, force8 bool) lineIter {
	return lineIter{row: row, tmpl: tmpl, force8: force8}
}

// next returns the next token, or ok=false when the row or template is
// exhausted or the template reaches its terminator.
func (it *lineIter) next() (token, bool) {
	if it.pos >= len(it.row) || it.xpos >= len(it.tmpl) {
		return token{}, false
	}
	role := it.tmpl[it.xpos]
	if role == RoleEnd {
		return token{}, false
	}

	size, width := 1, 1
	if !it.force8 {
		r, n := utf8.DecodeRuneInString(it.row[it.pos:])
		size = n
		width = runewidth.RuneWidth(r)
	}

	tok := token{
		role: role,
		text: it.row[it.pos : it.pos+size],
		xpos: it.xpos,
	}
	it.pos += size
	it.xpos += width
	return tok, true
}
