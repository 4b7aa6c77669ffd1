package tabclip

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// exportState is the single-call context of one export: the output sink, the
// effective format and range, and the column names captured from header rows
// for INSERT and extended copy-line output.
type exportState struct {
	w         io.Writer
	format    Format
	rng       exportRange
	extended  bool
	table     string // quoted INSERT target
	force8    bool
	emptyNull bool

	colno    int
	colnames []string
}

func (st *exportState) puts(s string) error {
	_, err := io.WriteString(st.w, s)
	return err
}

func (st *exportState) putf(format string, args ...any) error {
	_, err := fmt.Fprintf(st.w, format, args...)
	return err
}

// colname returns the captured name of column i, or "" when none was captured.
func (st *exportState) colname(i int) string {
	if i >= 0 && i < len(st.colnames) {
		return st.colnames[i]
	}
	return ""
}

// setColname records the name of the current column and advances the column
// counter. Names are assigned by index, so a later column-name row overwrites
// an earlier one instead of extending the mapping.
func (st *exportState) setColname(name string) {
	if st.colno < len(st.colnames) {
		st.colnames[st.colno] = name
	} else {
		st.colnames = append(st.colnames, name)
	}
	st.colno++
}

// skipped reports whether a token at display position xpos falls outside the
// active column range. xpos is the position of a field's last character, so
// both bounds compare strictly against the enclosing separators.
func (st *exportState) skipped(xpos int) bool {
	return st.rng.xmin != -1 && (xpos <= st.rng.xmin || st.rng.xmax <= xpos)
}

// exportRow tokenizes one row against tmpl and feeds the tokens through
// processItem, coalescing consecutive data tokens into whole fields first.
func (st *exportState) exportRow(row string, tmpl Template, isColname bool) error {
	it := newLineIter(row, tmpl, st.force8)

	fieldStart, fieldEnd, fieldX := -1, 0, -1
	st.colno = 0

	for {
		start := it.pos
		tok, ok := it.next()
		if !ok {
			break
		}

		if tok.role == RoleData {
			if fieldStart < 0 {
				fieldStart = start
			}
			fieldEnd = it.pos
			fieldX = tok.xpos
			continue
		}

		if fieldStart >= 0 {
			if err := st.processItem(RoleData, row[fieldStart:fieldEnd], fieldX, isColname); err != nil {
				return err
			}
			fieldStart, fieldX = -1, -1
		}

		if err := st.processItem(tok.role, tok.text, tok.xpos, isColname); err != nil {
			return err
		}
	}

	if fieldStart >= 0 {
		if err := st.processItem(RoleData, row[fieldStart:fieldEnd], fieldX, isColname); err != nil {
			return err
		}
	}
	return st.processItem(RoleEnd, "", -1, isColname)
}

// processItem emits one token in the target format.
func (st *exportState) processItem(role Role, field string, xpos int, isColname bool) error {
	switch {
	case st.format.isInsert():
		return st.insertItem(role, field, xpos, isColname)
	case st.format == Text:
		return st.textItem(role, field, xpos)
	default:
		return st.dsvItem(role, field, xpos, isColname)
	}
}

func (st *exportState) insertItem(role Role, field string, xpos int, isColname bool) error {
	switch {
	case role == RoleEnd && !isColname:
		if st.colno == 0 {
			return nil
		}
		if st.format == Insert {
			return st.puts(");\n")
		}
		return st.putf(");\t\t -- %d. %s\n", st.colno, st.colname(st.colno-1))

	case role == RoleData:
		if st.skipped(xpos) {
			return nil
		}

		if isColname {
			st.setColname(quoteSQLIdentifier(trimSpaces(field)))
			return nil
		}

		if st.colno == 0 {
			if err := st.insertPrefix(); err != nil {
				return err
			}
		} else if st.format == Insert {
			if err := st.puts(", "); err != nil {
				return err
			}
		} else {
			if err := st.putf(",\t\t -- %d. %s\n          ", st.colno, st.colname(st.colno-1)); err != nil {
				return err
			}
		}
		st.colno++

		return st.puts(quoteSQLLiteral(trimSpaces(field), st.force8, st.emptyNull))
	}
	return nil
}

// insertPrefix writes "INSERT INTO <table>(<cols>) VALUES(" ahead of the
// first value of a row, listing the captured column names. The commented
// variant puts one name per line, aligned under the opening parenthesis.
func (st *exportState) insertPrefix() error {
	if err := st.puts("INSERT INTO " + st.table); err != nil {
		return err
	}

	if len(st.colnames) > 0 {
		if st.format == Insert {
			if err := st.puts("(" + strings.Join(st.colnames, ", ") + ")"); err != nil {
				return err
			}
		} else {
			indent := strings.Repeat(" ", runewidth.StringWidth(st.table)+1+len("INSERT INTO "))
			if err := st.puts("("); err != nil {
				return err
			}
			for i, name := range st.colnames {
				if i > 0 {
					if err := st.puts(indent); err != nil {
						return err
					}
				}
				mark := ","
				if i == len(st.colnames)-1 {
					mark = ")"
				}
				if err := st.putf("%s%s\t\t -- %d.\n", name, mark, i+1); err != nil {
					return err
				}
			}
		}
	}

	if st.format == Insert {
		return st.puts(" VALUES(")
	}
	return st.puts("   VALUES(")
}

func (st *exportState) textItem(role Role, field string, xpos int) error {
	if role == RoleEnd {
		return st.puts("\n")
	}
	if (role == RoleData || role == RoleBorder) && st.skipped(xpos) {
		return nil
	}
	return st.puts(field)
}

func (st *exportState) dsvItem(role Role, field string, xpos int, isColname bool) error {
	if role == RoleEnd {
		if st.extended {
			return nil
		}
		return st.puts("\n")
	}
	if role != RoleData {
		return nil
	}
	if st.skipped(xpos) {
		return nil
	}

	value, null := csvQuote(trimSpaces(field), st.force8, st.emptyNull)

	if st.extended && isColname {
		st.setColname(value)
		return nil
	}

	if st.extended {
		err := st.putf("%s,%s\n", st.colname(st.colno), value)
		st.colno++
		return err
	}

	if st.colno > 0 {
		sep := ","
		if st.format == TSV {
			sep = "\t"
		}
		if err := st.puts(sep); err != nil {
			return err
		}
	}
	st.colno++

	if null {
		return nil
	}
	return st.puts(value)
}
