package tabclip

import "strings"

// nullSymbol is the glyph the table renderer uses for SQL NULL values.
const nullSymbol = "∅"

// trimSpaces strips leading and trailing space characters. The result is a
// slice of s; trimming never allocates.
func trimSpaces(s string) string {
	return strings.Trim(s, " ")
}

// csvQuote renders a field for CSV output. The returned flag reports whether
// the field is NULL; a NULL field renders as nothing between separators.
//
// The NULL glyph and, when emptyIsNull is set, the empty string map to NULL.
// An empty non-NULL field becomes a quoted empty string. Fields containing a
// quote, comma, tab, CR, or LF are wrapped in double quotes with internal
// quotes doubled; everything else passes through unchanged.
func csvQuote(s string, force8 bool, emptyIsNull bool) (string, bool) {
	if !force8 && s == nullSymbol {
		return "", true
	}
	if s == "" {
		if emptyIsNull {
			return "", true
		}
		return `""`, false
	}
	if !strings.ContainsAny(s, "\",\t\r\n") {
		return s, false
	}

	var b strings.Builder
	b.Grow(2*len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String(), false
}

// quoteSQLIdentifier quotes s for use as a SQL identifier. An identifier that
// is already quoted, or empty, is returned unchanged. Quoting is skipped only
// when the identifier starts with a lowercase letter and contains nothing but
// lowercase letters, digits, and underscores.
func quoteSQLIdentifier(s string) string {
	if s == "" || s[0] == '"' {
		return s
	}

	needsQuoting := false
	if s[0] != ' ' && (s[0] < 'a' || s[0] > 'z') {
		needsQuoting = true
	} else {
		for i := 0; i < len(s); i++ {
			c := s[i]
			if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
				needsQuoting = true
				break
			}
		}
	}
	if !needsQuoting {
		return s
	}

	var b strings.Builder
	b.Grow(2*len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// quoteSQLLiteral renders a field as a SQL literal. The empty field becomes
// NULL or '' depending on emptyIsNull; the literal texts NULL and null and the
// NULL glyph stay NULL; purely numeric fields (digits with at most one decimal
// point) pass through unquoted; everything else is wrapped in single quotes
// with internal quotes doubled.
func quoteSQLLiteral(s string, force8 bool, emptyIsNull bool) string {
	if s == "" {
		if emptyIsNull {
			return "NULL"
		}
		return "''"
	}
	if s == "NULL" || s == "null" {
		return s
	}
	if !force8 && s == nullSymbol {
		return "NULL"
	}

	needsQuoting := false
	hasDot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if hasDot {
				needsQuoting = true
				break
			}
			hasDot = true
		} else if c < '0' || c > '9' {
			needsQuoting = true
			break
		}
	}
	if !needsQuoting {
		return s
	}

	var b strings.Builder
	b.Grow(2*len(s) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			b.WriteByte('\'')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('\'')
	return b.String()
}
