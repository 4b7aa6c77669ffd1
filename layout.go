package tabclip

// ColRange is the display-x extent of one column. Xmin and Xmax are the
// positions of the separators enclosing the column, so the field characters
// lie strictly between them.
type ColRange struct {
	Xmin int
	Xmax int
}

// Layout describes the row structure of the rendered table. Row numbers refer
// to the numbers yielded by the LineSource; rows that do not exist are -1.
type Layout struct {
	FirstDataRow int
	LastDataRow  int

	// LastRow is the final row of the table, including any footer.
	LastRow int

	BorderTopRow    int
	BorderBottomRow int

	// BorderHeadRow is the separator line between header and data.
	BorderHeadRow int

	// FixedRows counts the header rows pinned above the data.
	FixedRows int

	// FooterRow is the first footer row, or -1 when the table has none.
	FooterRow int

	// Columns is the total column count.
	Columns int

	// ColRanges holds the display extent of each column, indexed by column
	// number.
	ColRanges []ColRange

	// Template tags the display columns of data rows.
	Template Template

	// HeaderTemplate, when non-nil, tags header rows instead of Template.
	HeaderTemplate Template
}

func (l Layout) templateFor(colname bool) Template {
	if colname && l.HeaderTemplate != nil {
		return l.HeaderTemplate
	}
	return l.Template
}

// Cursor is the pager's cursor position. Row is relative to the first data
// row; Column indexes Layout.ColRanges.
type Cursor struct {
	Row    int
	Column int
}

// Selection is a rectangular selection. FirstRow is relative to the first
// data row and FirstColumn is a display-x position; -1 means no selection on
// that axis.
type Selection struct {
	FirstRow int
	Rows     int

	FirstColumn int
	Columns     int
}

// NoSelection is the empty selection.
var NoSelection = Selection{FirstRow: -1, FirstColumn: -1}
