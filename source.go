package tabclip

import "iter"

// Line is one rendered table row with its per-line flags.
type Line struct {
	Text string

	// Bookmarked marks the row for CmdCopyMarkedLines.
	Bookmarked bool

	// Matched marks the row as a search hit for CmdCopySearchedLines. It is
	// ignored when Request.Match is set.
	Matched bool
}

// LineSource yields the rendered rows of the table in display order, keyed by
// row number. A source is consumed by exactly one export call at a time.
type LineSource interface {
	Lines() iter.Seq2[int, Line]
}

// Rows adapts an in-memory slice of lines to LineSource. The slice index is
// the row number.
type Rows []Line

// Lines implements LineSource.
func (rs Rows) Lines() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i, ln := range rs {
			if !yield(i, ln) {
				return
			}
		}
	}
}

// TextRows wraps plain row strings in a Rows source with no line flags.
func TextRows(lines ...string) Rows {
	rs := make(Rows, len(lines))
	for i, text := range lines {
		rs[i] = Line{Text: text}
	}
	return rs
}
