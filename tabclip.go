package tabclip

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNegativeRange     = errors.New(`negative "rows" or "percent" argument`)
)

// Format represents an output format.
type Format string

const (
	Text           Format = "text"
	CSV            Format = "csv"
	TSV            Format = "tsv"
	Insert         Format = "insert"
	InsertComments Format = "insert-comments"
)

var formats = []Format{Text, CSV, TSV, Insert, InsertComments}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// isInsert reports whether f emits SQL INSERT statements.
func (f Format) isInsert() bool { return f == Insert || f == InsertComments }

// isDSV reports whether f is a delimiter-separated format.
func (f Format) isDSV() bool { return f == CSV || f == TSV }

// Command identifies a copy-command variant. Each variant maps to a row range
// and an optional display-column range; see the package documentation for the
// selection policy.
type Command int

const (
	// CmdCopy copies the whole table, or the cursor row/cell when the cursor
	// is enabled, or the rectangular selection when one exists.
	CmdCopy Command = iota
	CmdCopyLine
	CmdCopyLineExtended
	CmdCopyColumn
	CmdCopyTopLines
	CmdCopyBottomLines
	CmdCopyMarkedLines
	CmdCopySearchedLines
	CmdCopySelected
)

var commandNames = map[Command]string{
	CmdCopy:              "copy",
	CmdCopyLine:          "copy-line",
	CmdCopyLineExtended:  "copy-line-extended",
	CmdCopyColumn:        "copy-column",
	CmdCopyTopLines:      "copy-top-lines",
	CmdCopyBottomLines:   "copy-bottom-lines",
	CmdCopyMarkedLines:   "copy-marked-lines",
	CmdCopySearchedLines: "copy-searched-lines",
	CmdCopySelected:      "copy-selected",
}

// String returns the command name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// Request describes one export call: what to copy, in which format, and the
// cursor/selection state the command variant resolves against.
type Request struct {
	Command Command
	Format  Format

	// Rows and Percent parameterize CmdCopyTopLines/CmdCopyBottomLines.
	// A non-zero Percent overrides Rows. Both must be non-negative.
	Rows    int
	Percent float64

	// TableName is the INSERT target. It is identifier-quoted on demand.
	TableName string

	Cursor    Cursor
	Selection Selection

	// Match recomputes the search-hit state of a row for
	// CmdCopySearchedLines. When nil, Line.Matched is used instead.
	Match func(text string) bool
}

// Export serializes the rows selected by req to w.
//
// The export range is computed once from the request and the layout; each
// qualifying row is tokenized against the layout's template and emitted in the
// requested format. The first sink error aborts the export; bytes already
// written remain in the sink.
func Export(w io.Writer, src LineSource, layout Layout, req Request, opts Options) error {
	rng, vis, format, err := computeRange(req, layout, opts)
	if err != nil {
		return err
	}

	st := &exportState{
		w:         w,
		format:    format,
		rng:       rng,
		extended:  req.Command == CmdCopyLineExtended,
		force8:    opts.Force8Bit,
		emptyNull: opts.EmptyStringIsNull,
	}
	if format.isInsert() {
		st.table = quoteSQLIdentifier(req.TableName)
	}
	if vis.saveColnames {
		st.colnames = make([]string, 0, layout.Columns)
	}

	for rn, line := range src.Lines() {
		isColname := false

		if rn >= layout.FirstDataRow && rn <= layout.LastDataRow {
			if rn < rng.minRow || rn > rng.maxRow {
				continue
			}
			switch req.Command {
			case CmdCopyMarkedLines:
				if !line.Bookmarked {
					continue
				}
			case CmdCopyLine:
				if rn-layout.FirstDataRow != req.Cursor.Row {
					continue
				}
			case CmdCopySearchedLines:
				matched := line.Matched
				if req.Match != nil {
					matched = req.Match(line.Text)
				}
				if !matched {
					continue
				}
			}
		} else {
			isColname = rn != layout.BorderTopRow &&
				rn != layout.BorderBottomRow &&
				rn != layout.BorderHeadRow &&
				rn <= layout.FixedRows

			if !vis.border && (rn == layout.BorderTopRow || rn == layout.BorderBottomRow) {
				continue
			}
			if !vis.headerLine && rn == layout.BorderHeadRow {
				continue
			}
			if !vis.header && rn < layout.FixedRows {
				continue
			}
			if !vis.footer && layout.FooterRow != -1 && rn >= layout.FooterRow {
				continue
			}
		}

		if err := st.exportRow(line.Text, layout.templateFor(isColname), isColname); err != nil {
			return err
		}
	}
	return nil
}

// ExportString serializes the rows selected by req and returns the result.
func ExportString(src LineSource, layout Layout, req Request, opts Options) (string, error) {
	var sb strings.Builder
	if err := Export(&sb, src, layout, req, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}
