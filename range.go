package tabclip

import "fmt"

// exportRange bounds one export call. Row bounds are inclusive; xmin/xmax
// bound display columns, with -1 meaning unbounded.
type exportRange struct {
	minRow int
	maxRow int
	xmin   int
	xmax   int
}

// rowVisibility controls which non-data rows qualify for the export.
type rowVisibility struct {
	header     bool
	headerLine bool
	border     bool
	footer     bool

	// saveColnames forces header rows in so column names can be captured.
	saveColnames bool
}

// computeRange translates a copy command into a concrete export range, the
// non-data row visibility, and the effective format. The extended copy-line
// command falls back to CSV when the requested format is not
// delimiter-separated.
func computeRange(req Request, layout Layout, opts Options) (exportRange, rowVisibility, Format, error) {
	rng := exportRange{
		minRow: layout.FirstDataRow,
		maxRow: layout.LastRow,
		xmin:   -1,
		xmax:   -1,
	}
	vis := rowVisibility{header: true, headerLine: true, border: true, footer: true}
	format := req.Format
	sel := req.Selection

	hasSelection := (sel.FirstRow != -1 && sel.Rows > 0) ||
		(sel.FirstColumn != -1 && sel.Columns > 0)

	if req.Command == CmdCopyLineExtended && !format.isDSV() {
		format = CSV
	}
	if req.Command == CmdCopyLineExtended || format.isInsert() {
		vis.saveColnames = true
	}

	if req.Command == CmdCopyLine ||
		req.Command == CmdCopyLineExtended ||
		(req.Command == CmdCopy && !opts.NoCursor && !hasSelection) {
		rng.minRow = req.Cursor.Row + layout.FirstDataRow
		rng.maxRow = rng.minRow
		vis.footer = false
	}

	if (req.Command == CmdCopy && opts.VerticalCursor) || req.Command == CmdCopyColumn {
		if c := req.Cursor.Column; c >= 0 && c < len(layout.ColRanges) {
			rng.xmin = layout.ColRanges[c].Xmin
			rng.xmax = layout.ColRanges[c].Xmax
		}
		vis.footer = false
	}

	// Copying the cell under the crossed cursors keeps only the value.
	if req.Command == CmdCopy && !opts.NoCursor && opts.VerticalCursor {
		vis.header = false
		vis.headerLine = false
		vis.border = false
	}

	if req.Command == CmdCopyTopLines || req.Command == CmdCopyBottomLines {
		if req.Rows < 0 || req.Percent < 0 {
			return rng, vis, format, fmt.Errorf("%w: rows %d, percent %v",
				ErrNegativeRange, req.Rows, req.Percent)
		}

		rows := req.Rows
		total := layout.LastDataRow - layout.FirstDataRow + 1
		if req.Percent != 0 {
			rows = int(float64(total) * (req.Percent / 100.0))
		}

		skip := 0
		if req.Command == CmdCopyBottomLines {
			skip = total - rows
		}
		rng.minRow += skip
		rng.maxRow = layout.FirstDataRow + rows - 1 + skip
		vis.footer = false
	}

	if req.Command == CmdCopyMarkedLines || req.Command == CmdCopySearchedLines {
		vis.footer = false
	}

	if (req.Command == CmdCopy && hasSelection) || req.Command == CmdCopySelected {
		if sel.FirstRow != -1 {
			rng.minRow = sel.FirstRow + layout.FirstDataRow
			rng.maxRow = rng.minRow + sel.Rows - 1
		}
		if sel.FirstColumn != -1 && sel.Columns > 0 {
			rng.xmin = sel.FirstColumn
			rng.xmax = rng.xmin + sel.Columns - 1
		}
		if rng.minRow > layout.FirstDataRow || rng.maxRow < layout.LastDataRow {
			vis.footer = false
		}
	}

	if format != Text {
		vis.border = false
		vis.footer = false
		vis.headerLine = false
	}
	if vis.saveColnames {
		vis.header = true
	}

	return rng, vis, format, nil
}
