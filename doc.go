// Package tabclip serializes a rendered terminal table view into copyable
// output formats.
//
// A pager renders a table as rows of display text plus a template line that
// tags every display column with its structural role (field data, column
// separator, frame decoration). This package walks those rows against the
// template and re-emits the selected slice of the table as plain text, CSV,
// TSV, or SQL INSERT statements. The central entry points are [Export],
// [ExportString], and [ExportToClipboard], which accept a [Request] describing
// the copy command, format, and cursor/selection state.
//
// # Collaborators
//
// The caller supplies three things the engine does not own:
//
//   - [LineSource] — yields rendered rows in display order. [Rows] adapts an
//     in-memory slice.
//   - [Layout] — row classification boundaries (data span, border rows, header
//     rows, footer) plus per-column display extents and the [Template].
//   - [Options] — rendering flags such as force-8-bit and
//     empty-string-is-null. [LoadOptions] decodes them from YAML.
//
// # Copy Commands
//
// A [Command] selects which rows and columns qualify:
//
//   - [CmdCopy] — whole table, or the cursor row/cell when a cursor is active,
//     or the rectangular selection when one exists
//   - [CmdCopyLine], [CmdCopyLineExtended] — the cursor row; extended mode
//     emits one "column,value" line per column
//   - [CmdCopyColumn] — the cursor column across all data rows
//   - [CmdCopyTopLines], [CmdCopyBottomLines] — the first or last N rows,
//     with N given directly or as a percentage
//   - [CmdCopyMarkedLines], [CmdCopySearchedLines] — bookmarked or
//     search-matched data rows
//   - [CmdCopySelected] — the rectangular selection
//
// # Formats
//
// [Text] preserves the rendered layout verbatim. [CSV] and [TSV] trim and
// escape fields RFC4180-style, rendering the table's NULL glyph as an empty
// field. [Insert] emits one terse INSERT statement per row using column names
// captured from the header; [InsertComments] emits the same statement with one
// value per line and a trailing column comment. Use [ParseFormat] to convert a
// CLI flag string into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrNegativeRange] — negative row count or percent in a top/bottom copy
//
// Write failures from the output sink abort the export and propagate
// unchanged; bytes already written stay written.
package tabclip
