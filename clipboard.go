package tabclip

import "github.com/atotto/clipboard"

// ExportToClipboard serializes the rows selected by req and places the result
// on the system clipboard. Nothing reaches the clipboard when the export
// fails.
func ExportToClipboard(src LineSource, layout Layout, req Request, opts Options) error {
	out, err := ExportString(src, layout, req, opts)
	if err != nil {
		return err
	}
	return clipboard.WriteAll(out)
}
