package meretable

import (
	"encoding/csv"
	"io"
	"strings"
)

// writeCSV writes a header row of leaf paths followed by the rows.
func writeCSV(w io.Writer, t *Table) error {
	if t.NumLeaves() == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(flatHeader(t)); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// flatHeader joins each leaf path with [HeaderSep].
func flatHeader(t *Table) []string {
	paths := t.Headers()
	header := make([]string, len(paths))
	for i, path := range paths {
		header[i] = strings.Join(path, HeaderSep)
	}
	return header
}
