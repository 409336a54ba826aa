package meretable

import (
	"fmt"
	"io"
	"strings"
)

// writeTSV writes tab-joined lines without quoting.
func writeTSV(w io.Writer, t *Table) error {
	if t.NumLeaves() == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, strings.Join(flatHeader(t), "\t")); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
