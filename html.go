package meretable

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// writeHTML writes a <table> whose header has one row per column level.
// Group titles span their leaves; leaf titles span the remaining levels.
func writeHTML(w io.Writer, t *Table) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	depth := t.Depth()
	if depth > 0 {
		levels := make([][]*column, depth)
		collectLevels(t.columns, 0, levels)

		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		for level, cols := range levels {
			if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
				return err
			}
			for _, col := range cols {
				if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", spanAttrs(col, depth-level), html.EscapeString(col.title)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "      <td>%s</td>\n", html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

// collectLevels appends every column to the header row of its level.
func collectLevels(cols []*column, level int, levels [][]*column) {
	for _, col := range cols {
		levels[level] = append(levels[level], col)
		collectLevels(col.children, level+1, levels)
	}
}

// spanAttrs returns the colspan of a group or the rowspan of a leaf that
// covers the remaining header rows.
func spanAttrs(col *column, remaining int) string {
	var sb strings.Builder
	if n := col.leaves(); n > 1 {
		fmt.Fprintf(&sb, ` colspan="%d"`, n)
	}
	if col.isLeaf() && remaining > 1 {
		fmt.Fprintf(&sb, ` rowspan="%d"`, remaining)
	}
	return sb.String()
}
