package meretable

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown writes a GitHub-flavored Markdown table. Markdown has a single
// header row, so nested titles are flattened into leaf paths.
func writeMarkdown(w io.Writer, t *Table) error {
	header := flatHeader(t)
	if len(header) == 0 {
		return nil
	}
	rows := t.Rows()

	// Minimum 3 for the separator dashes.
	widths := make([]int, len(header))
	for i, col := range header {
		widths[i] = max(3, runewidth.StringWidth(escapeMarkdown(col)))
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(escapeMarkdown(cell)))
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width-1) + ":"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

// writeMarkdownRow right-aligns cells to match the text grid. Padding counts
// display width, so wide characters line up in an editor.
func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := escapeMarkdown(cells[i])
		if pad := width - runewidth.StringWidth(cell); pad > 0 {
			cell = strings.Repeat(" ", pad) + cell
		}
		padded[i] = cell
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
