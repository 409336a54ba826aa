package meretable

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Characters of the text grid.
const (
	cornerChar byte = '+'
	sideChar   byte = '|'
	rowFill    byte = '-'
	headFill   byte = '='
	blankFill  byte = ' '
)

// grid accumulates the lines of a rendered table.
type grid struct {
	sb strings.Builder
}

func (g *grid) open(edge byte) { g.sb.WriteByte(edge) }

func (g *grid) close() { g.sb.WriteByte('\n') }

// cell writes text right-justified in width using fill, followed by end.
func (g *grid) cell(text string, width int, fill, end byte) {
	if pad := width - utf8.RuneCountInString(text); pad > 0 {
		g.sb.WriteString(strings.Repeat(string(fill), pad))
	}
	g.sb.WriteString(text)
	g.sb.WriteByte(end)
}

func (g *grid) rule(width int, fill byte) {
	g.cell("", width, fill, cornerChar)
}

// Render returns the table as bordered text. Column widths are recomputed
// first; nothing else about the table changes.
//
// A table with subcolumns stacks its header: each group title sits on its own
// line above a dashed rule and the titles of its subcolumns. Columns that are
// not split have their title centered vertically across the header.
func (t *Table) Render() string {
	for _, col := range t.columns {
		col.computeWidth()
	}
	leaves := leafColumns(t.columns)

	var g grid

	g.open(cornerChar)
	for _, col := range t.columns {
		g.rule(col.width, rowFill)
	}
	g.close()

	// 2D-1 header lines. Without subcolumns that is the single title line,
	// with no blank lines around it.
	last := 2*t.Depth() - 2
	for line := 0; line <= last; line++ {
		g.open(sideChar)
		for _, col := range t.columns {
			g.header(col, line, 0, last)
		}
		g.close()
	}

	g.open(cornerChar)
	for _, leaf := range leaves {
		g.rule(leaf.width, headFill)
	}
	g.close()

	for row := range t.numRows {
		g.open(sideChar)
		for _, leaf := range leaves {
			g.cell(leaf.values[row], leaf.width, blankFill, sideChar)
		}
		g.close()
	}

	g.open(cornerChar)
	for _, leaf := range leaves {
		g.rule(leaf.width, rowFill)
	}
	g.close()

	return g.sb.String()
}

// header writes the part of header line that belongs to c, where c owns the
// header lines first through last.
func (g *grid) header(c *column, line, first, last int) {
	if c.isLeaf() {
		title := ""
		if line == (first+last)/2 {
			title = c.title
		}
		g.cell(title, c.width, blankFill, sideChar)
		return
	}
	switch line {
	case first:
		g.cell(c.title, c.width, blankFill, sideChar)
	case first + 1:
		for _, child := range c.children {
			g.rule(child.width, rowFill)
		}
	default:
		for _, child := range c.children {
			g.header(child, line, first+2, last)
		}
	}
}

// String implements [fmt.Stringer] and returns [Table.Render].
func (t *Table) String() string { return t.Render() }

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}

func leafColumns(cols []*column) []*column {
	var out []*column
	walkLeaves(cols, nil, func(_ []string, leaf *column) {
		out = append(out, leaf)
	})
	return out
}
