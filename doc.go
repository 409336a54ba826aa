// Package meretable renders tables with nested column headers as bordered
// ASCII text.
//
// A column is either a leaf, holding one value per row, or a group of
// subcolumns. Rows are supplied as flat value lists that are spread over the
// leaf columns depth-first, left to right:
//
//	t := meretable.New("Name").
//		AddSubcolumn("Score", "Math").
//		AddSubcolumn("Score", "Art").
//		AddValues("alice", "90", "75")
//	if err := t.Err(); err != nil { ... }
//	fmt.Print(t)
//
// prints
//
//	+-----+---------+
//	|     |    Score|
//	| Name|----+----+
//	|     |Math| Art|
//	+=====+====+====+
//	|alice|  90|  75|
//	+-----+----+----+
//
// # Widths
//
// Every column is as wide as its title and its longest value. A group is
// wide enough for its title and gives all of its direct subcolumns the same
// width, so the cells under one title always form a regular grid. Widths are
// counted in characters (runes); display width of wide or combining
// characters is not taken into account. The [Markdown] format alone pads by
// display width.
//
// # Errors
//
// Mutating methods return the table so they can be chained. A call that
// fails changes nothing and records its error; [Table.Err] returns the
// recorded errors joined:
//
//   - [ErrArgumentCountMismatch] — a row with the wrong number of values
//   - [ErrInvalidStructuralEdit] — adding columns once rows exist, or an
//     empty column name
//
// Adding a column name that already exists at the same level is a no-op.
//
// # Other Formats
//
// [Write] and [Marshal] render a table as CSV, TSV, Markdown, HTML, JSON,
// JSONL, YAML, or through a Go template, next to the default [Text] grid.
// Formats with a single header row use leaf paths joined with [HeaderSep].
//
// # Building Tables
//
// Besides the methods on [Table], tables can be built from values
// implementing [Rower] with [FromItems], [AppendItems], [AppendIter] and
// [AppendChan], or from a YAML, TOML, or JSON document with
// [DecodeDefinition] and [Definition.Build].
package meretable
