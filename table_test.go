package meretable_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/meretable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

// scoreTable has one plain column and one group of two subcolumns.
func scoreTable() *meretable.Table {
	return meretable.New("Name").
		AddSubcolumn("Score", "Math").
		AddSubcolumn("Score", "Art").
		AddValues("alice", "90", "75").
		AddValues("bob", "8", "100")
}

func TestRender(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		table *meretable.Table
		want  string
	}{
		"flat columns": {
			table: meretable.New("A", "B").AddValues("x", "y"),
			want: lines(
				"+-+-+",
				"|A|B|",
				"+=+=+",
				"|x|y|",
				"+-+-+",
			),
		},
		"single group": {
			table: meretable.New().
				AddSubcolumn("G", "a").
				AddSubcolumn("G", "b").
				AddValues("1", "2"),
			want: lines(
				"+---+",
				"|  G|",
				"|-+-+",
				"|a|b|",
				"+=+=+",
				"|1|2|",
				"+-+-+",
			),
		},
		"plain and grouped": {
			table: meretable.New("Name").
				AddSubcolumn("Score", "Math").
				AddSubcolumn("Score", "Art").
				AddValues("alice", "90", "75"),
			want: lines(
				"+-----+---------+",
				"|     |    Score|",
				"| Name|----+----+",
				"|     |Math| Art|",
				"+=====+====+====+",
				"|alice|  90|  75|",
				"+-----+----+----+",
			),
		},
		"group title wider than subcolumns": {
			table: meretable.New().
				AddSubcolumn("Results", "a").
				AddSubcolumn("Results", "b").
				AddValues("1", "2"),
			want: lines(
				"+---------+",
				"|  Results|",
				"|----+----+",
				"|   a|   b|",
				"+====+====+",
				"|   1|   2|",
				"+----+----+",
			),
		},
		"values right justified": {
			table: meretable.New("Name", "Age").
				AddValues("alice", "30").
				AddValues("bo", "7"),
			want: lines(
				"+-----+---+",
				"| Name|Age|",
				"+=====+===+",
				"|alice| 30|",
				"|   bo|  7|",
				"+-----+---+",
			),
		},
		"no rows": {
			table: meretable.New("Name", "Age"),
			want: lines(
				"+----+---+",
				"|Name|Age|",
				"+====+===+",
				"+----+---+",
			),
		},
		"no columns": {
			table: meretable.New(),
			want:  lines("+", "+", "+"),
		},
		"three levels": {
			table: meretable.New().
				AddPath("A", "B", "x").
				AddPath("A", "B", "y").
				AddPath("A", "z").
				AddColumn("K").
				AddValues("1", "2", "3", "4"),
			want: lines(
				"+-------+-+",
				"|      A| |",
				"|---+---+ |",
				"|  B|   |K|",
				"|-+-+  z| |",
				"|x|y|   | |",
				"+=+=+===+=+",
				"|1|2|  3|4|",
				"+-+-+---+-+",
			),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, tt.table.Err())
			assert.Equal(t, tt.want, tt.table.Render())
		})
	}
}

func TestRenderZeroValueTable(t *testing.T) {
	t.Parallel()
	var tbl meretable.Table
	assert.Equal(t, lines("+", "+", "+"), tbl.Render())
}

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()
	tbl := scoreTable()
	first := tbl.Render()
	assert.Equal(t, first, tbl.Render())
	assert.Equal(t, first, tbl.String())
}

func TestRenderAfterClearKeepsHeader(t *testing.T) {
	t.Parallel()
	fresh := meretable.New("Name").
		AddSubcolumn("Score", "Math").
		AddSubcolumn("Score", "Art")
	before := fresh.Render()

	tbl := scoreTable().Clear()
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, before, tbl.Render())
}

func TestRenderEqualWidthSiblings(t *testing.T) {
	t.Parallel()
	tbl := meretable.New().
		AddSubcolumn("Group", "a").
		AddSubcolumn("Group", "bb").
		AddSubcolumn("Group", "ccc").
		AddValues("1", "1234567", "12")

	out := strings.Split(strings.TrimSuffix(tbl.Render(), "\n"), "\n")
	// Subcolumn title line.
	cells := strings.Split(strings.Trim(out[3], "|"), "|")
	require.Len(t, cells, 3)
	for _, cell := range cells {
		assert.Len(t, cell, 7)
	}
}

// leafWidths reads the leaf widths off the "+=" rule under the header.
func leafWidths(t *testing.T, render string) []int {
	t.Helper()
	for _, line := range strings.Split(render, "\n") {
		if !strings.HasPrefix(line, "+=") {
			continue
		}
		var widths []int
		for _, cell := range strings.Split(strings.Trim(line, "+"), "+") {
			widths = append(widths, len(cell))
		}
		return widths
	}
	require.Fail(t, "no header rule", render)
	return nil
}

func TestRenderWidthMonotonic(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		build func(s string) *meretable.Table
		steps []string
	}{
		"widening value": {
			build: func(s string) *meretable.Table {
				return meretable.New("Name").
					AddSubcolumn("Score", "Math").
					AddSubcolumn("Score", "Art").
					AddValues("alice", s, "75")
			},
			steps: []string{"", "9", "90", "900", "9000000"},
		},
		"widening group title": {
			build: func(s string) *meretable.Table {
				return meretable.New("Name").
					AddSubcolumn(s, "Math").
					AddSubcolumn(s, "Art").
					AddValues("alice", "90", "75")
			},
			steps: []string{"S", "Sc", "Score", "Scoreboard", "Scoreboard totals"},
		},
		"widening value at depth 3": {
			build: func(s string) *meretable.Table {
				return meretable.New().
					AddPath("A", "B", "x").
					AddPath("A", "B", "y").
					AddPath("A", "z").
					AddColumn("K").
					AddValues("1", "2", s, "4")
			},
			steps: []string{"", "1", "12", "123", "1234", "123456"},
		},
		"widening title at depth 3": {
			build: func(s string) *meretable.Table {
				return meretable.New().
					AddPath(s, "B", "x").
					AddPath(s, "B", "y").
					AddPath(s, "z").
					AddColumn("K").
					AddValues("1", "2", "3", "4")
			},
			steps: []string{"A", "AB", "ABCD", "ABCDEFG", "ABCDEFGHIJKL"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var prev []int
			prevLine := 0
			for _, step := range tt.steps {
				tbl := tt.build(step)
				require.NoError(t, tbl.Err())
				out := tbl.Render()

				widths := leafWidths(t, out)
				for i := range prev {
					assert.GreaterOrEqual(t, widths[i], prev[i], "leaf %d at %q", i, step)
				}
				line := strings.Index(out, "\n")
				assert.GreaterOrEqual(t, line, prevLine, "line length at %q", step)
				prev, prevLine = widths, line
			}
		})
	}
}

func TestRenderLinesHaveEqualLength(t *testing.T) {
	t.Parallel()
	tbl := meretable.New("id").
		AddPath("metrics", "latency", "p50").
		AddPath("metrics", "latency", "p99").
		AddPath("metrics", "errors").
		AddPath("host", "region", "zone", "name").
		AddValues("1", "12ms", "340ms", "0", "eu-west-1a").
		AddValues("2", "9ms", "1.2s", "17", "us-east-1b")
	require.NoError(t, tbl.Err())

	out := strings.Split(strings.TrimSuffix(tbl.Render(), "\n"), "\n")
	for _, line := range out[1:] {
		assert.Len(t, line, len(out[0]), "line %q", line)
	}
}

func TestWriteTo(t *testing.T) {
	t.Parallel()
	tbl := scoreTable()
	var buf bytes.Buffer
	n, err := tbl.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, tbl.Render(), buf.String())
}

func TestWriteToError(t *testing.T) {
	t.Parallel()
	_, err := scoreTable().WriteTo(&errWriter{})
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestAddValuesDistributesInLeafOrder(t *testing.T) {
	t.Parallel()
	tbl := scoreTable()
	require.NoError(t, tbl.Err())
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, [][]string{
		{"alice", "90", "75"},
		{"bob", "8", "100"},
	}, tbl.Rows())
	assert.Equal(t, [][]string{
		{"Name"},
		{"Score", "Math"},
		{"Score", "Art"},
	}, tbl.Headers())
}

func TestAddValuesCountMismatch(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		values []string
	}{
		"too few":  {values: []string{"x"}},
		"too many": {values: []string{"x", "y", "z"}},
		"none":     {values: nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := meretable.New("A", "B")
			before := tbl.Render()

			err := tbl.AddValues(tt.values...).Err()
			require.ErrorIs(t, err, meretable.ErrArgumentCountMismatch)
			assert.Equal(t, 0, tbl.NumRows())
			assert.Equal(t, before, tbl.Render())
		})
	}
}

func TestAddValuesKeepsGoingAfterFailure(t *testing.T) {
	t.Parallel()
	tbl := meretable.New("A", "B").
		AddValues("x").
		AddValues("x", "y")
	require.ErrorIs(t, tbl.Err(), meretable.ErrArgumentCountMismatch)
	assert.Equal(t, 1, tbl.NumRows())
}

func TestAddColumnDeduplicates(t *testing.T) {
	t.Parallel()
	tbl := meretable.New("A", "B", "A").
		AddColumn("B").
		AddColumns("C", "A", "C")
	require.NoError(t, tbl.Err())
	assert.Equal(t, [][]string{{"A"}, {"B"}, {"C"}}, tbl.Headers())
}

func TestAddSubcolumn(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		table *meretable.Table
		want  [][]string
	}{
		"creates missing column": {
			table: meretable.New("A").AddSubcolumn("G", "x"),
			want:  [][]string{{"A"}, {"G", "x"}},
		},
		"splits existing column": {
			table: meretable.New("A", "B").AddSubcolumn("A", "x"),
			want:  [][]string{{"A", "x"}, {"B"}},
		},
		"deduplicates subcolumns": {
			table: meretable.New().AddSubcolumn("G", "x").AddSubcolumn("G", "x").AddSubcolumn("G", "y"),
			want:  [][]string{{"G", "x"}, {"G", "y"}},
		},
		"deep path": {
			table: meretable.New().AddPath("A", "B", "C").AddPath("A", "D"),
			want:  [][]string{{"A", "B", "C"}, {"A", "D"}},
		},
		"empty path": {
			table: meretable.New("A").AddPath(),
			want:  [][]string{{"A"}},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, tt.table.Err())
			assert.Equal(t, tt.want, tt.table.Headers())
		})
	}
}

func TestStructuralEditAfterRows(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		edit func(*meretable.Table) *meretable.Table
	}{
		"subcolumn on column with values": {
			edit: func(t *meretable.Table) *meretable.Table { return t.AddSubcolumn("A", "x") },
		},
		"new column": {
			edit: func(t *meretable.Table) *meretable.Table { return t.AddColumn("C") },
		},
		"new columns": {
			edit: func(t *meretable.Table) *meretable.Table { return t.AddColumns("A", "C") },
		},
		"new path": {
			edit: func(t *meretable.Table) *meretable.Table { return t.AddPath("G", "x") },
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := meretable.New("A", "B").AddValues("1", "2")
			before := tbl.Render()

			err := tt.edit(tbl).Err()
			require.ErrorIs(t, err, meretable.ErrInvalidStructuralEdit)
			assert.Equal(t, before, tbl.Render())
			assert.Equal(t, 2, tbl.NumLeaves())
		})
	}
}

func TestStructuralEditAfterRowsExistingNames(t *testing.T) {
	t.Parallel()
	tbl := meretable.New("A").
		AddSubcolumn("G", "x").
		AddValues("1", "2").
		AddColumn("A").
		AddSubcolumn("G", "x")
	assert.NoError(t, tbl.Err())
}

func TestStructuralEditAfterClear(t *testing.T) {
	t.Parallel()
	tbl := meretable.New("A").AddValues("1").Clear().AddSubcolumn("A", "x")
	require.NoError(t, tbl.Err())
	assert.Equal(t, [][]string{{"A", "x"}}, tbl.Headers())
}

func TestEmptyColumnName(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		edit func(*meretable.Table) *meretable.Table
	}{
		"new":              {edit: func(*meretable.Table) *meretable.Table { return meretable.New("") }},
		"column":           {edit: func(t *meretable.Table) *meretable.Table { return t.AddColumn("") }},
		"columns":          {edit: func(t *meretable.Table) *meretable.Table { return t.AddColumns("B", "") }},
		"subcolumn":        {edit: func(t *meretable.Table) *meretable.Table { return t.AddSubcolumn("G", "") }},
		"group":            {edit: func(t *meretable.Table) *meretable.Table { return t.AddSubcolumn("", "x") }},
		"inner path level": {edit: func(t *meretable.Table) *meretable.Table { return t.AddPath("G", "", "x") }},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := tt.edit(meretable.New())
			require.ErrorIs(t, tbl.Err(), meretable.ErrInvalidStructuralEdit)
			assert.Equal(t, 0, tbl.NumLeaves())
		})
	}
}

func TestErrJoinsFailures(t *testing.T) {
	t.Parallel()
	tbl := meretable.New("A").
		AddValues().
		AddValues("1").
		AddColumn("B")
	err := tbl.Err()
	assert.ErrorIs(t, err, meretable.ErrArgumentCountMismatch)
	assert.ErrorIs(t, err, meretable.ErrInvalidStructuralEdit)
}

func TestDepth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, meretable.New().Depth())
	assert.Equal(t, 1, meretable.New("A").Depth())
	assert.Equal(t, 2, meretable.New("A").AddSubcolumn("B", "c").Depth())
	assert.Equal(t, 3, meretable.New().AddPath("A", "B", "C").Depth())
}

func TestRowsIsCopy(t *testing.T) {
	t.Parallel()
	tbl := meretable.New("A").AddValues("1")
	rows := tbl.Rows()
	rows[0][0] = "changed"
	assert.Equal(t, [][]string{{"1"}}, tbl.Rows())
}
