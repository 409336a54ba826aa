package meretable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ColumnDef declares a column and, optionally, its subcolumns.
type ColumnDef struct {
	Name       string      `json:"name" yaml:"name" toml:"name"`
	Subcolumns []ColumnDef `json:"subcolumns,omitempty" yaml:"subcolumns,omitempty" toml:"subcolumns,omitempty"`
}

// Definition is a declarative description of a whole table. Each row lists
// one value per leaf column in display order.
type Definition struct {
	Columns []ColumnDef `json:"columns" yaml:"columns" toml:"columns"`
	Rows    [][]string  `json:"rows,omitempty" yaml:"rows,omitempty" toml:"rows,omitempty"`
}

// DefinitionKind is the encoding of a [Definition] document.
type DefinitionKind string

const (
	DefinitionYAML DefinitionKind = "yaml"
	DefinitionTOML DefinitionKind = "toml"
	DefinitionJSON DefinitionKind = "json"
)

// ParseDefinitionKind parses a kind name. "yml" is accepted for YAML.
func ParseDefinitionKind(s string) (DefinitionKind, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return DefinitionYAML, nil
	case "toml":
		return DefinitionTOML, nil
	case "json":
		return DefinitionJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidDefinition, s)
	}
}

// KindFromPath guesses the kind from a file extension and reports whether it
// could.
func KindFromPath(path string) (DefinitionKind, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	kind, err := ParseDefinitionKind(ext)
	return kind, err == nil
}

// DecodeDefinition reads a definition document of the given kind from r.
func DecodeDefinition(r io.Reader, kind DefinitionKind) (Definition, error) {
	var def Definition
	var err error
	switch kind {
	case DefinitionYAML:
		err = yaml.NewDecoder(r).Decode(&def)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case DefinitionTOML:
		_, err = toml.NewDecoder(r).Decode(&def)
	case DefinitionJSON:
		err = json.NewDecoder(r).Decode(&def)
	default:
		return Definition{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidDefinition, kind)
	}
	if err != nil {
		return Definition{}, fmt.Errorf("%w: decode %s: %w", ErrInvalidDefinition, kind, err)
	}
	return def, nil
}

// Build creates the table described by d. Column names must be non-empty and
// every row must have one value per leaf column.
func (d Definition) Build() (*Table, error) {
	if err := validateDefs(d.Columns, nil); err != nil {
		return nil, err
	}
	t := (&Table{}).AddColumnDefs(d.Columns...)
	for i, row := range d.Rows {
		if err := t.addRow(row); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidDefinition, i+1, err)
		}
	}
	return t, nil
}

func validateDefs(defs []ColumnDef, prefix []string) error {
	for _, def := range defs {
		path := append(append([]string(nil), prefix...), def.Name)
		if def.Name == "" {
			return fmt.Errorf("%w: empty column name at %q", ErrInvalidDefinition, strings.Join(path, HeaderSep))
		}
		if err := validateDefs(def.Subcolumns, path); err != nil {
			return err
		}
	}
	return nil
}

// AddColumnDefs adds the declared columns and subcolumns. Names already
// present at a level are merged rather than duplicated.
func (t *Table) AddColumnDefs(defs ...ColumnDef) *Table {
	for _, def := range defs {
		t.addDef(nil, def)
	}
	return t
}

func (t *Table) addDef(prefix []string, def ColumnDef) {
	path := append(append([]string(nil), prefix...), def.Name)
	if len(def.Subcolumns) == 0 {
		t.AddPath(path...)
		return
	}
	for _, sub := range def.Subcolumns {
		t.addDef(path, sub)
	}
}

// Definition describes t, including its rows. Column names are never empty,
// so building the result yields an equal table.
func (t *Table) Definition() Definition {
	return Definition{
		Columns: columnDefs(t.columns),
		Rows:    t.Rows(),
	}
}

func columnDefs(cols []*column) []ColumnDef {
	if len(cols) == 0 {
		return nil
	}
	defs := make([]ColumnDef, len(cols))
	for i, col := range cols {
		defs[i] = ColumnDef{Name: col.title, Subcolumns: columnDefs(col.children)}
	}
	return defs
}
