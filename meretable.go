package meretable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrArgumentCountMismatch = errors.New("argument count mismatch")
	ErrInvalidStructuralEdit = errors.New("invalid structural edit")
	ErrUnsupportedFormat     = errors.New("unsupported format")
	ErrMissingInterface      = errors.New("missing required interface")
	ErrInvalidTemplate       = errors.New("invalid template")
	ErrInvalidDefinition     = errors.New("invalid definition")
)

// HeaderSep joins the titles of a leaf column's path in flat formats
// such as CSV and Markdown.
const HeaderSep = "/"

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that executes tmpl once per row. The template
// receives the row as a map keyed by column title; subcolumns are nested maps.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders t in format f to w.
func Write(w io.Writer, f Format, t *Table) error {
	switch f {
	case Text:
		_, err := t.WriteTo(w)
		return err
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	case HTML:
		return writeHTML(w, t)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- Item Interfaces ---

// Rower provides the values of one row in leaf column order.
// Required by [FromItems], [AppendItems], [AppendIter] and [AppendChan].
type Rower interface {
	Row() []string
}

// Headed provides flat top-level column names for [FromItems].
type Headed interface {
	Header() []string
}

// Nested provides a column tree for [FromItems]. It takes precedence over
// [Headed].
type Nested interface {
	Columns() []ColumnDef
}
