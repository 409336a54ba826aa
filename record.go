package meretable

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// record is one row keyed by column title in display order. Group columns
// hold a nested record.
type record []field

type field struct {
	key   string
	value any // string or record
}

func (t *Table) records() []record {
	out := make([]record, t.numRows)
	for i := range out {
		out[i] = newRecord(t.columns, i)
	}
	return out
}

func newRecord(cols []*column, row int) record {
	r := make(record, 0, len(cols))
	for _, col := range cols {
		if col.isLeaf() {
			r = append(r, field{key: col.title, value: col.values[row]})
			continue
		}
		r = append(r, field{key: col.title, value: newRecord(col.children, row)})
	}
	return r
}

// MarshalJSON writes the fields as an object, keeping column order.
func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns a mapping node, keeping column order.
func (r record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key}
		val := &yaml.Node{}
		if err := val.Encode(f.value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// toMap converts r for use as template data.
func (r record) toMap() map[string]any {
	m := make(map[string]any, len(r))
	for _, f := range r {
		if sub, ok := f.value.(record); ok {
			m[f.key] = sub.toMap()
			continue
		}
		m[f.key] = f.value
	}
	return m
}
