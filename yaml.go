package meretable

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	recs := t.records()
	if len(recs) == 1 {
		if err := enc.Encode(recs[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(recs); err != nil {
			return err
		}
	}
	return enc.Close()
}
