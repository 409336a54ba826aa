package meretable

import (
	"encoding/json"
	"io"
)

// writeJSON writes a single row as an object and any other number of rows as
// an array.
func writeJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	recs := t.records()
	if len(recs) == 1 {
		return enc.Encode(recs[0])
	}
	return enc.Encode(recs)
}
