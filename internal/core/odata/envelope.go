package odata

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Record is one raw upstream entity; numbers arrive as json.Number
type Record map[string]any

// String reads key as a string, anything absent or non-string yields ""
func (r Record) String(key string) string {
	if r == nil {
		return ""
	}
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// First returns the first value among keys that is non-blank after trimming,
// untrimmed, or "" when none qualifies
func (r Record) First(keys ...string) string {
	for _, k := range keys {
		if s := r.String(k); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// Collection is the results array of a v2 envelope {"d":{"results":[...]}}
// A decoded collection also keeps the upstream document and marshals it back unchanged
type Collection struct {
	Results []Record

	raw json.RawMessage
}

// Raw is the upstream document as received, nil for a built collection
func (c Collection) Raw() json.RawMessage { return c.raw }

// Len is the number of results
func (c Collection) Len() int { return len(c.Results) }

// IDs returns the non-blank values of key in result order, duplicates removed
func (c Collection) IDs(key string) []string {
	seen := make(map[string]struct{}, len(c.Results))
	out := make([]string, 0, len(c.Results))
	for _, r := range c.Results {
		id := r.String(key)
		if strings.TrimSpace(id) == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

type envelopeBody struct {
	Results []Record `json:"results"`
}

type envelope struct {
	D envelopeBody `json:"d"`
}

// MarshalJSON writes the upstream document when there is one,
// otherwise the envelope form with results never null
func (c Collection) MarshalJSON() ([]byte, error) {
	if c.raw != nil {
		return c.raw, nil
	}
	res := c.Results
	if res == nil {
		res = []Record{}
	}
	return json.Marshal(envelope{D: envelopeBody{Results: res}})
}

// UnmarshalJSON accepts any envelope shape Decode accepts
func (c *Collection) UnmarshalJSON(b []byte) error {
	out, err := Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// ErrNotJSON reports a body that is not exactly one JSON value
var ErrNotJSON = errors.New("odata: body is not valid JSON")

// Decode reads one JSON document and extracts d.results
// A missing d or results, or one of the wrong type, is an empty collection.
// Result entries that are not objects are skipped
func Decode(r io.Reader) (Collection, error) {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return Collection{}, errors.Join(ErrNotJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Collection{}, ErrNotJSON
	}

	var doc any
	inner := json.NewDecoder(bytes.NewReader(raw))
	inner.UseNumber()
	if err := inner.Decode(&doc); err != nil {
		return Collection{}, errors.Join(ErrNotJSON, err)
	}

	root, _ := doc.(map[string]any)
	d, _ := root["d"].(map[string]any)
	results, _ := d["results"].([]any)

	out := Collection{Results: make([]Record, 0, len(results)), raw: raw}
	for _, v := range results {
		if m, ok := v.(map[string]any); ok {
			out.Results = append(out.Results, Record(m))
		}
	}
	return out, nil
}
