package istr

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// flatRecord is the serialized shape of an instance: the two arrays, nothing
// else. Values are serialized by whatever generic mechanism the codec
// provides for arbitrary values; a value the codec cannot represent (such as
// a callable) surfaces the codec's own error.
type flatRecord struct {
	Fragments []string `json:"fragments" yaml:"fragments"`
	Values    []any    `json:"values" yaml:"values"`
}

var (
	_ json.Marshaler   = (*String)(nil)
	_ json.Unmarshaler = (*String)(nil)
	_ yaml.Marshaler   = (*String)(nil)
	_ yaml.Unmarshaler = (*String)(nil)
)

// MarshalJSON serializes the instance as a flat record of its fragments and
// values arrays.
func (s *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(flatRecord{Fragments: s.fragments, Values: s.values})
}

// UnmarshalJSON reconstructs an instance from its flat record, re-validating
// the fragment/value shape invariant.
func (s *String) UnmarshalJSON(data []byte) error {
	var rec flatRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	rebuilt, err := New(rec.Fragments, rec.Values)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

// MarshalYAML serializes the same flat record for YAML hosts.
func (s *String) MarshalYAML() (any, error) {
	return flatRecord{Fragments: s.fragments, Values: s.values}, nil
}

// UnmarshalYAML reconstructs an instance from its flat record, re-validating
// the fragment/value shape invariant.
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	var rec flatRecord
	if err := node.Decode(&rec); err != nil {
		return err
	}
	rebuilt, err := New(rec.Fragments, rec.Values)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}
