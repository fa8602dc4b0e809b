package purse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = List[int]{}
	_ json.Unmarshaler = (*List[int])(nil)
	_ yaml.Marshaler   = List[int]{}
	_ yaml.Unmarshaler = (*List[int])(nil)
)

// MarshalJSON encodes ls as a JSON array.
func (ls List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	i := 0
	for v := range ls.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal element %v: %w", i, err)
		}
		buf.Write(data)
		i++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces ls with a list decoded from a JSON array. A
// JSON null decodes to an empty list.
func (ls *List[T]) UnmarshalJSON(data []byte) error {
	var vals []T
	err := json.Unmarshal(data, &vals)
	if err != nil {
		return fmt.Errorf("unmarshal list: %w", err)
	}

	*ls = Of(vals...)
	return nil
}

// MarshalYAML encodes ls as a YAML sequence.
func (ls List[T]) MarshalYAML() (any, error) {
	return Collect(ls), nil
}

// UnmarshalYAML replaces ls with a list decoded from a YAML sequence.
func (ls *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var vals []T
	err := value.Decode(&vals)
	if err != nil {
		return fmt.Errorf("unmarshal list: %w", err)
	}

	*ls = Of(vals...)
	return nil
}
