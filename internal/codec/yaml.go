package codec

import "sigs.k8s.io/yaml"

// YAML converts through JSON, so it honours `json` struct tags and any
// json.Unmarshaler on the target type. Mapping members come back sorted by
// key; definitions that depend on member order must use list form.
type YAML struct{}

// Marshal serializes v to YAML bytes.
func (YAML) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal deserializes YAML bytes into v.
func (YAML) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// Name returns "yaml".
func (YAML) Name() string { return "yaml" }
