// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// definition.go — Definition, a portable description of a reference mapping
// that both sides of a compact string can load from JSON, MessagePack or YAML.

package optpack

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/AndrewDonelson/optpack/internal/codec"
)

// Option is one (key, value) entry of a Definition.
type Option struct {
	Key   string `json:"key" msgpack:"key"`
	Value string `json:"value" msgpack:"value"`
}

// OptionList is an ordered option list. In JSON it is written as an array
// of {"key","value"} objects; it also reads a plain object, taking member
// order as key order.
type OptionList []Option

// Definition describes a named reference mapping.
type Definition struct {
	Name        string     `json:"name" msgpack:"name"`
	Description string     `json:"description,omitempty" msgpack:"description,omitempty"`
	Options     OptionList `json:"options" msgpack:"options"`
}

// DefinitionOf snapshots any mapping into a Definition.
func DefinitionOf(name string, m Mapping) (*Definition, error) {
	p, err := compile(m)
	if err != nil {
		return nil, err
	}
	d := &Definition{Name: name, Options: make(OptionList, p.Len())}
	for i := range d.Options {
		k, v := p.At(i)
		d.Options[i] = Option{Key: k, Value: v}
	}
	return d, nil
}

// ParseDefinition decodes data in format ("json", "msgpack" or "yaml") and
// validates the result.
func ParseDefinition(format string, data []byte) (*Definition, error) {
	c, err := codec.ByName(format)
	if err != nil {
		return nil, err
	}
	var d Definition
	if err := c.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, c.Name(), err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Marshal encodes d in format.
func (d *Definition) Marshal(format string) ([]byte, error) {
	c, err := codec.ByName(format)
	if err != nil {
		return nil, err
	}
	return c.Marshal(d)
}

// Validate rejects duplicate keys, which would give one key two bit positions.
func (d *Definition) Validate() error {
	seen := make(map[string]int, len(d.Options))
	for i, o := range d.Options {
		if j, dup := seen[o.Key]; dup {
			return fmt.Errorf("%w: %q: key %q at positions %d and %d", ErrInvalidDefinition, d.Name, o.Key, j, i)
		}
		seen[o.Key] = i
	}
	return nil
}

func (d *Definition) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Options)
}

func (d *Definition) At(i int) (string, string) { return d.Options[i].Key, d.Options[i].Value }

// UnmarshalJSON reads either an array of options or an object.
func (l *OptionList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case len(data) > 0 && data[0] == '[':
		var opts []Option
		if err := json.Unmarshal(data, &opts); err != nil {
			return err
		}
		*l = opts
		return nil
	case len(data) > 0 && data[0] == '{':
		return l.unmarshalObject(data)
	}
	return fmt.Errorf("options must be an array or an object")
}

func (l *OptionList) unmarshalObject(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	var opts OptionList
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("option %q: %w", key, err)
		}
		opts = append(opts, Option{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = opts
	return nil
}
