// Package codec serializes option-map definitions so the encoding and
// decoding sides of a compact string can share one reference mapping.
package codec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ByName for an unregistered format.
var ErrUnknownFormat = errors.New("optpack: unknown definition format")

// Codec encodes and decodes definition documents.
type Codec interface {
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
	// Name returns the format identifier, e.g. "json".
	Name() string
}

var formats = map[string]Codec{
	JSON{}.Name():    JSON{},
	MsgPack{}.Name(): MsgPack{},
	YAML{}.Name():    YAML{},
}

// ByName returns the codec registered for format. Matching is
// case-insensitive and "yml" is accepted for YAML.
func ByName(format string) (Codec, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	if name == "yml" {
		name = YAML{}.Name()
	}
	c, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return c, nil
}
