// Package alphabet maps 6-bit group values to URL-safe symbols and back.
//
// Symbol order: 0-9 (0-9), A-Z (10-35), a-z (36-61), '-' (62), '_' (63).
package alphabet

import (
	"errors"
	"fmt"
)

const (
	// Symbols is the 64-symbol URL-safe alphabet; a symbol's index is its value.
	Symbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

	// Size is the number of symbols in the alphabet.
	Size = len(Symbols)

	// GroupWidth is the number of bits carried by one symbol.
	GroupWidth = 6

	// MaxValue is the largest group value a symbol can carry.
	MaxValue = 1<<GroupWidth - 1
)

var (
	ErrOutOfRange       = errors.New("optpack: group value out of range")
	ErrInvalidCharacter = errors.New("optpack: invalid character")
)

// values maps a byte to its symbol value, or -1 when the byte is not a symbol.
var values [256]int8

func init() {
	for i := range values {
		values[i] = -1
	}
	for i := 0; i < Size; i++ {
		values[Symbols[i]] = int8(i)
	}
}

// Symbol returns the symbol carrying v.
func Symbol(v int) (byte, error) {
	if v < 0 || v > MaxValue {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return Symbols[v], nil
}

// Value returns the 6-bit value carried by symbol c.
func Value(c byte) (int, error) {
	v := values[c]
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
	}
	return int(v), nil
}

// Contains reports whether c is an alphabet symbol.
func Contains(c byte) bool { return values[c] >= 0 }
