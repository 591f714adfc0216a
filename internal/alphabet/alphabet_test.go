package alphabet_test

import (
	"fmt"
	"testing"

	"github.com/AndrewDonelson/optpack/internal/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol_KnownValues(t *testing.T) {
	cases := map[int]byte{
		0:  '0',
		9:  '9',
		10: 'A',
		32: 'W',
		35: 'Z',
		36: 'a',
		40: 'e',
		60: 'y',
		61: 'z',
		62: '-',
		63: '_',
	}
	for v, want := range cases {
		got, err := alphabet.Symbol(v)
		require.NoError(t, err)
		assert.Equal(t, want, got, "value %d", v)
	}
}

func TestSymbol_OutOfRange(t *testing.T) {
	for _, v := range []int{-1, 64, 1000} {
		_, err := alphabet.Symbol(v)
		assert.ErrorIs(t, err, alphabet.ErrOutOfRange, "value %d", v)
	}
}

func TestValue_InvalidCharacter(t *testing.T) {
	for _, c := range []byte{'!', ' ', '~', '.', ',', '+', '/', '=', 0, 0xff} {
		_, err := alphabet.Value(c)
		assert.ErrorIs(t, err, alphabet.ErrInvalidCharacter, "char %q", c)
		assert.False(t, alphabet.Contains(c))
	}
}

func TestSymbolValue_Bijective(t *testing.T) {
	seen := make(map[byte]bool, alphabet.Size)
	for v := 0; v <= alphabet.MaxValue; v++ {
		c, err := alphabet.Symbol(v)
		require.NoError(t, err)
		require.False(t, seen[c], "symbol %q repeated", c)
		seen[c] = true

		back, err := alphabet.Value(c)
		require.NoError(t, err)
		assert.Equal(t, v, back)
		assert.True(t, alphabet.Contains(c))
	}
	assert.Len(t, seen, 64)
}

func ExampleSymbol() {
	c, _ := alphabet.Symbol(0b101000)
	fmt.Printf("%c\n", c)
	// Output:
	// e
}

func FuzzValue(f *testing.F) {
	f.Add(byte('W'))
	f.Add(byte('!'))
	f.Fuzz(func(t *testing.T, c byte) {
		v, err := alphabet.Value(c)
		if err != nil {
			if alphabet.Contains(c) {
				t.Errorf("Contains(%q) but Value failed: %v", c, err)
			}
			return
		}
		back, err := alphabet.Symbol(v)
		if err != nil || back != c {
			t.Errorf("exp(%q) != got (%q), err=%v", c, back, err)
		}
	})
}
