package bitplane

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndrewDonelson/optpack/internal/alphabet"
)

// Method selects a Packer implementation. Both methods produce identical output.
type Method int

const (
	Bitwise Method = iota // integer shift
	String                // binary-string concatenation
)

func (m Method) String() string {
	switch m {
	case Bitwise:
		return "bitwise"
	case String:
		return "string"
	}
	return "method(" + strconv.Itoa(int(m)) + ")"
}

// Packer converts selection membership over a Plane to and from packed symbols.
type Packer interface {
	// Pack returns one symbol per group, keys in canonical order, MSB first,
	// the final group right-padded with zero bits.
	Pack(p *Plane, selected func(value string) bool) (string, error)
	// Unpack calls emit for every key of group g whose bit is set in v.
	Unpack(p *Plane, g, v int, emit func(value string)) error
	Method() Method
}

var Packers = map[Method]Packer{
	Bitwise: BitwisePacker{},
	String:  StringPacker{},
}

// For returns the Packer registered for m.
func For(m Method) (Packer, bool) {
	pk, ok := Packers[m]
	return pk, ok
}

// groupBounds validates group g of p and returns how many of its bits map onto keys.
func groupBounds(p *Plane, g int) (int, error) {
	width := p.RealBits(g)
	if width <= 0 {
		return 0, fmt.Errorf("%w: group %d starts at key %d of %d", ErrOverflow, g, g*alphabet.GroupWidth, p.Len())
	}
	return width, nil
}

// ─── bitwise ────────────────────────────────────────────────────────────────

type BitwisePacker struct{}

func (BitwisePacker) Method() Method { return Bitwise }

func (BitwisePacker) Pack(p *Plane, selected func(string) bool) (string, error) {
	n := p.Len()
	out := make([]byte, 0, p.Groups())
	window, bits := 0, 0
	for i := 0; i < n; i++ {
		window <<= 1
		bits++
		if selected(p.values[i]) {
			window |= 1
		}
		if bits == alphabet.GroupWidth || i == n-1 {
			window <<= alphabet.GroupWidth - bits
			c, err := alphabet.Symbol(window)
			if err != nil {
				return "", err
			}
			out = append(out, c)
			window, bits = 0, 0
		}
	}
	return string(out), nil
}

func (BitwisePacker) Unpack(p *Plane, g, v int, emit func(string)) error {
	width, err := groupBounds(p, g)
	if err != nil {
		return err
	}
	if pad := alphabet.GroupWidth - width; v&(1<<pad-1) != 0 {
		return fmt.Errorf("%w: group %d sets padding bits past key %d", ErrOverflow, g, p.Len()-1)
	}
	base := g * alphabet.GroupWidth
	for b := 0; b < width; b++ {
		if (v>>(alphabet.GroupWidth-1-b))&1 == 1 {
			emit(p.values[base+b])
		}
	}
	return nil
}

// ─── string ─────────────────────────────────────────────────────────────────

type StringPacker struct{}

func (StringPacker) Method() Method { return String }

func (StringPacker) Pack(p *Plane, selected func(string) bool) (string, error) {
	n := p.Len()
	var out, window strings.Builder
	out.Grow(p.Groups())
	for i := 0; i < n; i++ {
		if selected(p.values[i]) {
			window.WriteByte('1')
		} else {
			window.WriteByte('0')
		}
		if window.Len() == alphabet.GroupWidth || i == n-1 {
			padded := window.String() + strings.Repeat("0", alphabet.GroupWidth-window.Len())
			v, err := strconv.ParseUint(padded, 2, 8)
			if err != nil {
				return "", fmt.Errorf("%w: %v", alphabet.ErrOutOfRange, err)
			}
			c, err := alphabet.Symbol(int(v))
			if err != nil {
				return "", err
			}
			out.WriteByte(c)
			window.Reset()
		}
	}
	return out.String(), nil
}

func (StringPacker) Unpack(p *Plane, g, v int, emit func(string)) error {
	width, err := groupBounds(p, g)
	if err != nil {
		return err
	}
	digits := fmt.Sprintf("%0*b", alphabet.GroupWidth, v)
	if strings.Contains(digits[width:], "1") {
		return fmt.Errorf("%w: group %d sets padding bits past key %d", ErrOverflow, g, p.Len()-1)
	}
	base := g * alphabet.GroupWidth
	for b := 0; b < width; b++ {
		if digits[b] == '1' {
			emit(p.values[base+b])
		}
	}
	return nil
}
