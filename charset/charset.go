// Package charset maps strings over a declared alphabet to non-negative
// integers and back, so that text secrets can be used as field elements.
//
// Strings are read as numerals in bijective base-k notation, where k is the
// alphabet size and the symbol at position i has digit value i+1. Unlike plain
// positional notation there is no zero digit, so a leading first-symbol (for
// example a leading '0' in hex) survives the round trip without length
// metadata. The empty string encodes to 0.
package charset

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrInvalidArgument is returned when an alphabet is empty or a value to
	// decode is not a non-negative integer.
	ErrInvalidArgument = errors.New("charset: invalid argument")

	// ErrInvalidSymbol is returned when a symbol is not part of the alphabet.
	ErrInvalidSymbol = errors.New("charset: symbol not in alphabet")

	// ErrIndexOutOfRange is returned when an index has no symbol in the alphabet.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidSymbol)
)

const (
	hexAlphabet = "0123456789abcdef"

	// NameHex and NamePrintable are the names accepted by Lookup.
	NameHex       = "hex"
	NamePrintable = "printable"
)

// Charset is an ordered set of unique symbols.
type Charset struct {
	symbols []rune
	index   map[rune]int
	base    *big.Int
}

// New creates a charset from the distinct runes of alphabet, kept in order of
// first occurrence.
func New(alphabet string) (*Charset, error) {
	if alphabet == "" {
		return nil, fmt.Errorf("%w: empty alphabet", ErrInvalidArgument)
	}

	c := &Charset{index: make(map[rune]int)}
	for _, r := range alphabet {
		if _, ok := c.index[r]; ok {
			continue
		}
		c.index[r] = len(c.symbols)
		c.symbols = append(c.symbols, r)
	}
	c.base = big.NewInt(int64(len(c.symbols)))

	return c, nil
}

func mustNew(alphabet string) *Charset {
	c, err := New(alphabet)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the charset of lowercase hexadecimal digits.
func Hex() *Charset {
	return mustNew(hexAlphabet)
}

// Printable returns the charset of printable ASCII characters (0x20 to 0x7e).
func Printable() *Charset {
	var sb strings.Builder
	for r := rune(0x20); r <= 0x7e; r++ {
		sb.WriteRune(r)
	}
	return mustNew(sb.String())
}

// Lookup returns a predefined charset by name.
func Lookup(name string) (*Charset, error) {
	switch strings.ToLower(name) {
	case NameHex:
		return Hex(), nil
	case NamePrintable:
		return Printable(), nil
	default:
		return nil, fmt.Errorf("%w: unknown charset %q", ErrInvalidArgument, name)
	}
}

// Base returns the number of symbols.
func (c *Charset) Base() int {
	return len(c.symbols)
}

// Alphabet returns the symbols as a string.
func (c *Charset) Alphabet() string {
	return string(c.symbols)
}

// SymbolToIndex returns the position of r in the alphabet.
func (c *Charset) SymbolToIndex(r rune) (int, error) {
	i, ok := c.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
	return i, nil
}

// IndexToSymbol returns the symbol at position i.
func (c *Charset) IndexToSymbol(i int) (rune, error) {
	if i < 0 || i >= len(c.symbols) {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return c.symbols[i], nil
}

// Encode converts s to its integer value, most significant symbol first.
func (c *Charset) Encode(s string) (*big.Int, error) {
	n := new(big.Int)
	digit := new(big.Int)

	for _, r := range s {
		i, err := c.SymbolToIndex(r)
		if err != nil {
			return nil, err
		}

		// n = n*base + (i+1)
		n.Mul(n, c.base)
		n.Add(n, digit.SetInt64(int64(i+1)))
	}

	return n, nil
}

// Decode converts n back to the string it encodes.
func (c *Charset) Decode(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", fmt.Errorf("%w: value must be a non-negative integer", ErrInvalidArgument)
	}

	rest := new(big.Int).Set(n)
	digit := new(big.Int)

	var symbols []rune
	for rest.Sign() > 0 {
		rest.Sub(rest, big.NewInt(1))
		rest.QuoRem(rest, c.base, digit)

		r, err := c.IndexToSymbol(int(digit.Int64()))
		if err != nil {
			return "", err
		}
		symbols = append(symbols, r)
	}

	// symbols were produced least significant first
	for i, j := 0, len(symbols)-1; i < j; i, j = i+1, j-1 {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	}

	return string(symbols), nil
}

// DecodeString parses s as a decimal integer and decodes it.
func (c *Charset) DecodeString(s string) (string, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return "", fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, s)
	}
	return c.Decode(n)
}
