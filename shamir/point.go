package shamir

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Point is a single share: the polynomial evaluated at X.
// A Point is immutable; accessors return copies.
type Point struct {
	x *big.Int
	y *big.Int
}

// NewPoint creates a point from copies of x and y. A nil coordinate is zero,
// as in the zero Point.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: copyInt(x),
		y: copyInt(y),
	}
}

// X returns the x-coordinate (share index).
func (p Point) X() *big.Int {
	return p.coord(p.x)
}

// Y returns the y-coordinate (share value).
func (p Point) Y() *big.Int {
	return p.coord(p.y)
}

func (p Point) coord(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// Equal checks if two points have the same coordinates.
func (p Point) Equal(other Point) bool {
	return p.X().Cmp(other.X()) == 0 && p.Y().Cmp(other.Y()) == 0
}

// String formats the point as "<x>-<y>" with x in decimal and y in lowercase hex.
func (p Point) String() string {
	return p.X().Text(10) + "-" + p.Y().Text(16)
}

// MarshalText implements encoding.TextMarshaler.
func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Point) UnmarshalText(text []byte) error {
	parsed, err := ParsePoint(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePoint parses a point from the form produced by Point.String.
func ParsePoint(s string) (Point, error) {
	xPart, yPart, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || xPart == "" || yPart == "" {
		return Point{}, ErrInvalidPointFormat
	}

	x, ok := new(big.Int).SetString(xPart, 10)
	if !ok {
		return Point{}, fmt.Errorf("%w: bad x-coordinate %q", ErrInvalidPointFormat, xPart)
	}

	if x.Sign() <= 0 {
		return Point{}, errors.Join(ErrInvalidPointFormat, errors.New("x-coordinate must be positive"))
	}

	y, ok := new(big.Int).SetString(yPart, 16)
	if !ok || y.Sign() < 0 {
		return Point{}, fmt.Errorf("%w: bad y-coordinate %q", ErrInvalidPointFormat, yPart)
	}

	return Point{x: x, y: y}, nil
}

// transpose splits points into their x and y coordinates.
func transpose(points []Point) (xs, ys []*big.Int) {
	xs = make([]*big.Int, len(points))
	ys = make([]*big.Int, len(points))
	for i, point := range points {
		xs[i] = point.X()
		ys[i] = point.Y()
	}
	return xs, ys
}
