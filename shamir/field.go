package shamir

import (
	"crypto/rand"
	"io"
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// field is the prime field GF(p). Every operation returns a fresh value in [0, p).
type field struct {
	p *big.Int
}

func newField(p *big.Int) (field, error) {
	if p == nil || p.Cmp(bigTwo) < 0 {
		return field{}, ErrInvalidArgument
	}
	return field{p: p}, nil
}

// reduce computes a mod p
func (f field) reduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, f.p)
}

// add computes (a + b) mod p
func (f field) add(a, b *big.Int) *big.Int {
	result := new(big.Int).Add(a, b)
	return result.Mod(result, f.p)
}

// sub computes (a - b) mod p
func (f field) sub(a, b *big.Int) *big.Int {
	result := new(big.Int).Sub(a, b)
	return result.Mod(result, f.p)
}

// mul computes (a * b) mod p
func (f field) mul(a, b *big.Int) *big.Int {
	result := new(big.Int).Mul(a, b)
	return result.Mod(result, f.p)
}

// exp computes (a ^ e) mod p
func (f field) exp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, f.p)
}

// div computes (a / b) mod p using modular inverse
func (f field) div(a, b *big.Int) (*big.Int, error) {
	inv, err := ModInverse(b, f.p)
	if err != nil {
		return nil, err
	}
	return f.mul(a, inv), nil
}

// random draws a uniform element of [0, bound) from rnd.
func random(rnd io.Reader, bound *big.Int) (*big.Int, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	return rand.Int(rnd, bound)
}

// ModInverse returns k^-1 mod prime, normalized into [0, prime).
// It fails with ErrNotInvertible when gcd(k, prime) != 1.
func ModInverse(k, prime *big.Int) (*big.Int, error) {
	if k == nil || prime == nil || prime.Cmp(bigTwo) < 0 {
		return nil, ErrInvalidArgument
	}

	reduced := new(big.Int).Mod(k, prime)

	g, _, r := egcd(prime, reduced.Abs(reduced))
	if g.Cmp(bigOne) != 0 {
		return nil, ErrNotInvertible
	}

	return r.Mod(r, prime), nil
}

// egcd is the extended Euclidean algorithm for non-negative a and b.
// It returns (g, x, y) with a*x + b*y = g = gcd(a, b).
//
// The coefficients are those of the classic recursive form
// egcd(0, b) = (b, 0, 1); egcd(a, b) = (g, x' - (b/a)*y', y') where
// (g, y', x') = egcd(b mod a, a). Quotients are collected on the way down
// and unwound in reverse instead of recursing.
func egcd(a, b *big.Int) (g, x, y *big.Int) {
	a = new(big.Int).Set(a)
	b = new(big.Int).Set(b)

	var quotients []*big.Int
	for a.Sign() != 0 {
		q, r := new(big.Int).DivMod(b, a, new(big.Int))
		quotients = append(quotients, q)
		a, b = r, a
	}

	x, y = big.NewInt(0), big.NewInt(1)
	for i := len(quotients) - 1; i >= 0; i-- {
		// x, y = y - q*x, x
		next := new(big.Int).Mul(quotients[i], x)
		next.Sub(y, next)
		x, y = next, x
	}

	return b, x, y
}
