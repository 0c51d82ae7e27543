package shamir

import (
	"fmt"
	"io"
	"math/big"
)

// Polynomial is f(x) = a0 + a1*x + ... + an*x^n over the integers.
// coefficients[0] is the intercept (the secret).
type Polynomial struct {
	coefficients []*big.Int
}

// NewPolynomial creates a polynomial from copies of the given coefficients.
// A nil coefficient is zero.
func NewPolynomial(coefficients ...*big.Int) *Polynomial {
	return &Polynomial{coefficients: copyInts(coefficients)}
}

// RandomPolynomial creates a polynomial of the given degree whose intercept is
// fixed and whose remaining coefficients are drawn uniformly from [0, upperBound)
// using rnd. A nil rnd means crypto/rand.Reader.
func RandomPolynomial(rnd io.Reader, degree int, intercept, upperBound *big.Int) (*Polynomial, error) {
	if degree < 0 {
		return nil, ErrInvalidDegree
	}

	if intercept == nil || upperBound == nil || upperBound.Sign() <= 0 {
		return nil, ErrInvalidArgument
	}

	coefficients := make([]*big.Int, degree+1)
	coefficients[0] = new(big.Int).Set(intercept)

	for i := 1; i <= degree; i++ {
		coef, err := random(rnd, upperBound)
		if err != nil {
			return nil, fmt.Errorf("shamir: failed to generate coefficient: %w", err)
		}
		coefficients[i] = coef
	}

	return &Polynomial{coefficients: coefficients}, nil
}

// Coefficients returns a copy of the coefficients, intercept first.
func (p *Polynomial) Coefficients() []*big.Int {
	return copyInts(p.coefficients)
}

// Degree returns the degree of the polynomial, or -1 if it has no coefficients.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Points evaluates the polynomial at x = 1..numPoints modulo prime.
// Every power, term and partial sum is reduced so intermediate values stay below prime^2.
func (p *Polynomial) Points(numPoints int, prime *big.Int) ([]Point, error) {
	if numPoints < 0 {
		return nil, ErrInvalidArgument
	}

	f, err := newField(prime)
	if err != nil {
		return nil, err
	}

	points := make([]Point, numPoints)
	for i := range numPoints {
		// x-coordinates are 1, 2, 3, ... (never 0)
		x := big.NewInt(int64(i + 1))
		points[i] = Point{x: x, y: p.evaluate(f, x)}
	}

	return points, nil
}

func (p *Polynomial) evaluate(f field, x *big.Int) *big.Int {
	if len(p.coefficients) == 0 {
		return big.NewInt(0)
	}

	y := f.reduce(p.coefficients[0])
	for i := 1; i < len(p.coefficients); i++ {
		power := f.exp(x, big.NewInt(int64(i)))
		term := f.mul(p.coefficients[i], power)
		y = f.add(y, term)
	}

	return y
}

// PointsFromSecret splits secret into numPoints points, any threshold of which
// reconstruct it. The field is the smallest catalog prime above both the secret
// and numPoints. A nil rnd means crypto/rand.Reader.
func PointsFromSecret(rnd io.Reader, secret *big.Int, threshold, numPoints int) ([]Point, error) {
	if secret == nil || secret.Sign() < 0 {
		return nil, fmt.Errorf("%w: secret must be a non-negative integer", ErrInvalidArgument)
	}

	prime, err := LargeEnoughPrime(secret, big.NewInt(int64(numPoints)))
	if err != nil {
		return nil, err
	}

	if threshold < 2 {
		return nil, ErrInvalidThreshold
	}

	if threshold > numPoints {
		return nil, ErrThresholdExceedsPoints
	}

	poly, err := RandomPolynomial(rnd, threshold-1, secret, prime)
	if err != nil {
		return nil, err
	}

	return poly.Points(numPoints, prime)
}

// ModularLagrangeInterpolation recovers f(0) from the given points.
// The field is re-derived from the largest y-value, which yields the prime used
// at split time for any correctly generated point set. Points must have distinct
// x-coordinates; a repeated x surfaces as ErrNotInvertible.
func ModularLagrangeInterpolation(points []Point) (*big.Int, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points to interpolate", ErrInvalidArgument)
	}

	xs, ys := transpose(points)

	prime, err := LargeEnoughPrime(ys...)
	if err != nil {
		return nil, err
	}

	f, err := newField(prime)
	if err != nil {
		return nil, err
	}

	return lagrangeEvaluate(f, xs, ys, bigZero)
}

// lagrangeEvaluate computes the value at x of the polynomial through (xs[i], ys[i]).
func lagrangeEvaluate(f field, xs, ys []*big.Int, x *big.Int) (*big.Int, error) {
	result := big.NewInt(0)

	for i := range xs {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for j := range xs {
			if i == j {
				continue
			}

			// numerator *= (x - x_j)
			numerator = f.mul(numerator, f.sub(x, xs[j]))

			// denominator *= (x_i - x_j)
			denominator = f.mul(denominator, f.sub(xs[i], xs[j]))
		}

		basis, err := f.div(numerator, denominator)
		if err != nil {
			return nil, fmt.Errorf("lagrange basis for x=%s: %w", xs[i], err)
		}

		// result += y_i * L_i(x)
		result = f.add(result, f.mul(ys[i], basis))
	}

	return f.reduce(new(big.Int).Add(f.p, result)), nil
}

func copyInts(values []*big.Int) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = copyInt(v)
	}
	return out
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
