// Package shamir implements Shamir's Secret Sharing over prime fields.
//
// A secret integer becomes the intercept of a random polynomial of degree
// threshold-1; shares are the polynomial evaluated at x = 1..n. Any threshold
// shares recover the intercept by Lagrange interpolation, fewer reveal nothing.
//
// The field is not fixed: the smallest prime from a catalog of primes just above
// 2^128, 2^192, ..., 2^4096 that exceeds the secret is chosen at split time and
// re-derived from the share values at reconstruction time.
package shamir

import (
	"fmt"
	"io"
	"math/big"
)

// Codec converts string secrets to field elements and back.
type Codec interface {
	Encode(s string) (*big.Int, error)
	Decode(n *big.Int) (string, error)
}

type options struct {
	random io.Reader
}

// Option configures Split and SplitString.
type Option func(*options)

// WithRandom sets the source of randomness used for polynomial coefficients.
// The default is crypto/rand.Reader.
func WithRandom(rnd io.Reader) Option {
	return func(o *options) {
		o.random = rnd
	}
}

// Split divides secret into numShares points, where any threshold points
// reconstruct the secret.
//
// Parameters:
//   - secret: a non-negative integer smaller than the largest catalog prime
//   - threshold: minimum number of shares required for reconstruction (k)
//   - numShares: total number of shares to generate (n)
func Split(secret *big.Int, threshold, numShares int, opts ...Option) ([]Point, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return PointsFromSecret(o.random, secret, threshold, numShares)
}

// SplitString encodes secret with codec and splits the resulting integer.
// The same codec must be passed to ReconstructString.
func SplitString(secret string, codec Codec, threshold, numShares int, opts ...Option) ([]Point, error) {
	if codec == nil {
		return nil, fmt.Errorf("%w: codec is required", ErrInvalidArgument)
	}

	secretInt, err := codec.Encode(secret)
	if err != nil {
		return nil, err
	}

	return Split(secretInt, threshold, numShares, opts...)
}

// Reconstruct recovers the secret integer from at least threshold points.
// Passing fewer points than the threshold yields an unrelated value, not an error.
func Reconstruct(points []Point) (*big.Int, error) {
	return ModularLagrangeInterpolation(points)
}

// ReconstructString recovers the secret and decodes it with codec.
func ReconstructString(points []Point, codec Codec) (string, error) {
	if codec == nil {
		return "", fmt.Errorf("%w: codec is required", ErrInvalidArgument)
	}

	secretInt, err := Reconstruct(points)
	if err != nil {
		return "", err
	}

	return codec.Decode(secretInt)
}
