package shamir

import (
	"fmt"
)

// VerifyPoints checks that all points lie on one polynomial of degree threshold-1.
// The first threshold points define the polynomial; every further point must
// match it. With exactly threshold points any set is consistent.
func VerifyPoints(points []Point, threshold int) error {
	if threshold < 2 {
		return ErrInvalidThreshold
	}

	if len(points) < threshold {
		return ErrInsufficientPoints
	}

	// Check for duplicate x-coordinates
	seen := make(map[string]bool, len(points))
	for _, point := range points {
		key := point.X().String()
		if seen[key] {
			return ErrDuplicatePoints
		}
		seen[key] = true
	}

	xs, ys := transpose(points)

	prime, err := LargeEnoughPrime(ys...)
	if err != nil {
		return err
	}

	f, err := newField(prime)
	if err != nil {
		return err
	}

	baseXs, baseYs := xs[:threshold], ys[:threshold]

	for i := threshold; i < len(points); i++ {
		expectedY, err := lagrangeEvaluate(f, baseXs, baseYs, xs[i])
		if err != nil {
			return err
		}

		if expectedY.Cmp(ys[i]) != 0 {
			return fmt.Errorf("%w: point %s is not on the polynomial", ErrVerificationFailed, points[i])
		}
	}

	return nil
}
