package shamir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a value that must be a non-negative
	// integer (or a prime modulus) is missing or out of range.
	ErrInvalidArgument = errors.New("shamir: invalid argument")

	// ErrInvalidDegree is returned when a negative polynomial degree is requested.
	ErrInvalidDegree = errors.New("shamir: degree must be a non-negative number")

	// ErrFieldTooSmall is returned when no catalog prime exceeds the values to represent.
	ErrFieldTooSmall = errors.New("shamir: secret is too large for the supported fields")

	// ErrInvalidThreshold is returned when threshold is less than 2.
	ErrInvalidThreshold = errors.New("shamir: threshold must be at least 2")

	// ErrThresholdExceedsPoints is returned when threshold is greater than the number of shares.
	ErrThresholdExceedsPoints = fmt.Errorf("%w and not exceed the number of shares", ErrInvalidThreshold)

	// ErrNotInvertible is returned when a value has no inverse modulo the prime.
	ErrNotInvertible = errors.New("shamir: value is not invertible modulo prime")

	// ErrInsufficientPoints is returned when fewer points than the threshold are provided.
	ErrInsufficientPoints = errors.New("shamir: insufficient points for reconstruction")

	// ErrDuplicatePoints is returned when two points share an x-coordinate.
	ErrDuplicatePoints = errors.New("shamir: duplicate point x-coordinates detected")

	// ErrInvalidPointFormat is returned when a point string is malformed.
	ErrInvalidPointFormat = errors.New("shamir: invalid point format")

	// ErrVerificationFailed is returned when points do not lie on one polynomial.
	ErrVerificationFailed = errors.New("shamir: point verification failed")
)
