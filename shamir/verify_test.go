package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tamper(point Point) Point {
	y := point.Y()
	if y.Sign() > 0 {
		y.Sub(y, big.NewInt(1))
	} else {
		y.Add(y, big.NewInt(1))
	}
	return NewPoint(point.X(), y)
}

func TestVerifyPoints(t *testing.T) {
	secret, ok := new(big.Int).SetString("98765432109876543210", 10)
	require.True(t, ok)

	points, err := Split(secret, 3, 6)
	require.NoError(t, err)

	t.Run("valid points", func(t *testing.T) {
		assert.NoError(t, VerifyPoints(points, 3))
	})

	t.Run("exactly threshold points", func(t *testing.T) {
		assert.NoError(t, VerifyPoints(points[:3], 3))
	})

	t.Run("tampered point", func(t *testing.T) {
		tampered := append([]Point{}, points...)
		tampered[4] = tamper(tampered[4])
		assert.ErrorIs(t, VerifyPoints(tampered, 3), ErrVerificationFailed)
	})

	t.Run("tampered base point", func(t *testing.T) {
		tampered := append([]Point{}, points...)
		tampered[0] = tamper(tampered[0])
		assert.ErrorIs(t, VerifyPoints(tampered, 3), ErrVerificationFailed)
	})

	t.Run("points from another secret", func(t *testing.T) {
		other, err := Split(big.NewInt(7), 3, 6)
		require.NoError(t, err)

		mixed := []Point{points[0], points[1], points[2], other[3]}
		assert.Error(t, VerifyPoints(mixed, 3))
	})

	t.Run("lower threshold than used", func(t *testing.T) {
		assert.ErrorIs(t, VerifyPoints(points, 2), ErrVerificationFailed)
	})

	t.Run("duplicate points", func(t *testing.T) {
		duplicated := []Point{points[0], points[1], points[2], points[0]}
		assert.ErrorIs(t, VerifyPoints(duplicated, 3), ErrDuplicatePoints)
	})

	t.Run("insufficient points", func(t *testing.T) {
		assert.ErrorIs(t, VerifyPoints(points[:2], 3), ErrInsufficientPoints)
	})

	t.Run("invalid threshold", func(t *testing.T) {
		assert.ErrorIs(t, VerifyPoints(points, 1), ErrInvalidThreshold)
	})
}
