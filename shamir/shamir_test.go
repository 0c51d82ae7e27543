package shamir

import (
	"math/big"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/secretsharing/charset"
)

func mustInt(t *testing.T, s string) *big.Int {
	t.Helper()

	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "invalid integer %q", s)
	return n
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		secret    *big.Int
		threshold int
		total     int
		wantErr   error
	}{
		{"valid 2-of-3", big.NewInt(1234), 2, 3, nil},
		{"valid 3-of-5", big.NewInt(99), 3, 5, nil},
		{"valid 5-of-5", big.NewInt(5), 5, 5, nil},
		{"zero secret", big.NewInt(0), 2, 2, nil},
		{"threshold less than 2", big.NewInt(1), 1, 3, ErrInvalidThreshold},
		{"threshold exceeds shares", big.NewInt(1), 6, 5, ErrThresholdExceedsPoints},
		{"negative secret", big.NewInt(-5), 2, 3, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Split(tt.secret, tt.threshold, tt.total)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, points)
				return
			}

			require.NoError(t, err)
			require.Len(t, points, tt.total)

			for i, point := range points {
				assert.Equal(t, int64(i+1), point.X().Int64())
			}
		})
	}
}

func TestSplitAndReconstruct(t *testing.T) {
	catalog := Primes()

	tests := []struct {
		name      string
		secret    *big.Int
		threshold int
		total     int
	}{
		{"2-of-3 small secret", big.NewInt(7), 2, 3},
		{"3-of-6 concrete", big.NewInt(1234), 3, 6},
		{"5-of-5 every share required", big.NewInt(424242), 5, 5},
		{"10-of-50", mustInt(t, "340282366920938463463374607431768211455"), 10, 50},
		{"secret just below first prime", new(big.Int).Sub(catalog[0], big.NewInt(1)), 3, 5},
		{"secret equal to first prime", catalog[0], 3, 5},
		{"1000-bit secret", new(big.Int).Lsh(big.NewInt(3), 1000), 4, 7},
		{"secret below largest prime", new(big.Int).Sub(catalog[len(catalog)-1], big.NewInt(1)), 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Split(tt.secret, tt.threshold, tt.total)
			require.NoError(t, err)

			// Random subsets of exactly threshold points
			for range 10 {
				subset := make([]Point, 0, tt.threshold)
				for _, i := range rand.Perm(tt.total)[:tt.threshold] {
					subset = append(subset, points[i])
				}

				recovered, err := Reconstruct(subset)
				require.NoError(t, err)
				assert.Equal(t, 0, tt.secret.Cmp(recovered), "got %s", recovered)
			}

			// All points
			recovered, err := Reconstruct(points)
			require.NoError(t, err)
			assert.Equal(t, 0, tt.secret.Cmp(recovered))
		})
	}
}

func TestReconstructInsufficientPoints(t *testing.T) {
	secret := big.NewInt(1234)
	const trials = 200

	hits := 0
	seen := make(map[string]bool)

	for range trials {
		points, err := Split(secret, 3, 5)
		require.NoError(t, err)

		recovered, err := Reconstruct(points[:2])
		require.NoError(t, err)

		if recovered.Cmp(secret) == 0 {
			hits++
		}
		seen[recovered.String()] = true
	}

	// Two points of a degree-2 polynomial give a uniformly random field element
	assert.Zero(t, hits)
	assert.Greater(t, len(seen), trials-10)
}

func TestPrimeSelectionRoundTrip(t *testing.T) {
	secret := mustInt(t, "123456789012345678901234567890")

	splitPrime, err := LargeEnoughPrime(secret, big.NewInt(5))
	require.NoError(t, err)

	for range 20 {
		points, err := Split(secret, 3, 5)
		require.NoError(t, err)

		_, ys := transpose(points[:3])
		reconstructPrime, err := LargeEnoughPrime(ys...)
		require.NoError(t, err)
		assert.Equal(t, 0, splitPrime.Cmp(reconstructPrime))
	}
}

func TestSplitWithRandom(t *testing.T) {
	points, err := Split(big.NewInt(77), 2, 3, WithRandom(zeroReader()))
	require.NoError(t, err)

	for _, point := range points {
		assert.Equal(t, int64(77), point.Y().Int64())
	}

	_, err = Split(big.NewInt(77), 2, 3, WithRandom(failingReader{}))
	assert.Error(t, err)
}

func TestSplitStringAndReconstruct(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		secret := "00deadbeef"

		points, err := SplitString(secret, charset.Hex(), 3, 5)
		require.NoError(t, err)

		recovered, err := ReconstructString(points[1:4], charset.Hex())
		require.NoError(t, err)
		assert.Equal(t, secret, recovered)
	})

	t.Run("printable", func(t *testing.T) {
		secret := "The quick brown fox jumps over the lazy dog!"

		points, err := SplitString(secret, charset.Printable(), 2, 4)
		require.NoError(t, err)

		recovered, err := ReconstructString([]Point{points[3], points[0]}, charset.Printable())
		require.NoError(t, err)
		assert.Equal(t, secret, recovered)
	})

	t.Run("symbol outside alphabet", func(t *testing.T) {
		_, err := SplitString("xyz", charset.Hex(), 2, 3)
		assert.ErrorIs(t, err, charset.ErrInvalidSymbol)
	})

	t.Run("secret too long", func(t *testing.T) {
		long := make([]byte, 2000)
		for i := range long {
			long[i] = 'f'
		}
		_, err := SplitString(string(long), charset.Hex(), 2, 3)
		assert.ErrorIs(t, err, ErrFieldTooSmall)
	})

	t.Run("nil codec", func(t *testing.T) {
		_, err := SplitString("abc", nil, 2, 3)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = ReconstructString(nil, nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestConcurrentSplitAndReconstruct(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)

	for i := range 16 {
		wg.Add(1)
		go func(secret int64) {
			defer wg.Done()

			points, err := Split(big.NewInt(secret), 3, 5)
			if err != nil {
				errs <- err
				return
			}

			recovered, err := Reconstruct(points[2:])
			if err != nil {
				errs <- err
				return
			}

			if recovered.Int64() != secret {
				errs <- assert.AnError
			}
		}(int64(i * 1000))
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
