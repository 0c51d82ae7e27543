package shamir

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointAccessorsCopy(t *testing.T) {
	x, y := big.NewInt(3), big.NewInt(1234)
	point := NewPoint(x, y)

	x.SetInt64(99)
	assert.Equal(t, int64(3), point.X().Int64())

	point.Y().SetInt64(0)
	assert.Equal(t, int64(1234), point.Y().Int64())
}

func TestNewPointNilCoordinates(t *testing.T) {
	point := NewPoint(nil, big.NewInt(5))
	assert.Equal(t, int64(0), point.X().Int64())
	assert.Equal(t, int64(5), point.Y().Int64())

	point = NewPoint(big.NewInt(2), nil)
	assert.Equal(t, "2-0", point.String())
	assert.True(t, NewPoint(nil, nil).Equal(Point{}))
}

func TestPointEqual(t *testing.T) {
	a := NewPoint(big.NewInt(1), big.NewInt(2))

	assert.True(t, a.Equal(NewPoint(big.NewInt(1), big.NewInt(2))))
	assert.False(t, a.Equal(NewPoint(big.NewInt(1), big.NewInt(3))))
	assert.False(t, a.Equal(NewPoint(big.NewInt(2), big.NewInt(2))))
}

func TestPointString(t *testing.T) {
	point := NewPoint(big.NewInt(2), big.NewInt(1234))
	assert.Equal(t, "2-4d2", point.String())

	assert.Equal(t, "0-0", Point{}.String())
}

func TestParsePoint(t *testing.T) {
	large, ok := new(big.Int).SetString("fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210ff", 16)
	require.True(t, ok)

	t.Run("round trip", func(t *testing.T) {
		for _, point := range []Point{
			NewPoint(big.NewInt(1), big.NewInt(0)),
			NewPoint(big.NewInt(6), big.NewInt(1234)),
			NewPoint(big.NewInt(255), large),
		} {
			parsed, err := ParsePoint(point.String())
			require.NoError(t, err)
			assert.True(t, point.Equal(parsed), "%s != %s", point, parsed)
		}
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		parsed, err := ParsePoint("  3-ff\n")
		require.NoError(t, err)
		assert.Equal(t, int64(3), parsed.X().Int64())
		assert.Equal(t, int64(255), parsed.Y().Int64())
	})

	t.Run("upper case hex", func(t *testing.T) {
		parsed, err := ParsePoint("3-FF")
		require.NoError(t, err)
		assert.Equal(t, int64(255), parsed.Y().Int64())
	})

	invalid := []string{"", "1", "-5", "1-", "0-1", "a-1", "1-xyz", "1--5", "-1-5", "1.5-3"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := ParsePoint(s)
			assert.ErrorIs(t, err, ErrInvalidPointFormat)
		})
	}
}

func TestPointText(t *testing.T) {
	points := []Point{
		NewPoint(big.NewInt(1), big.NewInt(10)),
		NewPoint(big.NewInt(2), big.NewInt(20)),
	}

	data, err := json.Marshal(points)
	require.NoError(t, err)
	assert.JSONEq(t, `["1-a", "2-14"]`, string(data))

	var decoded []Point
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	for i := range points {
		assert.True(t, points[i].Equal(decoded[i]))
	}

	var bad Point
	assert.ErrorIs(t, bad.UnmarshalText([]byte("nope")), ErrInvalidPointFormat)
}

func TestTranspose(t *testing.T) {
	points := []Point{
		NewPoint(big.NewInt(1), big.NewInt(10)),
		NewPoint(big.NewInt(2), big.NewInt(20)),
	}

	xs, ys := transpose(points)
	require.Len(t, xs, 2)
	require.Len(t, ys, 2)
	assert.Equal(t, int64(2), xs[1].Int64())
	assert.Equal(t, int64(10), ys[0].Int64())
}
