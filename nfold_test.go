package pedals

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngles(t *testing.T) {
	tests := []struct {
		n    int
		turn bool
		want []float64
	}{
		{4, false, []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}},
		{4, true, []float64{math.Pi / 4, 3 * math.Pi / 4, 5 * math.Pi / 4, 7 * math.Pi / 4}},
		{3, false, []float64{0, 2 * math.Pi / 3, 4 * math.Pi / 3}},
		{1, false, []float64{0}},
		{1, true, []float64{math.Pi}},
	}
	for _, tt := range tests {
		got, err := Angles(tt.n, tt.turn)
		require.NoError(t, err)
		diff(t, tt.want, got, approx)
	}
}

func TestNFoldSquare(t *testing.T) {
	sq := square()
	copies, err := NFold(sq, 4, false)
	require.NoError(t, err)
	require.Len(t, copies, 4)
	for k, c := range copies {
		diff(t, Rotate(sq, float64(k)*math.Pi/2), c, approx)
	}
	// (1, 0) lands on the axes at 0°, 90°, 180°, 270°.
	diff(t, []Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		[]Point{copies[0][1], copies[1][1], copies[2][1], copies[3][1]}, approx)

	turned, err := NFold(sq, 4, true)
	require.NoError(t, err)
	s := math.Sqrt2 / 2
	diff(t, []Point{{s, s}, {-s, s}, {-s, -s}, {s, -s}},
		[]Point{turned[0][1], turned[1][1], turned[2][1], turned[3][1]}, approx)
}

func TestNFoldOffsets(t *testing.T) {
	pedal, _ := Pedal(3, 2, 2, 30)
	// Follow one point of the upper arc around the circle.
	tip := pedal[len(pedal)/2+len(pedal)/4]
	base := math.Atan2(tip.Y, tip.X)
	for _, n := range []int{1, 2, 3, 5, 8} {
		for _, turn := range []bool{false, true} {
			copies, err := NFold(pedal, n, turn)
			require.NoError(t, err)
			require.Len(t, copies, n)
			phi := 0.0
			if turn {
				phi = math.Pi / float64(n)
			}
			for k, c := range copies {
				p := c[len(c)/2+len(c)/4]
				got := math.Atan2(p.Y, p.X) - base
				want := phi + float64(k)*2*math.Pi/float64(n)
				assert.InDelta(t, 0, math.Remainder(got-want, 2*math.Pi), 1e-9, "n=%d turn=%v k=%d", n, turn, k)
			}
		}
	}
}

func TestNFoldSingle(t *testing.T) {
	sq := square()
	for _, turn := range []bool{false, true} {
		copies, err := NFold(sq, 1, turn)
		require.NoError(t, err)
		require.Len(t, copies, 1)
		phi := 0.0
		if turn {
			phi = math.Pi
		}
		diff(t, Rotate(sq, phi), copies[0], approx)
	}
}

func TestNFoldInvalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		copies, err := NFold(square(), n, false)
		assert.ErrorIs(t, err, ErrDomain)
		assert.Nil(t, copies)
	}
}
