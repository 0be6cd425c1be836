package booleanop

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPolygon(t *testing.T) {
	t.Run("two plain contours", func(t *testing.T) {
		input := `2
3
	0 0
	4 0
	2 3
4
	10 10
	11 10
	11 11
	10 11
`
		p, err := ReadPolygon(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, 2, p.NContours())
		assert.Equal(t, []Point{{0, 0}, {4, 0}, {2, 3}}, p.Contour(0).Points)
		assert.Equal(t, 4, p.Contour(1).NVertices())
		assert.True(t, p.Contour(0).External())
	})

	t.Run("hole lines wire up the hierarchy", func(t *testing.T) {
		input := `2
4
0 0  10 0  10 10  0 10
4
3 3  3 7  7 7  7 3
0: 1
`
		p, err := ReadPolygon(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []int{1}, p.Contour(0).HoleIDs)
		assert.Equal(t, 0, p.Contour(1).HoleOf)
		assert.Equal(t, 1, p.Contour(1).Depth)
	})

	t.Run("empty polygon", func(t *testing.T) {
		p, err := ReadPolygon(strings.NewReader("0\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, p.NContours())
	})

	t.Run("truncated file", func(t *testing.T) {
		_, err := ReadPolygon(strings.NewReader("1\n3\n0 0\n1"))
		assert.Error(t, err)
	})

	t.Run("garbage coordinate", func(t *testing.T) {
		_, err := ReadPolygon(strings.NewReader("1\n3\n0 0\n1 banana\n2 2\n"))
		assert.Error(t, err)
	})

	t.Run("hole id out of range", func(t *testing.T) {
		_, err := ReadPolygon(strings.NewReader("1\n3\n0 0\n1 0\n0 1\n0: 7\n"))
		assert.Error(t, err)
	})
}

func TestWritePolygonRoundTrip(t *testing.T) {
	original := NewPolygon(square(0, 0, 10), square(3, 3, 4))
	original.Contour(1).SetClockwise()
	original.ComputeHoles()

	var buf bytes.Buffer
	require.NoError(t, WritePolygon(&buf, original))

	parsed, err := ReadPolygon(&buf)
	require.NoError(t, err)
	require.Equal(t, original.NContours(), parsed.NContours())
	for i := range original.Contours {
		assert.Equal(t, original.Contour(i).Points, parsed.Contour(i).Points)
		assert.Equal(t, original.Contour(i).HoleIDs, parsed.Contour(i).HoleIDs)
		assert.Equal(t, original.Contour(i).HoleOf, parsed.Contour(i).HoleOf)
	}
}
