package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func maskFromRows(rows []string) BinaryMask {
	h := len(rows)
	w := len(rows[0])
	bits := make([]bool, w*h)
	for y, row := range rows {
		for x, ch := range row {
			bits[y*w+x] = ch == '#'
		}
	}
	return BinaryMask{Bits: bits, Width: w, Height: h}
}

func TestFindContours_TwoComponents(t *testing.T) {
	mask := maskFromRows([]string{
		"##....",
		"##....",
		"....##",
		"....##",
	})

	cs := findContours(mask)
	require.Len(t, cs, 2)
	require.Equal(t, 4, cs[0].Area)
	require.Equal(t, 4, cs[1].Area)

	x, y := cs[0].CentroidInt()
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
}

func TestFindContours_DiagonalIsConnected(t *testing.T) {
	// 8-связность: диагональные соседи образуют одну компоненту.
	mask := maskFromRows([]string{
		"#..",
		".#.",
		"..#",
	})

	cs := findContours(mask)
	require.Len(t, cs, 1)
	require.Equal(t, 3, cs[0].Area)
}

func TestFindContours_EmptyMask(t *testing.T) {
	require.Empty(t, findContours(BinaryMask{}))
	require.Empty(t, findContours(maskFromRows([]string{"...", "..."})))
}

func TestContourCentroid(t *testing.T) {
	mask := maskFromRows([]string{
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	})

	cs := findContours(mask)
	require.Len(t, cs, 1)
	require.Equal(t, 9, cs[0].Area)

	x, y := cs[0].CentroidInt()
	require.Equal(t, 2, x)
	require.Equal(t, 2, y)
}
