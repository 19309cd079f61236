package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCenterROI_InsideBounds(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		half int
	}{
		{"square", 400, 400, 200},
		{"wide", 640, 480, 200},
		{"tiny", 3, 5, 200},
		{"one pixel", 1, 1, 10},
		{"zero half", 100, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := CenterROI(tc.w, tc.h, tc.half)
			require.GreaterOrEqual(t, r.X0, 0)
			require.GreaterOrEqual(t, r.Y0, 0)
			require.LessOrEqual(t, r.X1, tc.w)
			require.LessOrEqual(t, r.Y1, tc.h)
			require.LessOrEqual(t, r.X0, r.X1)
			require.LessOrEqual(t, r.Y0, r.Y1)
			if tc.half > 0 {
				require.GreaterOrEqual(t, r.Width(), 1)
				require.GreaterOrEqual(t, r.Height(), 1)
			}
		})
	}
}

func TestCenterROI_DegeneratesToFullImage(t *testing.T) {
	r := CenterROI(100, 80, 500)
	require.Equal(t, ROI{X0: 0, Y0: 0, X1: 100, Y1: 80}, r)
}

func TestROIFromCenter_OffCenter(t *testing.T) {
	r := ROIFromCenter(400, 400, image.Pt(10, 10), 50)
	require.Equal(t, ROI{X0: 0, Y0: 0, X1: 60, Y1: 60}, r)
}

func TestROICenter(t *testing.T) {
	r := ROI{X0: 0, Y0: 0, X1: 400, Y1: 400}
	require.Equal(t, image.Pt(200, 200), r.Center())

	x, y := ROI{X0: 0, Y0: 0, X1: 5, Y1: 5}.CenterF()
	require.InDelta(t, 2.5, x, 1e-12)
	require.InDelta(t, 2.5, y, 1e-12)
}
