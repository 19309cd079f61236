package entity

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFrame_Empty(t *testing.T) {
	require.True(t, Frame{}.Empty())
	require.True(t, NewFrame(0, 10, 1).Empty())
	require.False(t, NewFrame(4, 3, 1).Empty())
}

func TestFrameClone_Independent(t *testing.T) {
	f := NewGrayFrame(4, 4)
	f.Set(1, 2, 0, 200)

	c := f.Clone()
	c.Set(1, 2, 0, 7)

	require.Equal(t, uint8(200), f.At(1, 2, 0))
	require.Equal(t, uint8(7), c.At(1, 2, 0))
}

func TestFrameBrightness(t *testing.T) {
	f := NewGrayFrame(2, 2)
	f.Pix[0] = 10
	f.Pix[3] = 250
	require.Equal(t, int64(260), f.Brightness())
}

func TestFrameFromGray_RoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(2, 1, color.Gray{Y: 255})
	img.SetGray(0, 0, color.Gray{Y: 17})

	f := FrameFromGray(img)
	require.Equal(t, 3, f.Width)
	require.Equal(t, 2, f.Height)
	require.Equal(t, uint8(255), f.At(2, 1, 0))
	require.Equal(t, uint8(17), f.At(0, 0, 0))

	back := f.GrayImage()
	require.Equal(t, img.Pix, back.Pix)
}

func TestFrameCrop(t *testing.T) {
	f := NewGrayFrame(10, 10)
	f.Set(5, 5, 0, 99)

	crop := f.Crop(ROI{X0: 4, Y0: 4, X1: 8, Y1: 8})
	require.Equal(t, 4, crop.Width)
	require.Equal(t, 4, crop.Height)
	require.Equal(t, uint8(99), crop.At(1, 1, 0))

	// Обрезка за границами даёт пустой кадр.
	require.True(t, f.Crop(ROI{X0: 20, Y0: 20, X1: 30, Y1: 30}).Empty())
}
