package imageio

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"starshot-analyzer/internal/domain/entity"
)

func writeTestImage(t *testing.T, dir, name string, value uint8) string {
	t.Helper()
	f := entity.NewGrayFrame(6, 4)
	for i := range f.Pix {
		f.Pix[i] = value
	}
	path := filepath.Join(dir, name)
	require.NoError(t, SaveFrame(f, path))
	return path
}

func TestLoadFrame_RoundTrip(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), "shot.png", 180)

	f, err := LoadFrame(path)
	require.NoError(t, err)
	require.Equal(t, 6, f.Width)
	require.Equal(t, 4, f.Height)
	require.Equal(t, 1, f.Channels)
	require.Equal(t, uint8(180), f.At(3, 2, 0))
}

func TestLoadFrame_MissingFile(t *testing.T) {
	_, err := LoadFrame(filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
}

func TestLoadFrames_KeepsOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeTestImage(t, dir, "g0.png", 10),
		writeTestImage(t, dir, "g90.png", 20),
		writeTestImage(t, dir, "g180.png", 30),
	}

	frames, err := LoadFrames(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	require.Equal(t, uint8(10), frames[0].Pix[0])
	require.Equal(t, uint8(20), frames[1].Pix[0])
	require.Equal(t, uint8(30), frames[2].Pix[0])
}

func TestLoadFrames_FailsOnAnyMissing(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeTestImage(t, dir, "g0.png", 10),
		filepath.Join(dir, "absent.png"),
	}

	_, err := LoadFrames(context.Background(), paths)
	require.Error(t, err)
}

func TestSaveFrame_RejectsMultiChannel(t *testing.T) {
	err := SaveFrame(entity.NewFrame(2, 2, 3), filepath.Join(t.TempDir(), "bad.png"))
	require.ErrorIs(t, err, entity.ErrInvalidFrame)
}
