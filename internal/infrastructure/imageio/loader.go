package imageio

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"starshot-analyzer/internal/domain/entity"
)

// LoadFrame читает изображение с диска и приводит его к одноканальному кадру.
func LoadFrame(path string) (entity.Frame, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return entity.Frame{}, fmt.Errorf("open image %s: %w", path, err)
	}

	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	return entity.FrameFromGray(gray), nil
}

// LoadFrames читает набор изображений параллельно, сохраняя порядок путей.
func LoadFrames(ctx context.Context, paths []string) ([]entity.Frame, error) {
	frames := make([]entity.Frame, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := LoadFrame(path)
			if err != nil {
				return err
			}
			frames[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

// SaveFrame пишет одноканальный кадр на диск; формат выбирается по расширению.
func SaveFrame(frame entity.Frame, path string) error {
	img := frame.GrayImage()
	if img == nil {
		return fmt.Errorf("save image %s: %w", path, entity.ErrInvalidFrame)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save image %s: %w", path, err)
	}
	return nil
}
