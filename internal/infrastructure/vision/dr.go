package vision

import (
	"fmt"

	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/domain/port"
)

// momentEpsilon — порог нулевого момента, ниже которого центр масс не считается.
const momentEpsilon = 1e-10

// DROptions параметры детектора центра рентгеновской метки.
type DROptions struct {
	ROIHalfSize int // полуширина квадратной области вокруг центра кадра
	BlurKernel  int // размер гауссова ядра, нечётный
	MinArea     int // нижняя граница площади контура, пиксели²
	MaxArea     int // верхняя граница площади контура, пиксели²
}

// DefaultDROptions возвращает штатные настройки: область 200 px, ядро 5x5,
// площадь метки от 10 до 500 пикселей².
func DefaultDROptions() DROptions {
	return DROptions{
		ROIHalfSize: 200,
		BlurKernel:  5,
		MinArea:     10,
		MaxArea:     500,
	}
}

// DRCenterDetector находит центр круглой метки на цифровом рентгеновском
// снимке по контурам переднего плана.
type DRCenterDetector struct {
	opts DROptions
}

// NewDRCenterDetector создаёт детектор с заданными параметрами.
func NewDRCenterDetector(opts DROptions) *DRCenterDetector {
	return &DRCenterDetector{opts: opts}
}

// Detect находит центр метки на одноканальном кадре.
//
// Внутри области интереса выделяются связные компоненты переднего плана,
// отбрасываются те, чья площадь вне [MinArea, MaxArea], из оставшихся
// берётся крупнейшая, её центр масс переводится в координаты полного кадра.
// Отсутствие подходящего контура или вырожденный нулевой момент — не ошибка:
// возвращается геометрический центр области.
func (d *DRCenterDetector) Detect(frame entity.Frame) (entity.MarkerCenter, error) {
	if frame.Empty() || !frame.IsGray() {
		return entity.MarkerCenter{}, fmt.Errorf("dr center: frame must be non-empty single-channel: %w", ErrInvalidInput)
	}
	if d.opts.MaxArea < d.opts.MinArea {
		return entity.MarkerCenter{}, fmt.Errorf("dr center: max area %d below min area %d: %w",
			d.opts.MaxArea, d.opts.MinArea, ErrInvalidInput)
	}

	roi := entity.CenterROI(frame.Width, frame.Height, d.opts.ROIHalfSize)
	center := roi.Center()
	if roi.Empty() {
		return entity.MarkerCenter{X: center.X, Y: center.Y}, nil
	}

	crop := frame.Crop(roi)
	mask := DenoiseBinarize(crop, blurRadius(d.opts.BlurKernel))

	var best *contour
	for _, c := range findContours(mask) {
		if c.Area < d.opts.MinArea || c.Area > d.opts.MaxArea {
			continue
		}
		if best == nil || c.Area > best.Area {
			cc := c
			best = &cc
		}
	}

	if best == nil || float64(best.Area) < momentEpsilon {
		return entity.MarkerCenter{X: center.X, Y: center.Y}, nil
	}

	cx, cy := best.CentroidInt()
	return entity.MarkerCenter{X: roi.X0 + cx, Y: roi.Y0 + cy}, nil
}

var _ port.MarkerDetector = (*DRCenterDetector)(nil)
