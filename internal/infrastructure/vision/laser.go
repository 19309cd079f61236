package vision

import (
	"fmt"
	"math"

	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/domain/port"
)

// LaserOptions параметры детектора лазерного изоцентра.
type LaserOptions struct {
	ROIHalfSize     int     // полуширина квадратной области вокруг центра кадра
	BlurKernel      int     // размер гауссова ядра, нечётный
	Iterations      int     // число поперечных сечений на измерение
	InlierThreshold float64 // допуск инлаера при подгонке прямой, пиксели
	SlopeTolerance  float64 // порог параллельности прямых
}

// DefaultLaserOptions возвращает настройки, выверенные на штатной геометрии
// установки: область 200 px, ядро 5x5, 10 сечений, допуск 2 px, порог 1/100.
func DefaultLaserOptions() LaserOptions {
	return LaserOptions{
		ROIHalfSize:     200,
		BlurKernel:      5,
		Iterations:      10,
		InlierThreshold: 2.0,
		SlopeTolerance:  1.0 / 100,
	}
}

// LaserIsocenterDetector находит точку пересечения вертикальной и
// горизонтальной лазерных линий с субпиксельной точностью.
type LaserIsocenterDetector struct {
	opts LaserOptions
}

// NewLaserIsocenterDetector создаёт детектор с заданными параметрами.
func NewLaserIsocenterDetector(opts LaserOptions) *LaserIsocenterDetector {
	return &LaserIsocenterDetector{opts: opts}
}

// Detect находит изоцентр лазерного перекрестия на одноканальном кадре.
//
// Внутри области интереса берётся по Iterations-1 равноотстоящих строк и
// столбцов. Средняя позиция переднего плана в строке даёт кандидатную точку
// вертикальной линии, в столбце — горизонтальной. По обоим наборам кандидатов
// подгоняются устойчивые прямые; их пересечение переводится в координаты
// полного кадра. Геометрическое вырождение (линия не найдена, прямые почти
// параллельны, пустая область) — не ошибка: соответствующая координата
// берётся из геометрического центра области.
func (d *LaserIsocenterDetector) Detect(frame entity.Frame) (entity.LaserIsocenter, error) {
	if frame.Empty() || !frame.IsGray() {
		return entity.LaserIsocenter{}, fmt.Errorf("laser isocenter: frame must be non-empty single-channel: %w", ErrInvalidInput)
	}

	roi := entity.CenterROI(frame.Width, frame.Height, d.opts.ROIHalfSize)
	cx, cy := roi.CenterF()
	if roi.Empty() {
		return entity.LaserIsocenter{X: cx, Y: cy}, nil
	}

	crop := frame.Crop(roi)
	mask := DenoiseBinarize(crop, blurRadius(d.opts.BlurKernel))

	vertPts, horzPts := crossSections(mask, d.opts.Iterations)

	// x = f(y) для вертикальной линии, y = f(x) для горизонтальной.
	vert := fitRobustLine(vertPts, d.opts.InlierThreshold)
	horz := fitRobustLine(horzPts, d.opts.InlierThreshold)

	x, y := cx, cy
	switch {
	case vert.Valid && horz.Valid:
		// Пересечение — решение системы x = mv*y + bv, y = mh*x + bh.
		det := 1 - vert.Slope*horz.Slope
		if math.Abs(det) >= d.opts.SlopeTolerance {
			yLocal := (horz.Slope*vert.Intercept + horz.Intercept) / det
			xLocal := vert.At(yLocal)
			x = float64(roi.X0) + xLocal
			y = float64(roi.Y0) + yLocal
		}
	case vert.Valid:
		// Горизонтальная линия не найдена: по оси Y остаётся центр области.
		x = float64(roi.X0) + vert.At(cy-float64(roi.Y0))
	case horz.Valid:
		y = float64(roi.Y0) + horz.At(cx-float64(roi.X0))
	}

	return entity.LaserIsocenter{X: x, Y: y}, nil
}

// crossSections извлекает кандидатные точки линий из равноотстоящих сечений
// маски. Сечения без переднего плана пропускаются; одиночный яркий пиксель в
// сечении допустим и даёт точку сам по себе.
func crossSections(mask BinaryMask, iterations int) (vert, horz []samplePoint) {
	if iterations < 2 {
		iterations = 2
	}

	for i := 1; i < iterations; i++ {
		row := int(float64(mask.Height) / float64(iterations) * float64(i))
		col := int(float64(mask.Width) / float64(iterations) * float64(i))

		// Строка row: столбцы переднего плана лежат на вертикальной линии.
		if row < mask.Height {
			sum, n := 0, 0
			for x := 0; x < mask.Width; x++ {
				if mask.At(x, row) {
					sum += x
					n++
				}
			}
			if n > 0 {
				vert = append(vert, samplePoint{T: float64(row), V: float64(sum) / float64(n)})
			}
		}

		// Столбец col: строки переднего плана лежат на горизонтальной линии.
		if col < mask.Width {
			sum, n := 0, 0
			for y := 0; y < mask.Height; y++ {
				if mask.At(col, y) {
					sum += y
					n++
				}
			}
			if n > 0 {
				horz = append(horz, samplePoint{T: float64(col), V: float64(sum) / float64(n)})
			}
		}
	}
	return vert, horz
}

// blurRadius переводит размер ядра в радиус гауссова фильтра.
func blurRadius(kernel int) float64 {
	if kernel < 3 {
		kernel = 3
	}
	return float64(kernel-1) / 2
}

var _ port.LaserDetector = (*LaserIsocenterDetector)(nil)
