package vision

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"starshot-analyzer/internal/domain/entity"
)

// samplePoint — кандидатная точка поперечного сечения: позиция сечения T
// и средняя координата переднего плана V в нём.
type samplePoint struct {
	T float64
	V float64
}

// minFitPoints — минимум точек для валидной подгонки прямой.
const minFitPoints = 2

// fitRobustLine подгоняет прямую V = slope*T + intercept, устойчивую к
// выбросам. Кандидатных точек мало (по числу сечений), поэтому вместо
// случайных выборок перебираются все пары-гипотезы; победитель по числу
// инлаеров уточняется МНК только по своим инлаерам.
//
// Возвращает невалидную прямую, если точек меньше minFitPoints или все
// сечения легли в одну позицию (вырожденная конфигурация).
func fitRobustLine(points []samplePoint, inlierThreshold float64) entity.Line {
	if len(points) < minFitPoints {
		return entity.Line{}
	}

	var best []samplePoint
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			a, b := points[i], points[j]
			if a.T == b.T {
				continue
			}
			slope := (b.V - a.V) / (b.T - a.T)
			intercept := a.V - slope*a.T

			var inliers []samplePoint
			for _, p := range points {
				if math.Abs(slope*p.T+intercept-p.V) <= inlierThreshold {
					inliers = append(inliers, p)
				}
			}
			if len(inliers) > len(best) {
				best = inliers
			}
		}
	}

	if len(best) < minFitPoints {
		return entity.Line{}
	}

	ts := make([]float64, len(best))
	vs := make([]float64, len(best))
	for i, p := range best {
		ts[i] = p.T
		vs[i] = p.V
	}

	intercept, slope := stat.LinearRegression(ts, vs, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) || math.IsNaN(intercept) {
		return entity.Line{}
	}
	return entity.Line{Slope: slope, Intercept: intercept, Valid: true}
}
