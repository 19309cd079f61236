package entity

import "image"

// ROI — прямоугольная область интереса в координатах кадра.
// Инвариант после Clamp: 0 <= X0 <= X1 <= ширина, 0 <= Y0 <= Y1 <= высота.
type ROI struct {
	X0, Y0 int // левый верхний угол, включительно
	X1, Y1 int // правый нижний угол, не включительно
}

// ROIFromCenter строит квадратную область вокруг точки center с полушириной half,
// обрезанную по границам кадра width x height. Если half покрывает кадр целиком,
// область вырождается в полный кадр.
func ROIFromCenter(width, height int, center image.Point, half int) ROI {
	r := ROI{
		X0: center.X - half,
		Y0: center.Y - half,
		X1: center.X + half,
		Y1: center.Y + half,
	}
	return r.Clamp(width, height)
}

// CenterROI строит область вокруг геометрического центра кадра.
func CenterROI(width, height, half int) ROI {
	return ROIFromCenter(width, height, image.Pt(width/2, height/2), half)
}

// Clamp обрезает область по границам кадра width x height.
func (r ROI) Clamp(width, height int) ROI {
	if r.X0 < 0 {
		r.X0 = 0
	}
	if r.Y0 < 0 {
		r.Y0 = 0
	}
	if r.X1 > width {
		r.X1 = width
	}
	if r.Y1 > height {
		r.Y1 = height
	}
	if r.X1 < r.X0 {
		r.X1 = r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y1 = r.Y0
	}
	return r
}

// Width возвращает ширину области.
func (r ROI) Width() int { return r.X1 - r.X0 }

// Height возвращает высоту области.
func (r ROI) Height() int { return r.Y1 - r.Y0 }

// Empty сообщает, что область не содержит ни одного пикселя.
func (r ROI) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Center возвращает целочисленный центр области в координатах кадра.
func (r ROI) Center() image.Point {
	return image.Pt((r.X0+r.X1)/2, (r.Y0+r.Y1)/2)
}

// CenterF возвращает центр области с субпиксельной точностью.
func (r ROI) CenterF() (x, y float64) {
	return float64(r.X0+r.X1) / 2, float64(r.Y0+r.Y1) / 2
}
