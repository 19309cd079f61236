package entity

// Line описывает прямую в параметризации value = Slope*arg + Intercept.
// Для вертикальной лазерной линии аргументом служит строка (x = f(y)),
// для горизонтальной — столбец (y = f(x)).
type Line struct {
	Slope     float64
	Intercept float64
	Valid     bool // false, если подгонка вырождена или точек не хватило
}

// At возвращает значение прямой в точке t.
func (l Line) At(t float64) float64 {
	return l.Slope*t + l.Intercept
}
