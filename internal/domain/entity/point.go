package entity

import "image"

// LaserIsocenter — субпиксельная точка пересечения лазерных линий
// в координатах полного кадра.
type LaserIsocenter struct {
	X float64
	Y float64
}

// MarkerCenter — целочисленный центр рентгеновской метки
// в координатах полного кадра.
type MarkerCenter struct {
	X int
	Y int
}

// Point возвращает центр метки как стандартную точку.
func (c MarkerCenter) Point() image.Point {
	return image.Pt(c.X, c.Y)
}

// StarshotResult — итог внешнего анализа звёздного снимка.
type StarshotResult struct {
	Passed           bool    // уложился ли снимок в допуск
	ToleranceMM      float64 // допуск в миллиметрах
	CircleDiameterMM float64 // диаметр минимальной окружности пересечений
	CircleCenterX    float64 // центр окружности, пиксели
	CircleCenterY    float64
}

// Offset — смещение детектированной точки от радиационного центра в миллиметрах.
type Offset struct {
	DX float64
	DY float64
}
