package port

import "starshot-analyzer/internal/domain/entity"

// LaserDetector интерфейс детектора лазерного изоцентра
type LaserDetector interface {
	// Detect находит точку пересечения лазерных линий на одноканальном кадре.
	Detect(frame entity.Frame) (entity.LaserIsocenter, error)
}

// MarkerDetector интерфейс детектора центра рентгеновской метки
type MarkerDetector interface {
	// Detect находит центр метки на одноканальном кадре.
	Detect(frame entity.Frame) (entity.MarkerCenter, error)
}

// StarshotAnalyzer интерфейс внешней процедуры анализа звёздного снимка.
// Реализация (pylinac-совместимая) живёт за пределами этого модуля.
type StarshotAnalyzer interface {
	Analyze(merged entity.Frame) (entity.StarshotResult, error)
}
