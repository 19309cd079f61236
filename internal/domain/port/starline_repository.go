package port

import (
	"context"

	"starshot-analyzer/internal/domain/entity"
)

// StarlineRepository интерфейс хранилища снимков звёздных линий,
// накопленных за один проход гантри перед слиянием.
type StarlineRepository interface {
	// Add сохраняет копию кадра под углом гантри в градусах.
	Add(ctx context.Context, angle float64, frame entity.Frame) error

	// All возвращает копии кадров в порядке добавления.
	All(ctx context.Context) ([]entity.Frame, error)

	// Clear удаляет все накопленные кадры.
	Clear(ctx context.Context) error
}
