package storage

import (
	"context"
	"fmt"
	"sync"

	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/domain/port"
)

type starlineShot struct {
	angle float64
	frame entity.Frame
}

// MemoryStarlineRepository in-memory хранилище снимков звёздных линий
type MemoryStarlineRepository struct {
	mu    sync.RWMutex
	shots []starlineShot
}

// NewMemoryStarlineRepository создаёт новое in-memory хранилище
func NewMemoryStarlineRepository() *MemoryStarlineRepository {
	return &MemoryStarlineRepository{}
}

// Add сохраняет копию кадра под углом гантри
func (r *MemoryStarlineRepository) Add(ctx context.Context, angle float64, frame entity.Frame) error {
	_ = ctx
	if frame.Empty() {
		return fmt.Errorf("starline at %.1f°: %w", angle, entity.ErrInvalidFrame)
	}

	r.mu.Lock()
	r.shots = append(r.shots, starlineShot{angle: angle, frame: frame.Clone()})
	r.mu.Unlock()

	return nil
}

// All возвращает копии кадров в порядке добавления
func (r *MemoryStarlineRepository) All(ctx context.Context) ([]entity.Frame, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	frames := make([]entity.Frame, 0, len(r.shots))
	for _, s := range r.shots {
		frames = append(frames, s.frame.Clone())
	}
	return frames, nil
}

// Clear удаляет все накопленные кадры
func (r *MemoryStarlineRepository) Clear(ctx context.Context) error {
	_ = ctx

	r.mu.Lock()
	r.shots = nil
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.StarlineRepository = (*MemoryStarlineRepository)(nil)
