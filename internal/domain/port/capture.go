package port

import "starshot-analyzer/internal/domain/entity"

// VideoCapture интерфейс низкоуровневого источника кадров
type VideoCapture interface {
	// Read блокируется до следующего кадра и возвращает его копию.
	Read() (entity.Frame, error)

	// Close освобождает поток; повторный вызов безопасен.
	Close() error
}

// CaptureOpener открывает поток по адресу (URL камеры или путь к устройству).
type CaptureOpener func(endpoint string) (VideoCapture, error)
