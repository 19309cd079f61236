package app

import (
	"context"
	"errors"
	"log/slog"

	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/domain/port"
)

// ErrNoFrames возвращается, когда за сессию записи не пришло ни одного кадра.
var ErrNoFrames = errors.New("no frames received during recording")

// ErrNoSnapshot возвращается, когда поток ещё не дал ни одного кадра.
var ErrNoSnapshot = errors.New("no frame available yet")

// CaptureService управляет жизненным циклом видеопотока и сессиями записи,
// в течение которых отбирается самый яркий кадр прохода гантри.
type CaptureService struct {
	source port.FrameSource
	crop   entity.ROI // необязательная обрезка снимков; нулевая — без обрезки
	logger *slog.Logger
}

// NewCaptureService создаёт сервис поверх источника кадров.
func NewCaptureService(source port.FrameSource, crop entity.ROI, logger *slog.Logger) *CaptureService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CaptureService{source: source, crop: crop, logger: logger}
}

// Connect подключает источник к адресу потока.
func (s *CaptureService) Connect(ctx context.Context, endpoint string) error {
	if err := s.source.Connect(ctx, endpoint); err != nil {
		return err
	}
	s.logger.Info("capture connected", "endpoint", endpoint)
	return nil
}

// Disconnect разрывает соединение; безопасен в любой момент.
func (s *CaptureService) Disconnect() {
	s.source.Disconnect()
	s.logger.Info("capture disconnected")
}

// State возвращает состояние потока.
func (s *CaptureService) State() entity.StreamState {
	return s.source.State()
}

// Snapshot возвращает копию последнего кадра, при необходимости обрезанную
// по настроенной области.
func (s *CaptureService) Snapshot() (*entity.Frame, error) {
	frame := s.source.LatestFrame()
	if frame == nil {
		return nil, ErrNoSnapshot
	}
	if !s.crop.Empty() {
		cropped := frame.Crop(s.crop)
		return &cropped, nil
	}
	return frame, nil
}

// BeginRecording запускает отбор самого яркого кадра.
func (s *CaptureService) BeginRecording() {
	s.source.StartSession()
	s.logger.Info("recording started")
}

// FinishRecording завершает отбор и возвращает самый яркий кадр сессии.
func (s *CaptureService) FinishRecording() (*entity.Frame, error) {
	best := s.source.StopSession()
	if best == nil {
		return nil, ErrNoFrames
	}
	if !s.crop.Empty() {
		cropped := best.Crop(s.crop)
		best = &cropped
	}
	s.logger.Info("recording finished", "brightness", best.Brightness())
	return best, nil
}
