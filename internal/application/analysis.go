package app

import (
	"context"
	"errors"
	"log/slog"

	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/domain/port"
)

// dpmm — пикселей на миллиметр по калибровке панели детектора.
const dpmm = 231.5 / 30.0

// ErrNoStarlines возвращается при попытке слить пустой набор снимков.
var ErrNoStarlines = errors.New("no starline frames to merge")

// FrameLoader читает набор изображений с диска.
type FrameLoader func(ctx context.Context, paths []string) ([]entity.Frame, error)

// StarshotReport — итог полного анализа: внешний результат плюс смещения
// лазерного изоцентра и рентгеновской метки от радиационного центра.
type StarshotReport struct {
	Result      entity.StarshotResult
	LaserOffset entity.Offset // миллиметры
	DROffset    entity.Offset // миллиметры
}

// AnalysisService — фасад над детекторами, слиянием снимков и внешней
// процедурой анализа звёздного снимка.
type AnalysisService struct {
	laser     port.LaserDetector
	marker    port.MarkerDetector
	analyzer  port.StarshotAnalyzer
	starlines port.StarlineRepository
	load      FrameLoader
	logger    *slog.Logger
}

// NewAnalysisService создаёт сервис анализа.
func NewAnalysisService(
	laser port.LaserDetector,
	marker port.MarkerDetector,
	analyzer port.StarshotAnalyzer,
	starlines port.StarlineRepository,
	load FrameLoader,
	logger *slog.Logger,
) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{
		laser:     laser,
		marker:    marker,
		analyzer:  analyzer,
		starlines: starlines,
		load:      load,
		logger:    logger,
	}
}

// DetectLaserIsocenter находит лазерный изоцентр на кадре.
func (s *AnalysisService) DetectLaserIsocenter(frame entity.Frame) (entity.LaserIsocenter, error) {
	if s.laser == nil {
		return entity.LaserIsocenter{}, errors.New("laser detector is not configured")
	}
	iso, err := s.laser.Detect(frame)
	if err != nil {
		return entity.LaserIsocenter{}, err
	}
	s.logger.Info("laser isocenter detected", "x", iso.X, "y", iso.Y)
	return iso, nil
}

// DetectDRCenter находит центр рентгеновской метки на кадре.
func (s *AnalysisService) DetectDRCenter(frame entity.Frame) (entity.MarkerCenter, error) {
	if s.marker == nil {
		return entity.MarkerCenter{}, errors.New("marker detector is not configured")
	}
	c, err := s.marker.Detect(frame)
	if err != nil {
		return entity.MarkerCenter{}, err
	}
	s.logger.Info("dr center detected", "x", c.X, "y", c.Y)
	return c, nil
}

// AddStarline сохраняет снимок звёздной линии под углом гантри.
func (s *AnalysisService) AddStarline(ctx context.Context, angle float64, frame entity.Frame) error {
	if s.starlines == nil {
		return errors.New("starline repository is not configured")
	}
	return s.starlines.Add(ctx, angle, frame)
}

// ResetStarlines очищает накопленные снимки перед новым измерением.
func (s *AnalysisService) ResetStarlines(ctx context.Context) error {
	if s.starlines == nil {
		return errors.New("starline repository is not configured")
	}
	if err := s.starlines.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("starline frames cleared")
	return nil
}

// MergeStarlines сливает накопленные снимки в один композит.
func (s *AnalysisService) MergeStarlines(ctx context.Context) (*entity.Frame, error) {
	if s.starlines == nil {
		return nil, errors.New("starline repository is not configured")
	}
	frames, err := s.starlines.All(ctx)
	if err != nil {
		return nil, err
	}
	return s.mergeFrames(frames)
}

// MergeStarlineFiles читает снимки с диска и сливает их в один композит.
func (s *AnalysisService) MergeStarlineFiles(ctx context.Context, paths []string) (*entity.Frame, error) {
	if s.load == nil {
		return nil, errors.New("frame loader is not configured")
	}
	if len(paths) == 0 {
		return nil, ErrNoStarlines
	}
	frames, err := s.load(ctx, paths)
	if err != nil {
		return nil, err
	}
	return s.mergeFrames(frames)
}

func (s *AnalysisService) mergeFrames(frames []entity.Frame) (*entity.Frame, error) {
	if len(frames) == 0 {
		return nil, ErrNoStarlines
	}
	merged, err := entity.MergeFrames(frames)
	if err != nil {
		return nil, err
	}
	s.logger.Info("starline frames merged", "count", len(frames))
	return merged, nil
}

// AnalyzeStarshot запускает внешний анализ композита и считает смещения
// лазерного изоцентра и метки от радиационного центра в миллиметрах.
func (s *AnalysisService) AnalyzeStarshot(
	merged entity.Frame,
	laser entity.LaserIsocenter,
	dr entity.MarkerCenter,
) (*StarshotReport, error) {
	if s.analyzer == nil {
		return nil, errors.New("starshot analyzer is not configured")
	}

	result, err := s.analyzer.Analyze(merged)
	if err != nil {
		return nil, err
	}

	report := &StarshotReport{
		Result: result,
		LaserOffset: entity.Offset{
			DX: (laser.X - result.CircleCenterX) / dpmm,
			DY: (laser.Y - result.CircleCenterY) / dpmm,
		},
		DROffset: entity.Offset{
			DX: (float64(dr.X) - result.CircleCenterX) / dpmm,
			DY: (float64(dr.Y) - result.CircleCenterY) / dpmm,
		},
	}

	s.logger.Info("starshot analysis complete",
		"passed", result.Passed,
		"circle_diameter_mm", result.CircleDiameterMM,
	)
	return report, nil
}
