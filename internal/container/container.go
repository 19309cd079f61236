package container

import (
	"log/slog"

	"starshot-analyzer/config"
	app "starshot-analyzer/internal/application"
	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/domain/port"
	"starshot-analyzer/internal/infrastructure/imageio"
	"starshot-analyzer/internal/infrastructure/storage"
	"starshot-analyzer/internal/infrastructure/vision"
)

type Container struct {
	Capture  *app.CaptureService
	Analysis *app.AnalysisService
}

func New(source port.FrameSource, analyzer port.StarshotAnalyzer, params config.Params, logger *slog.Logger) *Container {
	laser := vision.NewLaserIsocenterDetector(vision.LaserOptions{
		ROIHalfSize:     params.Laser.ROIHalfSize,
		BlurKernel:      params.Laser.BlurKernel,
		Iterations:      params.Laser.Iterations,
		InlierThreshold: params.Laser.InlierThreshold,
		SlopeTolerance:  params.Laser.SlopeTolerance,
	})
	dr := vision.NewDRCenterDetector(vision.DROptions{
		ROIHalfSize: params.DR.ROIHalfSize,
		BlurKernel:  params.DR.BlurKernel,
		MinArea:     params.DR.MinArea,
		MaxArea:     params.DR.MaxArea,
	})

	crop := entity.ROI{
		X0: params.Crop.X,
		Y0: params.Crop.Y,
		X1: params.Crop.X + params.Crop.W,
		Y1: params.Crop.Y + params.Crop.H,
	}

	starlines := storage.NewMemoryStarlineRepository()
	captureService := app.NewCaptureService(source, crop, logger)
	analysisService := app.NewAnalysisService(laser, dr, analyzer, starlines, imageio.LoadFrames, logger)

	return &Container{
		Capture:  captureService,
		Analysis: analysisService,
	}
}
