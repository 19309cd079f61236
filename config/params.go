package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Допустимые диапазоны параметров детекции.
const (
	minROIHalfSize = 50
	maxROIHalfSize = 1000
	minKernelSize  = 3
	maxKernelSize  = 15
	minContourArea = 1
	maxContourArea = 10000
)

// LaserParams параметры детектора лазерного изоцентра.
type LaserParams struct {
	ROIHalfSize     int     `yaml:"roi_half_size"`
	BlurKernel      int     `yaml:"blur_kernel"`
	Iterations      int     `yaml:"iterations"`
	InlierThreshold float64 `yaml:"inlier_threshold"`
	SlopeTolerance  float64 `yaml:"slope_tolerance"`
}

// DRParams параметры детектора центра рентгеновской метки.
type DRParams struct {
	ROIHalfSize int `yaml:"roi_half_size"`
	BlurKernel  int `yaml:"blur_kernel"`
	MinArea     int `yaml:"min_area"`
	MaxArea     int `yaml:"max_area"`
}

// CropParams область обрезки снимков с камеры.
type CropParams struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Params — полный набор настраиваемых параметров анализа.
type Params struct {
	Laser LaserParams `yaml:"laser"`
	DR    DRParams    `yaml:"dr"`
	Crop  CropParams  `yaml:"crop"`
}

// DefaultParams возвращает штатные параметры установки.
func DefaultParams() Params {
	return Params{
		Laser: LaserParams{
			ROIHalfSize:     200,
			BlurKernel:      5,
			Iterations:      10,
			InlierThreshold: 2.0,
			SlopeTolerance:  1.0 / 100,
		},
		DR: DRParams{
			ROIHalfSize: 200,
			BlurKernel:  5,
			MinArea:     10,
			MaxArea:     500,
		},
		Crop: CropParams{X: 0, Y: 0, W: 640, H: 480},
	}
}

// LoadParams читает параметры из YAML-файла поверх умолчаний.
// Пустой путь даёт умолчания без обращения к диску.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()
	if path == "" {
		return params, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read params %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return Params{}, fmt.Errorf("parse params %s: %w", path, err)
	}
	if err := params.Validate(); err != nil {
		return Params{}, fmt.Errorf("params %s: %w", path, err)
	}
	return params, nil
}

// Validate проверяет параметры по допустимым диапазонам.
func (p Params) Validate() error {
	if err := p.Laser.Validate(); err != nil {
		return fmt.Errorf("laser: %w", err)
	}
	if err := p.DR.Validate(); err != nil {
		return fmt.Errorf("dr: %w", err)
	}
	if err := p.Crop.Validate(); err != nil {
		return fmt.Errorf("crop: %w", err)
	}
	return nil
}

// Validate проверяет параметры лазерного детектора.
func (p LaserParams) Validate() error {
	if p.ROIHalfSize < minROIHalfSize || p.ROIHalfSize > maxROIHalfSize {
		return fmt.Errorf("roi_half_size %d is out of range [%d, %d]", p.ROIHalfSize, minROIHalfSize, maxROIHalfSize)
	}
	if err := validateKernel(p.BlurKernel); err != nil {
		return err
	}
	if p.Iterations < 2 {
		return fmt.Errorf("iterations must be at least 2, got %d", p.Iterations)
	}
	if p.InlierThreshold <= 0 {
		return fmt.Errorf("inlier_threshold must be positive, got %g", p.InlierThreshold)
	}
	if p.SlopeTolerance <= 0 {
		return fmt.Errorf("slope_tolerance must be positive, got %g", p.SlopeTolerance)
	}
	return nil
}

// Validate проверяет параметры детектора метки.
func (p DRParams) Validate() error {
	if p.ROIHalfSize < minROIHalfSize || p.ROIHalfSize > maxROIHalfSize {
		return fmt.Errorf("roi_half_size %d is out of range [%d, %d]", p.ROIHalfSize, minROIHalfSize, maxROIHalfSize)
	}
	if err := validateKernel(p.BlurKernel); err != nil {
		return err
	}
	if p.MinArea < minContourArea || p.MaxArea > maxContourArea {
		return fmt.Errorf("contour area bounds [%d, %d] are out of range [%d, %d]", p.MinArea, p.MaxArea, minContourArea, maxContourArea)
	}
	if p.MaxArea < p.MinArea {
		return fmt.Errorf("max_area %d is below min_area %d", p.MaxArea, p.MinArea)
	}
	return nil
}

// Validate проверяет область обрезки.
func (p CropParams) Validate() error {
	if p.W <= 0 {
		return fmt.Errorf("w must be positive, got %d", p.W)
	}
	if p.H <= 0 {
		return fmt.Errorf("h must be positive, got %d", p.H)
	}
	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("x and y must be non-negative, got (%d, %d)", p.X, p.Y)
	}
	return nil
}

func validateKernel(k int) error {
	if k < minKernelSize || k > maxKernelSize {
		return fmt.Errorf("blur_kernel %d is out of range [%d, %d]", k, minKernelSize, maxKernelSize)
	}
	if k%2 == 0 {
		return fmt.Errorf("blur_kernel must be odd, got %d", k)
	}
	return nil
}
