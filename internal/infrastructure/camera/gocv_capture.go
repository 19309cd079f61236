//go:build gocv
// +build gocv

package camera

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/domain/port"
)

// GoCVCapture обёртка над gocv.VideoCapture: читает кадры из сетевой камеры
// или видеофайла и отдаёт их копиями в виде entity.Frame.
type GoCVCapture struct {
	cap *gocv.VideoCapture
	mat gocv.Mat
}

// OpenStream открывает видеопоток через OpenCV.
func OpenStream(endpoint string) (port.VideoCapture, error) {
	cap, err := gocv.OpenVideoCapture(endpoint)
	if err != nil {
		return nil, err
	}
	if !cap.IsOpened() {
		_ = cap.Close()
		return nil, fmt.Errorf("video source %q is not opened", endpoint)
	}
	return &GoCVCapture{cap: cap, mat: gocv.NewMat()}, nil
}

// Read блокируется до следующего кадра и возвращает его копию.
func (c *GoCVCapture) Read() (entity.Frame, error) {
	if c.cap == nil {
		return entity.Frame{}, errors.New("capture is closed")
	}
	if ok := c.cap.Read(&c.mat); !ok || c.mat.Empty() {
		return entity.Frame{}, errors.New("no frame received from video source")
	}
	return matToFrame(c.mat)
}

// Close освобождает матрицу и поток; повторный вызов безопасен.
func (c *GoCVCapture) Close() error {
	if c.cap == nil {
		return nil
	}
	c.mat.Close()
	err := c.cap.Close()
	c.cap = nil
	return err
}

// matToFrame копирует данные матрицы в независимый кадр.
func matToFrame(mat gocv.Mat) (entity.Frame, error) {
	data, err := mat.DataPtrUint8()
	if err != nil {
		return entity.Frame{}, fmt.Errorf("mat data: %w", err)
	}

	f := entity.Frame{
		Pix:      make([]uint8, len(data)),
		Width:    mat.Cols(),
		Height:   mat.Rows(),
		Channels: mat.Channels(),
	}
	copy(f.Pix, data)
	if f.Empty() {
		return entity.Frame{}, errors.New("decoded frame has inconsistent shape")
	}
	return f, nil
}

var _ port.VideoCapture = (*GoCVCapture)(nil)
