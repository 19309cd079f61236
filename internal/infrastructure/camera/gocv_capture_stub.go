//go:build !gocv
// +build !gocv

package camera

import (
	"errors"

	"starshot-analyzer/internal/domain/port"
)

// OpenStream возвращает ошибку, если сборка без тега gocv.
func OpenStream(endpoint string) (port.VideoCapture, error) {
	_ = endpoint
	return nil, errors.New("gocv build tag is not enabled")
}
