package vision

import (
	"errors"

	"github.com/anthonynsimon/bild/blur"

	"starshot-analyzer/internal/domain/entity"
)

// ErrInvalidInput возвращается детекторами при некорректной форме входа:
// пустой кадр, не одноканальный буфер или бессмысленные параметры.
var ErrInvalidInput = errors.New("invalid image input")

// BinaryMask — двухуровневая маска области интереса. Истина — передний план.
// Маска живёт только внутри детектора и наружу не отдаётся.
type BinaryMask struct {
	Bits   []bool
	Width  int
	Height int
}

// At возвращает значение маски в точке (x, y). Границы не проверяются.
func (m BinaryMask) At(x, y int) bool {
	return m.Bits[y*m.Width+x]
}

// Empty сообщает, что маска не содержит пикселей.
func (m BinaryMask) Empty() bool {
	return m.Width <= 0 || m.Height <= 0
}

// DenoiseBinarize сглаживает одноканальный фрагмент гауссовым фильтром и
// бинаризует его автоматическим порогом Оцу. Передним планом считаются
// пиксели ярче порога: на снимках лазеров и меток яркое и есть объект.
// Функция детерминирована и не имеет побочных эффектов.
func DenoiseBinarize(roi entity.Frame, blurRadius float64) BinaryMask {
	img := roi.GrayImage()
	if img == nil {
		return BinaryMask{}
	}

	blurred := blur.Gaussian(img, blurRadius)

	// blur.Gaussian возвращает RGBA; для серого входа каналы совпадают,
	// достаточно красного.
	w, h := roi.Width, roi.Height
	gray := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray[y*w+x] = blurred.Pix[blurred.PixOffset(x, y)]
		}
	}

	t := otsuThreshold(gray)
	bits := make([]bool, len(gray))
	for i, v := range gray {
		bits[i] = v > t
	}
	return BinaryMask{Bits: bits, Width: w, Height: h}
}

// otsuThreshold подбирает глобальный порог, максимизируя межклассовую
// дисперсию бимодальной гистограммы.
func otsuThreshold(pix []uint8) uint8 {
	var hist [256]int
	for _, v := range pix {
		hist[v]++
	}

	total := float64(len(pix))
	var sumAll float64
	for i, n := range hist {
		sumAll += float64(i) * float64(n)
	}

	var sumB, wB float64
	bestVar := -1.0
	bestT := 0
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sumAll - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > bestVar {
			bestVar = between
			bestT = t
		}
	}
	return uint8(bestT)
}
