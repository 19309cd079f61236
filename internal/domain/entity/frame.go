package entity

import (
	"errors"
	"image"
)

var (
	// ErrInvalidFrame возвращается, когда кадр пуст или его буфер не соответствует размерам.
	ErrInvalidFrame = errors.New("invalid frame")

	// ErrFrameMismatch возвращается, когда кадры отличаются размером или числом каналов.
	ErrFrameMismatch = errors.New("frames differ in size or channels")
)

// Frame представляет кадр как непрерывный построчный буфер пикселей.
// Значение Frame владеет своим буфером: при передаче между компонентами
// всегда используется Clone, чтобы никто не держал общий указатель на Pix.
type Frame struct {
	Pix      []uint8 // данные пикселей, строка за строкой
	Width    int     // ширина в пикселях
	Height   int     // высота в пикселях
	Channels int     // число каналов: 1 — градации серого, 3 — BGR
}

// NewFrame создаёт нулевой кадр заданного размера.
func NewFrame(width, height, channels int) Frame {
	if width <= 0 || height <= 0 || channels <= 0 {
		return Frame{}
	}
	return Frame{
		Pix:      make([]uint8, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// NewGrayFrame создаёт нулевой одноканальный кадр.
func NewGrayFrame(width, height int) Frame {
	return NewFrame(width, height, 1)
}

// FrameFromGray копирует стандартное серое изображение в кадр.
func FrameFromGray(img *image.Gray) Frame {
	b := img.Bounds()
	f := NewGrayFrame(b.Dx(), b.Dy())
	for y := 0; y < f.Height; y++ {
		src := img.Pix[(y+b.Min.Y-img.Rect.Min.Y)*img.Stride+(b.Min.X-img.Rect.Min.X):]
		copy(f.Pix[y*f.Width:(y+1)*f.Width], src[:f.Width])
	}
	return f
}

// Empty сообщает, что кадр не содержит данных.
func (f Frame) Empty() bool {
	return f.Width <= 0 || f.Height <= 0 || f.Channels <= 0 ||
		len(f.Pix) != f.Width*f.Height*f.Channels
}

// IsGray сообщает, что кадр одноканальный.
func (f Frame) IsGray() bool {
	return f.Channels == 1
}

// Clone возвращает независимую копию кадра.
func (f Frame) Clone() Frame {
	c := f
	c.Pix = make([]uint8, len(f.Pix))
	copy(c.Pix, f.Pix)
	return c
}

// At возвращает значение канала c пикселя (x, y). Границы не проверяются.
func (f Frame) At(x, y, c int) uint8 {
	return f.Pix[(y*f.Width+x)*f.Channels+c]
}

// Set записывает значение канала c пикселя (x, y). Границы не проверяются.
func (f *Frame) Set(x, y, c int, v uint8) {
	f.Pix[(y*f.Width+x)*f.Channels+c] = v
}

// Brightness возвращает суммарную яркость кадра — сумму всех значений буфера.
func (f Frame) Brightness() int64 {
	var sum int64
	for _, v := range f.Pix {
		sum += int64(v)
	}
	return sum
}

// GrayImage конвертирует одноканальный кадр в *image.Gray с копией буфера.
// Для многоканального кадра возвращается nil.
func (f Frame) GrayImage() *image.Gray {
	if !f.IsGray() || f.Empty() {
		return nil
	}
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.Pix)
	return img
}

// Crop возвращает копию прямоугольного фрагмента кадра.
// Область обрезается по границам кадра; пустое пересечение даёт пустой кадр.
func (f Frame) Crop(r ROI) Frame {
	r = r.Clamp(f.Width, f.Height)
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 || f.Empty() {
		return Frame{}
	}
	out := NewFrame(w, h, f.Channels)
	rowLen := w * f.Channels
	for y := 0; y < h; y++ {
		srcOff := ((r.Y0+y)*f.Width + r.X0) * f.Channels
		copy(out.Pix[y*rowLen:(y+1)*rowLen], f.Pix[srcOff:srcOff+rowLen])
	}
	return out
}
