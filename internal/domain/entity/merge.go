package entity

import "fmt"

// MergeFrames складывает кадры попиксельно с насыщением на 255.
// Пустой список даёт nil без ошибки; один кадр — его независимую копию.
// Все кадры обязаны совпадать по размеру и числу каналов, проверка
// выполняется до какого-либо смешивания.
func MergeFrames(frames []Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, nil
	}

	for i := range frames {
		if frames[i].Empty() {
			return nil, fmt.Errorf("frame %d: %w", i, ErrInvalidFrame)
		}
	}

	ref := frames[0]
	for i := 1; i < len(frames); i++ {
		f := frames[i]
		if f.Width != ref.Width || f.Height != ref.Height || f.Channels != ref.Channels {
			return nil, fmt.Errorf("frame %d is %dx%dx%d, expected %dx%dx%d: %w",
				i, f.Width, f.Height, f.Channels, ref.Width, ref.Height, ref.Channels, ErrFrameMismatch)
		}
	}

	merged := ref.Clone()
	for _, f := range frames[1:] {
		for i, v := range f.Pix {
			sum := uint16(merged.Pix[i]) + uint16(v)
			if sum > 255 {
				sum = 255
			}
			merged.Pix[i] = uint8(sum)
		}
	}

	return &merged, nil
}
