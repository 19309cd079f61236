package vision

// contour — связная компонента переднего плана маски. Суммы координат
// накапливаются для моментов изображения: m00 = Area, m10 = SumX, m01 = SumY.
type contour struct {
	Area int
	SumX int64
	SumY int64
}

// CentroidInt возвращает центр масс компоненты, усечённый до целых пикселей.
func (c contour) CentroidInt() (x, y int) {
	return int(float64(c.SumX) / float64(c.Area)), int(float64(c.SumY) / float64(c.Area))
}

// findContours выделяет 8-связные компоненты переднего плана маски.
func findContours(mask BinaryMask) []contour {
	if mask.Empty() {
		return nil
	}

	visited := make([]bool, len(mask.Bits))
	var result []contour
	stack := make([]int, 0, 64)

	for start, fg := range mask.Bits {
		if !fg || visited[start] {
			continue
		}

		var c contour
		visited[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			x, y := idx%mask.Width, idx/mask.Width
			c.Area++
			c.SumX += int64(x)
			c.SumY += int64(y)

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= mask.Width || ny >= mask.Height {
						continue
					}
					n := ny*mask.Width + nx
					if mask.Bits[n] && !visited[n] {
						visited[n] = true
						stack = append(stack, n)
					}
				}
			}
		}
		result = append(result, c)
	}
	return result
}
