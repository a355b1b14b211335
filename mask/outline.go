package mask

import "math"

type kernel [3][3]int32

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// Outline detects the edges of the covered area of m with a Sobel operator
// and returns them as an ALPHA mask of the same pitch. Gradient magnitudes not
// exceeding threshold are dropped. Samples outside the mask repeat the border.
// See https://en.wikipedia.org/wiki/Sobel_operator
func Outline(m *Mask, threshold float64) *Mask {
	w, h := m.Pitch, m.Height()
	out := &Mask{Type: Alpha, Data: make([]uint8, len(m.Data)), Pitch: m.Pitch}
	if w == 0 || h == 0 {
		return out
	}

	sample := func(x, y int) int32 {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return int32(m.Coverage(m.Data[y*w+x]))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sumX, sumY int32
			for ky := 0; ky < 3; ky++ {
				for kx := 0; kx < 3; kx++ {
					v := sample(x+kx-1, y+ky-1)
					sumX += v * kernelX[ky][kx]
					sumY += v * kernelY[ky][kx]
				}
			}
			magnitude := math.Sqrt(float64(sumX*sumX) + float64(sumY*sumY))
			if magnitude > 255 {
				magnitude = 255
			}
			if magnitude > threshold {
				out.Data[y*w+x] = uint8(magnitude)
			}
		}
	}
	return out
}
