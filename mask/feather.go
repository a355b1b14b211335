// StackBlur based feathering, following the algorithm described here:
// http://incubator.quasimondo.com/processing/fast_blur_deluxe.php

package mask

const maxFeatherRadius = 254

var mulTable = [...]uint64{
	512, 512, 456, 512, 328, 456, 335, 512, 405, 328, 271, 456, 388, 335, 292, 512,
	454, 405, 364, 328, 298, 271, 496, 456, 420, 388, 360, 335, 312, 292, 273, 512,
	482, 454, 428, 405, 383, 364, 345, 328, 312, 298, 284, 271, 259, 496, 475, 456,
	437, 420, 404, 388, 374, 360, 347, 335, 323, 312, 302, 292, 282, 273, 265, 512,
	497, 482, 468, 454, 441, 428, 417, 405, 394, 383, 373, 364, 354, 345, 337, 328,
	320, 312, 305, 298, 291, 284, 278, 271, 265, 259, 507, 496, 485, 475, 465, 456,
	446, 437, 428, 420, 412, 404, 396, 388, 381, 374, 367, 360, 354, 347, 341, 335,
	329, 323, 318, 312, 307, 302, 297, 292, 287, 282, 278, 273, 269, 265, 261, 512,
	505, 497, 489, 482, 475, 468, 461, 454, 447, 441, 435, 428, 422, 417, 411, 405,
	399, 394, 389, 383, 378, 373, 368, 364, 359, 354, 350, 345, 341, 337, 332, 328,
	324, 320, 316, 312, 309, 305, 301, 298, 294, 291, 287, 284, 281, 278, 274, 271,
	268, 265, 262, 259, 257, 507, 501, 496, 491, 485, 480, 475, 470, 465, 460, 456,
	451, 446, 442, 437, 433, 428, 424, 420, 416, 412, 408, 404, 400, 396, 392, 388,
	385, 381, 377, 374, 370, 367, 363, 360, 357, 354, 350, 347, 344, 341, 338, 335,
	332, 329, 326, 323, 320, 318, 315, 312, 310, 307, 304, 302, 299, 297, 294, 292,
	289, 287, 285, 282, 280, 278, 275, 273, 271, 269, 267, 265, 263, 261, 259,
}

var shgTable = [...]uint64{
	9, 11, 12, 13, 13, 14, 14, 15, 15, 15, 15, 16, 16, 16, 16, 17,
	17, 17, 17, 17, 17, 17, 18, 18, 18, 18, 18, 18, 18, 18, 18, 19,
	19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 20, 20, 20,
	20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 21,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 22, 22, 22, 22, 22, 22,
	22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22,
	22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
}

// Feather softens the edges of m by running a stack blur of the given radius
// over its coverage. The result is always an ALPHA mask with the same pitch;
// binary values are expanded to full coverage before blurring.
func Feather(m *Mask, radius int) *Mask {
	out := &Mask{Type: Alpha, Data: make([]uint8, len(m.Data)), Pitch: m.Pitch}
	for i, v := range m.Data {
		out.Data[i] = m.Coverage(v)
	}
	w, h := m.Pitch, m.Height()
	if radius < 1 || w == 0 || h == 0 {
		return out
	}
	radius = min(radius, maxFeatherRadius)

	stack := make([]uint64, 2*radius+1)
	line := make([]uint8, max(w, h))
	// Horizontal pass: each row is addressed with stride 1.
	for y := 0; y < h; y++ {
		blurLine(out.Data, line, y*w, 1, w, radius, stack)
	}
	// Vertical pass: each column is addressed with stride w.
	for x := 0; x < w; x++ {
		blurLine(out.Data, line, x, w, h, radius, stack)
	}
	return out
}

// blurLine blurs n values of data starting at offset start and spaced by
// stride. The values are first copied into line so the output can be written
// in place. The stack slice is the circular buffer of the 2*radius+1 window.
func blurLine(data, line []uint8, start, stride, n, radius int, stack []uint64) {
	var sum, inSum, outSum uint64

	div := len(stack)
	last := n - 1
	mul, shg := mulTable[radius], shgTable[radius]

	for i := 0; i < n; i++ {
		line[i] = data[start+i*stride]
	}
	at := func(i int) uint64 {
		return uint64(line[min(max(i, 0), last)])
	}

	for i := -radius; i <= radius; i++ {
		p := at(i)
		stack[i+radius] = p
		weight := uint64(radius + 1 - abs(i))
		sum += p * weight
		if i > 0 {
			inSum += p
		} else {
			outSum += p
		}
	}

	sp := radius
	for i := 0; i < n; i++ {
		data[start+i*stride] = uint8(min((sum*mul)>>shg, 255))

		sum -= outSum
		slot := (sp - radius + div) % div
		outSum -= stack[slot]

		p := at(i + radius + 1)
		stack[slot] = p
		inSum += p
		sum += inSum

		sp = (sp + 1) % div
		p = stack[sp]
		outSum += p
		inSum -= p
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
