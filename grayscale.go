package pixcomp

import "github.com/esimov/pixcomp/pixel"

// grayscale returns the luminance of every pixel as a one dimensional array.
func grayscale(buf *pixel.Buffer) []uint8 {
	gray := make([]uint8, len(buf.Pix))
	for i, c := range buf.Pix {
		gray[i] = uint8(pixel.Luma(c))
	}
	return gray
}

// threshold converts a coverage mask into a black and white pixel buffer,
// where uncovered pixels are fully transparent.
func threshold(cov []uint8, width, height int) *pixel.Buffer {
	dst := pixel.NewBuffer(width, height)
	for i, v := range cov[:width*height] {
		if v > 127 {
			dst.Pix[i] = pixel.Pack(0xff, 0xff, 0xff, 0xff)
		}
	}
	return dst
}
