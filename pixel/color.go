// Package pixel defines the packed pixel representation shared by the
// compositing, mask and selection packages.
//
// A Color32 stores four straight (non-premultiplied) 8-bit channels in a
// single unsigned 32-bit word with the layout R(0-7) G(8-15) B(16-23) A(24-31).
package pixel

import "image/color"

// Color32 is a packed RGBA color.
type Color32 uint32

// Transparent is the fully transparent black pixel.
const Transparent Color32 = 0

// Pack packs the four channels into a Color32.
func Pack(r, g, b, a uint8) Color32 {
	return Color32(r) | Color32(g)<<8 | Color32(b)<<16 | Color32(a)<<24
}

// R returns the red channel.
func (c Color32) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color32) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color32) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color32) A() uint8 { return uint8(c >> 24) }

// Channels unpacks the color into its four channels.
func (c Color32) Channels() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color32) WithAlpha(a uint8) Color32 {
	return c&0x00ffffff | Color32(a)<<24
}

// NRGBA converts the packed value to the standard library color type.
func (c Color32) NRGBA() color.NRGBA {
	r, g, b, a := c.Channels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts any color.Color to a straight alpha Color32.
func FromColor(c color.Color) Color32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.R, n.G, n.B, n.A)
}

// Luma returns the integer weighted luminance of c using the
// 77/151/28 weights on a 256 scale. The alpha channel is ignored.
func Luma(c Color32) int {
	r, g, b, _ := c.Channels()
	return (int(r)*77 + int(g)*151 + int(b)*28) >> 8
}
