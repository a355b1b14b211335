package imop

import (
	"github.com/esimov/pixcomp/mask"
	"github.com/esimov/pixcomp/pixel"
)

// Options describes a single compositing operation.
//
// The W x H region is written at (X, Y) in the destination and read from
// (SX, SY) in the source. The optional mask is addressed with its own pitch,
// starting at (MX, MY) for the top-left pixel of the region.
type Options struct {
	X, Y   int
	SX, SY int
	W, H   int

	Mask       *mask.Mask
	MX, MY     int
	InvertMask bool

	// Alpha is the global opacity. Zero draws nothing.
	Alpha uint8
	// Blend defaults to the fast source-over function when nil.
	Blend Func
}

// NewOptions returns fully opaque source-over options for a w x h region.
func NewOptions(w, h int) Options {
	return Options{W: w, H: h, Alpha: 255, Blend: fastSourceOver}
}

// clip restricts the region to the part covered by the destination and, when
// given, the source buffer. A negative offset on either side shrinks the
// region and moves the counterpart offsets, mask included, by the same delta.
func (o *Options) clip(dst, src *pixel.Buffer) bool {
	if o.X < 0 {
		o.W += o.X
		o.SX -= o.X
		o.MX -= o.X
		o.X = 0
	}
	if o.Y < 0 {
		o.H += o.Y
		o.SY -= o.Y
		o.MY -= o.Y
		o.Y = 0
	}
	if src != nil {
		if o.SX < 0 {
			o.W += o.SX
			o.X -= o.SX
			o.MX -= o.SX
			o.SX = 0
		}
		if o.SY < 0 {
			o.H += o.SY
			o.Y -= o.SY
			o.MY -= o.SY
			o.SY = 0
		}
		o.W = min(o.W, src.Width-o.SX)
		o.H = min(o.H, src.Height-o.SY)
	}
	// Source offsets may have pushed the region further into dst.
	o.W = min(o.W, dst.Width-o.X)
	o.H = min(o.H, dst.Height-o.Y)
	return o.W > 0 && o.H > 0
}

// weight returns the coverage of the mask value at index i combined with the
// global alpha. Zero means the pixel is skipped.
func (o *Options) weight(i int) uint8 {
	if o.Mask == nil {
		return o.Alpha
	}
	v := o.Mask.Data[i]
	if o.Mask.Type == mask.Binary {
		if (v != 0) == o.InvertMask {
			return 0
		}
		return o.Alpha
	}
	if o.InvertMask {
		v = 255 - v
	}
	if v == 0 {
		return 0
	}
	return mask.Mul(v, o.Alpha)
}

func (o *Options) blend() Func {
	if o.Blend == nil {
		return fastSourceOver
	}
	return o.Blend
}

func (o *Options) maskPitch() int {
	if o.Mask == nil {
		return 0
	}
	return o.Mask.Pitch
}

// Blit composites the src buffer into dst in place.
func Blit(dst, src *pixel.Buffer, opt Options) {
	if dst == nil || src == nil || opt.Alpha == 0 {
		return
	}
	if !opt.clip(dst, src) {
		return
	}
	if debug {
		assertMask(&opt)
	}

	var (
		blend  = opt.blend()
		mpitch = opt.maskPitch()
		di     = opt.Y*dst.Width + opt.X
		si     = opt.SY*src.Width + opt.SX
		mi     = opt.MY*mpitch + opt.MX
	)
	for y := 0; y < opt.H; y++ {
		for x := 0; x < opt.W; x++ {
			w := opt.weight(mi + x)
			if w == 0 {
				continue
			}
			s := src.Pix[si+x]
			if w != 255 {
				s = s.WithAlpha(mask.Mul(s.A(), w))
			}
			dst.Pix[di+x] = blend(s, dst.Pix[di+x])
		}
		di += dst.Width
		si += src.Width
		mi += mpitch
	}
}

// Fill composites the solid color c into dst in place. The source offsets
// of opt are ignored.
func Fill(dst *pixel.Buffer, c pixel.Color32, opt Options) {
	if dst == nil || opt.Alpha == 0 {
		return
	}
	if !opt.clip(dst, nil) {
		return
	}
	if debug {
		assertMask(&opt)
	}

	var (
		blend  = opt.blend()
		mpitch = opt.maskPitch()
		di     = opt.Y*dst.Width + opt.X
		mi     = opt.MY*mpitch + opt.MX
	)
	for y := 0; y < opt.H; y++ {
		for x := 0; x < opt.W; x++ {
			w := opt.weight(mi + x)
			if w == 0 {
				continue
			}
			s := c
			if w != 255 {
				s = c.WithAlpha(mask.Mul(c.A(), w))
			}
			dst.Pix[di+x] = blend(s, dst.Pix[di+x])
		}
		di += dst.Width
		mi += mpitch
	}
}

// Extract copies the pixels of buf covered by the selection into a new
// buffer sized to the selection rectangle. Unselected pixels stay transparent.
func Extract(buf *pixel.Buffer, sel *mask.Selection) *pixel.Buffer {
	if sel.Empty() {
		return pixel.NewBuffer(0, 0)
	}
	out := pixel.NewBuffer(sel.W, sel.H)
	Blit(out, buf, Options{
		SX:    sel.X,
		SY:    sel.Y,
		W:     sel.W,
		H:     sel.H,
		Mask:  sel.Mask,
		Alpha: 255,
		Blend: fastOverwrite,
	})
	return out
}
