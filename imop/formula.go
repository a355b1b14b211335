package imop

import (
	"github.com/esimov/pixcomp/pixel"
	"github.com/esimov/pixcomp/utils"
)

// channelFunc computes the full opacity result of a separable blend mode
// for one channel. Both inputs and the result are in the 0-255 range.
type channelFunc func(s, d int32) int32

// separable applies a per channel formula to the RGB channels of src and dst
// and composites the result over dst using the source alpha.
func separable[R rounding](src, dst pixel.Color32, f channelFunc) pixel.Color32 {
	sa := src.A()
	if sa == 0 {
		return dst
	}
	sr, sg, sb, _ := src.Channels()
	dr, dg, db, _ := dst.Channels()
	return mix[R](
		f(int32(sr), int32(dr)),
		f(int32(sg), int32(dg)),
		f(int32(sb), int32(db)),
		dst, int32(sa),
	)
}

// mix composites the blended RGB triple over dst. An opaque source stores the
// blended value as is; otherwise every channel, alpha included, is
// interpolated between dst and the blended value, whose alpha is 255.
func mix[R rounding](br, bg, bb int32, dst pixel.Color32, sa int32) pixel.Color32 {
	if sa == 255 {
		return pixel.Pack(uint8(br), uint8(bg), uint8(bb), 255)
	}
	var r R
	dr, dg, db, da := dst.Channels()
	return pixel.Pack(
		uint8(r.lerp(br, int32(dr), sa)),
		uint8(r.lerp(bg, int32(dg), sa)),
		uint8(r.lerp(bb, int32(db), sa)),
		uint8(r.lerp(255, int32(da), sa)),
	)
}

// byLuma picks either the whole src or the whole dst RGB triple, whichever
// the pick function prefers by luminance, and composites it over dst.
func byLuma[R rounding](src, dst pixel.Color32, pickSrc func(ls, ld int) bool) pixel.Color32 {
	sa := src.A()
	if sa == 0 {
		return dst
	}
	c := dst
	if pickSrc(pixel.Luma(src), pixel.Luma(dst)) {
		c = src
	}
	r, g, b, _ := c.Channels()
	return mix[R](int32(r), int32(g), int32(b), dst, int32(sa))
}

func clamp255(v int32) int32 {
	return utils.Clamp(v, 0, 255)
}

func sourceOver[R rounding](s, d int32) int32 {
	return s
}

func darken[R rounding](s, d int32) int32 {
	return utils.Min(s, d)
}

func multiply[R rounding](s, d int32) int32 {
	var r R
	return r.div255(s * d)
}

func colorBurn[R rounding](s, d int32) int32 {
	if s == 0 {
		return 0
	}
	return clamp255(255 - (255-d)*255/s)
}

func linearBurn[R rounding](s, d int32) int32 {
	return clamp255(s + d - 255)
}

func lighten[R rounding](s, d int32) int32 {
	return utils.Max(s, d)
}

func screen[R rounding](s, d int32) int32 {
	var r R
	return clamp255(s + d - r.div255(s*d))
}

func colorDodge[R rounding](s, d int32) int32 {
	if s == 255 {
		return 255
	}
	return clamp255(d * 255 / (255 - s))
}

func linearDodge[R rounding](s, d int32) int32 {
	return clamp255(s + d)
}

func overlay[R rounding](s, d int32) int32 {
	var r R
	if d < 128 {
		return clamp255(r.div255(2 * s * d))
	}
	return clamp255(255 - r.div255(2*(255-s)*(255-d)))
}

// softLight uses the pegtop formula (1-2s)d² + 2sd. The inner term is an
// exact integer quotient shared by both tiers so only one tiered division
// remains on the output path.
func softLight[R rounding](s, d int32) int32 {
	var r R
	return clamp255(r.div255(d*d + 2*s*(d*(255-d)/255)))
}

func hardLight[R rounding](s, d int32) int32 {
	var r R
	if s < 128 {
		return clamp255(r.div255(2 * s * d))
	}
	return clamp255(255 - r.div255(2*(255-s)*(255-d)))
}

// vividLight burns with 2s below the midpoint and dodges with 2(s-128)
// above it, guarding both divisions at the channel extremes.
func vividLight[R rounding](s, d int32) int32 {
	if s < 128 {
		if s == 0 {
			return 0
		}
		return clamp255(255 - (255-d)*255/(2*s))
	}
	if s == 255 {
		return 255
	}
	return clamp255(d * 255 / (2 * (255 - s)))
}

func linearLight[R rounding](s, d int32) int32 {
	return clamp255(d + 2*s - 255)
}

func pinLight[R rounding](s, d int32) int32 {
	if s < 128 {
		return utils.Min(d, 2*s)
	}
	return utils.Max(d, 2*s-255)
}

func hardMix[R rounding](s, d int32) int32 {
	if vividLight[R](s, d) < 128 {
		return 0
	}
	return 255
}

func difference[R rounding](s, d int32) int32 {
	return utils.Abs(s - d)
}

func exclusion[R rounding](s, d int32) int32 {
	var r R
	return clamp255(s + d - r.div255(2*s*d))
}

func subtract[R rounding](s, d int32) int32 {
	return clamp255(d - s)
}

func divide[R rounding](s, d int32) int32 {
	if s == 0 {
		return 255
	}
	return clamp255(d * 255 / s)
}

func darker(ls, ld int) bool  { return ls < ld }
func lighter(ls, ld int) bool { return ls > ld }
