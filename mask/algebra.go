package mask

import "github.com/esimov/pixcomp/pixel"

// Mul multiplies two 0-255 coverage values with the rounding corrected
// (a*b+128)>>8 approximation. Full coverage on either side is an identity,
// so multiplying by 255 never loses precision.
func Mul(a, b uint8) uint8 {
	switch {
	case a == 255:
		return b
	case b == 255:
		return a
	}
	return uint8((uint32(a)*uint32(b) + 128) >> 8)
}

// MergeOptions positions the source mask over the destination.
// The region of W x H values starting at (X, Y) in the destination
// is intersected with the source values starting at (SX, SY).
type MergeOptions struct {
	X, Y   int
	SX, SY int
	W, H   int
	// Alpha scales the source coverage. Zero merges nothing.
	Alpha uint8
	// Invert complements the source values before merging.
	Invert bool
}

// NewMergeOptions returns unscaled options for a w x h region at the origin.
func NewMergeOptions(w, h int) MergeOptions {
	return MergeOptions{W: w, H: h, Alpha: 255}
}

// Merge intersects the ALPHA mask dst, addressed with dstPitch, with src.
// Both masks are treated as independent coverage layers: each destination
// value is multiplied by the source weight. A BINARY source acts as a hard
// gate: a zero value clears the destination, a non-zero one lets it through
// scaled by Alpha only. Values outside the clipped region are left untouched.
func Merge(dst []uint8, dstPitch int, src *Mask, opt MergeOptions) {
	if src == nil || dstPitch <= 0 || opt.Alpha == 0 {
		return
	}
	alpha := opt.Alpha

	x, y, sx, sy, w, h := opt.X, opt.Y, opt.SX, opt.SY, opt.W, opt.H
	if x < 0 {
		w, sx, x = w+x, sx-x, 0
	}
	if y < 0 {
		h, sy, y = h+y, sy-y, 0
	}
	if sx < 0 {
		w, x, sx = w+sx, x-sx, 0
	}
	if sy < 0 {
		h, y, sy = h+sy, y-sy, 0
	}
	w = min(w, dstPitch-x, src.Pitch-sx)
	h = min(h, len(dst)/dstPitch-y, src.Height()-sy)
	if w <= 0 || h <= 0 {
		return
	}

	di := y*dstPitch + x
	si := sy*src.Pitch + sx
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			v := src.Data[si+i]
			var weight uint8
			if src.Type == Binary {
				if (v == 0) != opt.Invert {
					dst[di+i] = 0
					continue
				}
				weight = alpha
			} else {
				if opt.Invert {
					v = 255 - v
				}
				weight = Mul(v, alpha)
			}
			dst[di+i] = Mul(dst[di+i], weight)
		}
		di += dstPitch
		si += src.Pitch
	}
}

// InvertBinary complements a binary mask in place: zero becomes one and
// every non-zero value becomes zero.
func InvertBinary(data []uint8) {
	for i, v := range data {
		if v == 0 {
			data[i] = 1
		} else {
			data[i] = 0
		}
	}
}

// InvertAlpha complements an alpha mask in place.
func InvertAlpha(data []uint8) {
	for i, v := range data {
		data[i] = 255 - v
	}
}

// Extract crops rect out of m into a freshly allocated mask of the same type.
// Parts of rect lying outside m are zero filled.
func Extract(m *Mask, rect pixel.Rect) *Mask {
	out := New(m.Type, rect.W, rect.H)
	if rect.Empty() {
		return out
	}
	src := rect.Intersect(m.Bounds())
	if src.Empty() {
		return out
	}
	for y := src.Y; y < src.Bottom(); y++ {
		si := y*m.Pitch + src.X
		di := (y-rect.Y)*out.Pitch + (src.X - rect.X)
		copy(out.Data[di:di+src.W], m.Data[si:si+src.W])
	}
	return out
}

// Extent returns the tightest rectangle enclosing every non-zero value of m.
// A mask without set values yields a zero sized rectangle.
func Extent(m *Mask) pixel.Rect {
	h := m.Height()
	x0, y0, x1, y1 := m.Pitch, h, -1, -1
	for y := 0; y < h; y++ {
		row := m.Data[y*m.Pitch : (y+1)*m.Pitch]
		for x, v := range row {
			if v == 0 {
				continue
			}
			x0, x1 = min(x0, x), max(x1, x)
			y0, y1 = min(y0, y), max(y1, y)
		}
	}
	if x1 < 0 {
		return pixel.Rect{}
	}
	return pixel.Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// Trim intersects the selection with bounds and shrinks it to the tightest
// extent of its remaining non-zero mask values. A selection left without
// set values collapses to a zero sized rectangle with an empty mask.
func Trim(sel *Selection, bounds pixel.Rect) *Selection {
	typ := Binary
	if sel.Mask != nil {
		typ = sel.Mask.Type
	}
	clipped := sel.Rect.Intersect(bounds)
	if clipped.Empty() || sel.Mask == nil {
		return &Selection{
			Rect: pixel.Rect{X: clipped.X, Y: clipped.Y},
			Mask: New(typ, 0, 0),
		}
	}

	cropped := Extract(sel.Mask, pixel.Rect{
		X: clipped.X - sel.X,
		Y: clipped.Y - sel.Y,
		W: clipped.W,
		H: clipped.H,
	})
	ext := Extent(cropped)
	if ext.Empty() {
		return &Selection{
			Rect: pixel.Rect{X: clipped.X, Y: clipped.Y},
			Mask: New(typ, 0, 0),
		}
	}
	return &Selection{
		Rect: pixel.Rect{X: clipped.X + ext.X, Y: clipped.Y + ext.Y, W: ext.W, H: ext.H},
		Mask: Extract(cropped, ext),
	}
}
