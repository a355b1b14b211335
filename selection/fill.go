// Package selection grows pixel selections from a seed point.
package selection

import (
	"github.com/esimov/pixcomp/imop"
	"github.com/esimov/pixcomp/mask"
	"github.com/esimov/pixcomp/pixel"
)

// Options configures a flood fill.
type Options struct {
	// X and Y is the seed point.
	X, Y int
	// Tolerance is the largest squared color distance accepted, see Distance.
	Tolerance int
	// Bounds restricts the fill. Nil means the whole buffer.
	Bounds *pixel.Rect
	// Contiguous grows the selection through 4-connected neighbours only.
	// Otherwise every matching pixel of the bounds is selected.
	Contiguous bool
}

// Result is the outcome of a successful flood fill.
type Result struct {
	mask.Selection
	// Pixels holds the selected pixels, cut to the selection rectangle.
	Pixels *pixel.Buffer
}

type point struct {
	x, y int
}

// Distance returns the squared color distance between a and b summed over
// the four channels.
func Distance(a, b pixel.Color32) int {
	ar, ag, ab, aa := a.Channels()
	br, bg, bb, ba := b.Channels()
	dr := int(ar) - int(br)
	dg := int(ag) - int(bg)
	db := int(ab) - int(bb)
	da := int(aa) - int(ba)
	return dr*dr + dg*dg + db*db + da*da
}

// FloodFill selects the pixels of buf matching the color under the seed.
// It returns nil when the seed lies outside the effective bounds or
// nothing could be selected.
func FloodFill(buf *pixel.Buffer, opt Options) *Result {
	if buf == nil {
		return nil
	}
	area := buf.Bounds()
	if opt.Bounds != nil {
		area = area.Intersect(*opt.Bounds)
	}
	if area.Empty() || !area.Contains(opt.X, opt.Y) {
		return nil
	}
	opt.Tolerance = max(opt.Tolerance, 0)

	var matches []point
	if opt.Contiguous {
		matches = grow(buf, area, opt)
	} else {
		matches = scan(buf, area, opt)
	}
	if len(matches) == 0 {
		return nil
	}

	x0, y0, x1, y1 := area.Right(), area.Bottom(), area.X-1, area.Y-1
	for _, p := range matches {
		x0, x1 = min(x0, p.x), max(x1, p.x)
		y0, y1 = min(y0, p.y), max(y1, p.y)
	}
	rect := pixel.Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
	m := mask.New(mask.Binary, rect.W, rect.H)
	for _, p := range matches {
		m.Data[(p.y-rect.Y)*m.Pitch+p.x-rect.X] = 1
	}

	sel := mask.Trim(&mask.Selection{Rect: rect, Mask: m}, buf.Bounds())
	if sel.Empty() {
		return nil
	}
	return &Result{
		Selection: *sel,
		Pixels:    imop.Extract(buf, sel),
	}
}

// grow walks the 4-connected region around the seed with an explicit stack.
func grow(buf *pixel.Buffer, area pixel.Rect, opt Options) []point {
	seed := buf.At(opt.X, opt.Y)
	visited := make([]bool, area.W*area.H)
	mark := func(x, y int) bool {
		i := (y-area.Y)*area.W + x - area.X
		if visited[i] {
			return false
		}
		visited[i] = true
		return true
	}

	var matches []point
	stack := []point{{opt.X, opt.Y}}
	mark(opt.X, opt.Y)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		matches = append(matches, p)

		for _, n := range [4]point{
			{p.x - 1, p.y},
			{p.x + 1, p.y},
			{p.x, p.y - 1},
			{p.x, p.y + 1},
		} {
			if !area.Contains(n.x, n.y) {
				continue
			}
			if Distance(buf.Pix[n.y*buf.Width+n.x], seed) > opt.Tolerance {
				continue
			}
			if mark(n.x, n.y) {
				stack = append(stack, n)
			}
		}
	}
	return matches
}

// scan collects every pixel of the area close enough to the seed color.
func scan(buf *pixel.Buffer, area pixel.Rect, opt Options) []point {
	seed := buf.At(opt.X, opt.Y)

	var matches []point
	for y := area.Y; y < area.Bottom(); y++ {
		row := buf.Pix[y*buf.Width : (y+1)*buf.Width]
		for x := area.X; x < area.Right(); x++ {
			if Distance(row[x], seed) <= opt.Tolerance {
				matches = append(matches, point{x, y})
			}
		}
	}
	return matches
}
