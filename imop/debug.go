//go:build pixdebug

package imop

import "fmt"

const debug = true

// assertMask panics when the clipped region addresses values outside the mask.
func assertMask(o *Options) {
	m := o.Mask
	if m == nil {
		return
	}
	if m.Pitch <= 0 || o.MX < 0 || o.MY < 0 || o.MX+o.W > m.Pitch {
		panic(fmt.Sprintf("imop: mask %dx%d cannot address region %dx%d at (%d,%d)",
			m.Pitch, m.Height(), o.W, o.H, o.MX, o.MY))
	}
	if last := (o.MY+o.H-1)*m.Pitch + o.MX + o.W; last > len(m.Data) {
		panic(fmt.Sprintf("imop: %v mask of %d values too short for region ending at %d",
			m.Type, len(m.Data), last))
	}
}
