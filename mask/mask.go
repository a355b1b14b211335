// Package mask implements coverage masks and the mask algebra used by the
// compositing pipeline and the selection tools.
//
// A mask is a flat byte buffer addressed with its own pitch, so it can be
// positioned independently from the pixel buffers it gates. ALPHA masks carry
// a soft 0-255 coverage, BINARY masks a hard zero / non-zero gate.
package mask

import "github.com/esimov/pixcomp/pixel"

// Type tells how the values of a mask are interpreted.
type Type int

const (
	// Alpha masks hold a 0-255 coverage weight per pixel.
	Alpha Type = iota
	// Binary masks hold a 0 / non-zero on-off gate per pixel.
	Binary
)

func (t Type) String() string {
	switch t {
	case Alpha:
		return "alpha"
	case Binary:
		return "binary"
	}
	return "unknown"
}

// Mask is a coverage buffer. Pitch is the row stride of Data and may be
// larger than the logical width of the region the mask is used with.
type Mask struct {
	Type  Type
	Data  []uint8
	Pitch int
}

// New allocates a cleared mask of the given size with Pitch == width.
func New(t Type, width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		Type:  t,
		Data:  make([]uint8, width*height),
		Pitch: width,
	}
}

// Height returns the number of complete rows held by the mask.
func (m *Mask) Height() int {
	if m.Pitch <= 0 {
		return 0
	}
	return len(m.Data) / m.Pitch
}

// Bounds returns the extent addressable through At and Set.
func (m *Mask) Bounds() pixel.Rect {
	return pixel.Rect{W: m.Pitch, H: m.Height()}
}

// At returns the value at (x, y), zero outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Pitch || y >= m.Height() {
		return 0
	}
	return m.Data[y*m.Pitch+x]
}

// Set stores v at (x, y). Writes outside the mask are ignored.
func (m *Mask) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= m.Pitch || y >= m.Height() {
		return
	}
	m.Data[y*m.Pitch+x] = v
}

// Coverage returns the effective 0-255 coverage of a raw mask value.
// Binary values are expanded to 0 or 255.
func (m *Mask) Coverage(v uint8) uint8 {
	if m.Type == Binary && v != 0 {
		return 255
	}
	return v
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	data := make([]uint8, len(m.Data))
	copy(data, m.Data)
	return &Mask{Type: m.Type, Data: data, Pitch: m.Pitch}
}

// Invert complements the mask in place according to its type.
func (m *Mask) Invert() {
	if m.Type == Binary {
		InvertBinary(m.Data)
		return
	}
	InvertAlpha(m.Data)
}

// Selection describes a non-rectangular region: its bounding rectangle
// and a mask, sized to the rectangle, telling which pixels are selected.
type Selection struct {
	pixel.Rect
	Mask *Mask
}

// Empty reports whether the selection covers no pixel.
func (s *Selection) Empty() bool {
	return s == nil || s.Rect.Empty() || s.Mask == nil
}
