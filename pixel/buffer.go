package pixel

// Rect is an axis aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no pixel.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.Right() && y < r.Bottom()
}

// Intersect returns the largest rectangle contained by both r and s.
// A non-overlapping pair yields a zero sized rectangle.
func (r Rect) Intersect(s Rect) Rect {
	x0, y0 := max(r.X, s.X), max(r.Y, s.Y)
	x1, y1 := min(r.Right(), s.Right()), min(r.Bottom(), s.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Buffer is a row-major, tightly packed image of Color32 pixels.
// Its row stride always equals Width.
type Buffer struct {
	Width  int
	Height int
	Pix    []Color32
}

// NewBuffer allocates a transparent buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]Color32, width*height),
	}
}

// Bounds returns the buffer extent.
func (b *Buffer) Bounds() Rect {
	return Rect{W: b.Width, H: b.Height}
}

// At returns the pixel at (x, y), or Transparent outside the buffer.
func (b *Buffer) At(x, y int) Color32 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Transparent
	}
	return b.Pix[y*b.Width+x]
}

// Set writes the pixel at (x, y). Writes outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c Color32) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = c
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color32) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}
