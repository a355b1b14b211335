package mask

import (
	"testing"

	"github.com/esimov/pixcomp/pixel"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func filled(w, h int, v uint8) []uint8 {
	data := make([]uint8, w*h)
	for i := range data {
		data[i] = v
	}
	return data
}

func TestMask_Basic(t *testing.T) {
	assert := assert.New(t)

	m := New(Alpha, 4, 3)
	assert.Equal(4, m.Pitch)
	assert.Equal(3, m.Height())
	assert.Equal(pixel.Rect{W: 4, H: 3}, m.Bounds())

	m.Set(3, 2, 200)
	m.Set(4, 2, 200) // outside
	assert.Equal(uint8(200), m.At(3, 2))
	assert.Equal(uint8(0), m.At(-1, 0))
	assert.Equal(uint8(200), m.Data[11])

	c := m.Clone()
	c.Set(3, 2, 1)
	assert.Equal(uint8(200), m.At(3, 2))
	assert.Equal(Alpha, c.Type)

	b := New(Binary, 1, 1)
	assert.Equal(uint8(0), b.Coverage(0))
	assert.Equal(uint8(255), b.Coverage(1))
	assert.Equal(uint8(17), m.Coverage(17))
	assert.Equal("binary", Binary.String())
}

func TestMask_Mul(t *testing.T) {
	assert := assert.New(t)

	for v := 0; v < 256; v++ {
		assert.Equal(uint8(v), Mul(255, uint8(v)))
		assert.Equal(uint8(v), Mul(uint8(v), 255))
		assert.Equal(uint8(0), Mul(0, uint8(v)))
	}
	assert.Equal(uint8(64), Mul(128, 128))
}

func TestMerge_OpaqueDestinationEqualsSource(t *testing.T) {
	const w, h = 5, 4
	// The source is wider than the merged region to exercise the pitch.
	src := &Mask{Type: Alpha, Pitch: 7, Data: make([]uint8, 7*h)}
	for i := range src.Data {
		src.Data[i] = uint8(i * 37)
	}
	dst := filled(w, h, 255)

	Merge(dst, w, src, MergeOptions{W: w, H: h, Alpha: 255})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got, want := dst[y*w+x], src.At(x, y); got != want {
				t.Fatalf("merge (%d,%d): got %d want %d", x, y, got, want)
			}
		}
	}
}

func TestMerge_Intersect(t *testing.T) {
	assert := assert.New(t)

	dst := []uint8{
		255, 128, 0,
		64, 200, 255,
	}
	src := &Mask{Type: Alpha, Pitch: 3, Data: []uint8{
		255, 255, 255,
		128, 0, 100,
	}}
	Merge(dst, 3, src, MergeOptions{W: 3, H: 2, Alpha: 255})
	assert.Equal([]uint8{255, 128, 0, 32, 0, 100}, dst)

	// Global alpha scales the weight with the same rounding.
	dst = filled(2, 1, 255)
	src = &Mask{Type: Alpha, Pitch: 2, Data: []uint8{255, 128}}
	Merge(dst, 2, src, MergeOptions{W: 2, H: 1, Alpha: 128})
	assert.Equal([]uint8{128, 64}, dst)

	// Zero alpha merges nothing, the same as a zero alpha blit.
	dst = filled(2, 1, 200)
	Merge(dst, 2, src, MergeOptions{W: 2, H: 1})
	assert.Equal(filled(2, 1, 200), dst)
	Merge(dst, 2, src, NewMergeOptions(2, 1))
	assert.Equal([]uint8{200, 100}, dst)
}

func TestMerge_BinaryGate(t *testing.T) {
	assert := assert.New(t)

	dst := []uint8{10, 20, 30, 40}
	src := &Mask{Type: Binary, Pitch: 4, Data: []uint8{0, 1, 7, 0}}
	Merge(dst, 4, src, MergeOptions{W: 4, H: 1, Alpha: 255})
	assert.Equal([]uint8{0, 20, 30, 0}, dst)

	dst = []uint8{10, 20, 30, 40}
	Merge(dst, 4, src, MergeOptions{W: 4, H: 1, Invert: true, Alpha: 255})
	assert.Equal([]uint8{10, 0, 0, 40}, dst)
}

func TestMerge_Clipping(t *testing.T) {
	assert := assert.New(t)

	// 3x3 destination, 2x2 zero source placed at (-1,-1): only (0,0) is merged.
	dst := filled(3, 3, 255)
	src := New(Alpha, 2, 2)
	Merge(dst, 3, src, MergeOptions{X: -1, Y: -1, W: 2, H: 2, Alpha: 255})
	assert.Equal([]uint8{0, 255, 255, 255, 255, 255, 255, 255, 255}, dst)

	// Source placed past the right edge: only the first column fits.
	dst = filled(3, 3, 255)
	Merge(dst, 3, src, MergeOptions{X: 2, Y: 1, W: 2, H: 2, Alpha: 255})
	assert.Equal([]uint8{255, 255, 255, 255, 255, 0, 255, 255, 0}, dst)

	// Degenerate regions are no-ops.
	dst = filled(3, 3, 255)
	Merge(dst, 3, src, MergeOptions{W: 0, H: 2, Alpha: 255})
	Merge(dst, 3, src, MergeOptions{X: 5, W: 2, H: 2, Alpha: 255})
	Merge(dst, 3, nil, MergeOptions{W: 2, H: 2, Alpha: 255})
	assert.Equal(filled(3, 3, 255), dst)
}

func TestInvert_Involution(t *testing.T) {
	assert := assert.New(t)

	bin := []uint8{0, 1, 1, 0, 1}
	orig := append([]uint8(nil), bin...)
	InvertBinary(bin)
	assert.Equal([]uint8{1, 0, 0, 1, 0}, bin)
	InvertBinary(bin)
	assert.Equal(orig, bin)

	alpha := make([]uint8, 256)
	for i := range alpha {
		alpha[i] = uint8(i)
	}
	orig = append([]uint8(nil), alpha...)
	InvertAlpha(alpha)
	assert.Equal(uint8(255), alpha[0])
	assert.Equal(uint8(0), alpha[255])
	InvertAlpha(alpha)
	for i := range alpha {
		assert.InDelta(int(orig[i]), int(alpha[i]), 1)
	}

	m := &Mask{Type: Binary, Pitch: 2, Data: []uint8{0, 5}}
	m.Invert()
	assert.Equal([]uint8{1, 0}, m.Data)
}

func TestExtract(t *testing.T) {
	m := &Mask{Type: Binary, Pitch: 3, Data: []uint8{
		1, 2, 3,
		4, 5, 6,
	}}

	got := Extract(m, pixel.Rect{X: 1, Y: 0, W: 2, H: 2})
	want := &Mask{Type: Binary, Pitch: 2, Data: []uint8{2, 3, 5, 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extract inside (-want +got):\n%s", diff)
	}

	// Partially outside: zero filled.
	got = Extract(m, pixel.Rect{X: -1, Y: 1, W: 3, H: 2})
	want = &Mask{Type: Binary, Pitch: 3, Data: []uint8{0, 4, 5, 0, 0, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extract outside (-want +got):\n%s", diff)
	}

	got = Extract(m, pixel.Rect{X: 10, Y: 10, W: 2, H: 1})
	assert.Equal(t, []uint8{0, 0}, got.Data)
}

func TestExtentAndTrim(t *testing.T) {
	assert := assert.New(t)

	m := &Mask{Type: Binary, Pitch: 4, Data: []uint8{
		0, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}}
	assert.Equal(pixel.Rect{X: 1, Y: 1, W: 2, H: 2}, Extent(m))
	assert.True(Extent(New(Alpha, 3, 3)).Empty())

	sel := &Selection{Rect: pixel.Rect{X: 10, Y: 20, W: 4, H: 3}, Mask: m}
	trimmed := Trim(sel, pixel.Rect{W: 100, H: 100})
	assert.Equal(pixel.Rect{X: 11, Y: 21, W: 2, H: 2}, trimmed.Rect)
	assert.Equal([]uint8{1, 0, 0, 1}, trimmed.Mask.Data)
	assert.Equal(Binary, trimmed.Mask.Type)

	// Clipping away the set pixel at (12,22) leaves only (11,21).
	trimmed = Trim(sel, pixel.Rect{W: 12, H: 22})
	assert.Equal(pixel.Rect{X: 11, Y: 21, W: 1, H: 1}, trimmed.Rect)
	assert.Equal([]uint8{1}, trimmed.Mask.Data)

	// No set bits left: zero sized.
	trimmed = Trim(sel, pixel.Rect{W: 11, H: 100})
	assert.True(trimmed.Empty())
	assert.Equal(0, trimmed.W)
	assert.Equal(0, trimmed.H)

	trimmed = Trim(sel, pixel.Rect{X: 50, Y: 50, W: 2, H: 2})
	assert.True(trimmed.Empty())
}

func TestFeather(t *testing.T) {
	assert := assert.New(t)

	full := &Mask{Type: Alpha, Pitch: 8, Data: filled(8, 8, 255)}
	out := Feather(full, 3)
	assert.Equal(Alpha, out.Type)
	assert.Equal(full.Data, out.Data)

	// Left half covered, right half empty.
	half := New(Binary, 20, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			half.Set(x, y, 1)
		}
	}
	out = Feather(half, 2)
	assert.Equal(Alpha, out.Type)
	assert.Equal(Binary, half.Type)
	assert.Equal(uint8(1), half.At(0, 0))
	for y := 0; y < 6; y++ {
		assert.Equal(uint8(255), out.At(0, y))
		assert.Equal(uint8(170), out.At(9, y))
		assert.Equal(uint8(85), out.At(10, y))
		assert.Equal(uint8(0), out.At(19, y))
	}

	same := Feather(half, 0)
	assert.Equal(uint8(255), same.At(0, 0))
	assert.Equal(uint8(0), same.At(10, 0))
}

func TestOutline(t *testing.T) {
	assert := assert.New(t)

	m := New(Binary, 9, 9)
	for y := 3; y < 6; y++ {
		for x := 3; x < 6; x++ {
			m.Set(x, y, 1)
		}
	}
	out := Outline(m, 0)
	assert.Equal(Alpha, out.Type)
	// Flat areas have no gradient.
	assert.Equal(uint8(0), out.At(0, 0))
	assert.Equal(uint8(0), out.At(4, 4))
	// The border of the square is detected on both sides of the edge.
	assert.Equal(uint8(255), out.At(3, 4))
	assert.Equal(uint8(255), out.At(2, 4))
	assert.Equal(uint8(255), out.At(6, 4))

	// A high threshold suppresses everything below it.
	out = Outline(m, 255)
	assert.Equal(make([]uint8, 81), out.Data)
}
