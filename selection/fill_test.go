package selection

import (
	"testing"

	"github.com/esimov/pixcomp/mask"
	"github.com/esimov/pixcomp/pixel"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = pixel.Pack(255, 255, 255, 255)
	black = pixel.Pack(0, 0, 0, 255)
)

func filled(w, h int, c pixel.Color32) *pixel.Buffer {
	buf := pixel.NewBuffer(w, h)
	buf.Fill(c)
	return buf
}

func TestFloodFill_NoDiagonalLeak(t *testing.T) {
	buf := filled(3, 3, white)
	buf.Set(1, 0, black)
	buf.Set(0, 1, black)
	buf.Set(2, 1, black)
	buf.Set(1, 2, black)

	res := FloodFill(buf, Options{X: 1, Y: 1, Contiguous: true})
	require.NotNil(t, res)
	assert.Equal(t, pixel.Rect{X: 1, Y: 1, W: 1, H: 1}, res.Rect)
	assert.Equal(t, []uint8{1}, res.Mask.Data)
	assert.Equal(t, []pixel.Color32{white}, res.Pixels.Pix)
}

func TestFloodFill_StopsAtBarrier(t *testing.T) {
	buf := filled(10, 10, white)
	for x := 0; x < 10; x++ {
		buf.Set(x, 5, black)
	}

	res := FloodFill(buf, Options{Contiguous: true})
	require.NotNil(t, res)
	assert.Equal(t, pixel.Rect{W: 10, H: 5}, res.Rect)
	assert.Equal(t, mask.Binary, res.Mask.Type)
	for _, v := range res.Mask.Data {
		assert.Equal(t, uint8(1), v)
	}

	res = FloodFill(buf, Options{X: 3, Y: 5, Contiguous: true})
	require.NotNil(t, res)
	assert.Equal(t, pixel.Rect{Y: 5, W: 10, H: 1}, res.Rect)
}

func TestFloodFill_NonContiguous(t *testing.T) {
	buf := pixel.NewBuffer(4, 1)
	copy(buf.Pix, []pixel.Color32{white, black, white, black})

	res := FloodFill(buf, Options{})
	require.NotNil(t, res)
	assert.Equal(t, pixel.Rect{W: 3, H: 1}, res.Rect)
	if diff := cmp.Diff([]uint8{1, 0, 1}, res.Mask.Data); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]pixel.Color32{white, pixel.Transparent, white}, res.Pixels.Pix); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}

	res = FloodFill(buf, Options{Contiguous: true})
	require.NotNil(t, res)
	assert.Equal(t, pixel.Rect{W: 1, H: 1}, res.Rect)
}

func TestFloodFill_Tolerance(t *testing.T) {
	base := pixel.Pack(10, 0, 0, 255)
	near := pixel.Pack(13, 4, 0, 255)
	assert.Equal(t, 25, Distance(base, near))
	assert.Equal(t, 25, Distance(near, base))
	assert.Equal(t, 0, Distance(base, base))
	assert.Equal(t, 4*255*255, Distance(white, pixel.Transparent))

	buf := pixel.NewBuffer(2, 1)
	copy(buf.Pix, []pixel.Color32{base, near})

	res := FloodFill(buf, Options{Tolerance: 25, Contiguous: true})
	require.NotNil(t, res)
	assert.Equal(t, 2, res.W)

	res = FloodFill(buf, Options{Tolerance: 24, Contiguous: true})
	require.NotNil(t, res)
	assert.Equal(t, 1, res.W)

	res = FloodFill(buf, Options{Tolerance: -10})
	require.NotNil(t, res)
	assert.Equal(t, 1, res.W)
}

func TestFloodFill_Bounds(t *testing.T) {
	assert := assert.New(t)
	buf := filled(10, 10, white)

	res := FloodFill(buf, Options{X: 3, Y: 3, Bounds: &pixel.Rect{X: 2, Y: 2, W: 3, H: 3}, Contiguous: true})
	assert.NotNil(res)
	assert.Equal(pixel.Rect{X: 2, Y: 2, W: 3, H: 3}, res.Rect)
	assert.Equal(3, res.Pixels.Width)

	res = FloodFill(buf, Options{Bounds: &pixel.Rect{X: -5, Y: -5, W: 8, H: 8}})
	assert.NotNil(res)
	assert.Equal(pixel.Rect{W: 3, H: 3}, res.Rect)

	// Seed outside the buffer or the bounds.
	assert.Nil(FloodFill(buf, Options{X: 10, Y: 0}))
	assert.Nil(FloodFill(buf, Options{X: -1, Y: 0, Contiguous: true}))
	assert.Nil(FloodFill(buf, Options{X: 0, Y: 0, Bounds: &pixel.Rect{X: 2, Y: 2, W: 3, H: 3}}))

	// Degenerate bounds.
	assert.Nil(FloodFill(buf, Options{Bounds: &pixel.Rect{}}))
	assert.Nil(FloodFill(buf, Options{Bounds: &pixel.Rect{X: 20, Y: 20, W: 5, H: 5}}))
	assert.Nil(FloodFill(pixel.NewBuffer(0, 0), Options{}))
	assert.Nil(FloodFill(nil, Options{}))
}
