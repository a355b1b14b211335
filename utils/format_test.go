package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_ParseHexColor(t *testing.T) {
	assert := assert.New(t)

	r, g, b, a, err := ParseHexColor("#ff8000")
	assert.NoError(err)
	assert.Equal([]uint8{0xff, 0x80, 0x00, 0xff}, []uint8{r, g, b, a})

	r, g, b, a, err = ParseHexColor("0f08")
	assert.Error(err)

	r, g, b, a, err = ParseHexColor("#fff")
	assert.NoError(err)
	assert.Equal([]uint8{0xff, 0xff, 0xff, 0xff}, []uint8{r, g, b, a})

	r, g, b, a, err = ParseHexColor("10203040")
	assert.NoError(err)
	assert.Equal([]uint8{0x10, 0x20, 0x30, 0x40}, []uint8{r, g, b, a})

	_, _, _, _, err = ParseHexColor("#zzzzzz")
	assert.Error(err)
}

func TestFormat_ParsePoint(t *testing.T) {
	assert := assert.New(t)

	x, y, err := ParsePoint("12, 7")
	assert.NoError(err)
	assert.Equal(12, x)
	assert.Equal(7, y)

	_, _, err = ParsePoint("12")
	assert.Error(err)
	_, _, err = ParsePoint("a,1")
	assert.Error(err)
}

func TestFormat_ParseRect(t *testing.T) {
	assert := assert.New(t)

	x, y, w, h, err := ParseRect("1, 2,30 ,40")
	assert.NoError(err)
	assert.Equal([]int{1, 2, 30, 40}, []int{x, y, w, h})

	_, _, _, _, err = ParseRect("1,2,3")
	assert.Error(err)
	_, _, _, _, err = ParseRect("1,2,3,d")
	assert.Error(err)
}

func TestFormat_Misc(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(125*time.Second))
	assert.Equal(ErrorColor+"boom"+DefaultColor, DecorateText("boom", ErrorMessage))
	assert.True(Contains([]string{"a", "b"}, "b"))
	assert.False(Contains([]int{1, 2}, 3))
}
