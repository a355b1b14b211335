package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath_Generics(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(int32(7), Abs(int32(-7)))
	assert.Equal(0.5, Abs(-0.5))

	assert.Equal(0, Clamp(-3, 0, 255))
	assert.Equal(255, Clamp(300, 0, 255))
	assert.Equal(128, Clamp(128, 0, 255))
}
