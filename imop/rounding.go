package imop

// rounding is the strategy that separates the two precision tiers.
// Every blend formula is written once and instantiated with both strategies;
// they only differ in how a value scaled by 255 is brought back to 0-255.
type rounding interface {
	// div255 divides a non-negative product of two channels by 255.
	div255(x int32) int32
	// lerp interpolates from dst towards the blended value b with weight a/255.
	lerp(b, dst, a int32) int32
}

// fastRounding replaces the division by 255 with a shift by 8. The +255 bias
// keeps 255*255 mapping to 255; results drift by at most one step per division.
type fastRounding struct{}

func (fastRounding) div255(x int32) int32 {
	return (x + 255) >> 8
}

func (fastRounding) lerp(b, dst, a int32) int32 {
	return (b*a + dst*(255-a) + 255) >> 8
}

// perfectRounding divides by 255 exactly, rounding the final interpolation
// to the nearest integer.
type perfectRounding struct{}

func (perfectRounding) div255(x int32) int32 {
	return x / 255
}

func (perfectRounding) lerp(b, dst, a int32) int32 {
	return (b*a + dst*(255-a) + 127) / 255
}
