package imop

import "github.com/esimov/pixcomp/pixel"

// Every mode has one named entry point per tier so that the registry can map
// a function value back to its mode and tier.

func fastOverwrite(src, dst pixel.Color32) pixel.Color32 {
	return src
}

func fastSourceOver(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, sourceOver[fastRounding])
}

func fastDarken(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, darken[fastRounding])
}

func fastMultiply(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, multiply[fastRounding])
}

func fastColorBurn(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, colorBurn[fastRounding])
}

func fastLinearBurn(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, linearBurn[fastRounding])
}

func fastDarkerColor(src, dst pixel.Color32) pixel.Color32 {
	return byLuma[fastRounding](src, dst, darker)
}

func fastLighten(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, lighten[fastRounding])
}

func fastScreen(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, screen[fastRounding])
}

func fastColorDodge(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, colorDodge[fastRounding])
}

func fastLinearDodge(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, linearDodge[fastRounding])
}

func fastLighterColor(src, dst pixel.Color32) pixel.Color32 {
	return byLuma[fastRounding](src, dst, lighter)
}

func fastOverlay(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, overlay[fastRounding])
}

func fastSoftLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, softLight[fastRounding])
}

func fastHardLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, hardLight[fastRounding])
}

func fastVividLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, vividLight[fastRounding])
}

func fastLinearLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, linearLight[fastRounding])
}

func fastPinLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, pinLight[fastRounding])
}

func fastHardMix(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, hardMix[fastRounding])
}

func fastDifference(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, difference[fastRounding])
}

func fastExclusion(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, exclusion[fastRounding])
}

func fastSubtract(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, subtract[fastRounding])
}

func fastDivide(src, dst pixel.Color32) pixel.Color32 {
	return separable[fastRounding](src, dst, divide[fastRounding])
}

func perfectOverwrite(src, dst pixel.Color32) pixel.Color32 {
	return src
}

func perfectSourceOver(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, sourceOver[perfectRounding])
}

func perfectDarken(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, darken[perfectRounding])
}

func perfectMultiply(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, multiply[perfectRounding])
}

func perfectColorBurn(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, colorBurn[perfectRounding])
}

func perfectLinearBurn(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, linearBurn[perfectRounding])
}

func perfectDarkerColor(src, dst pixel.Color32) pixel.Color32 {
	return byLuma[perfectRounding](src, dst, darker)
}

func perfectLighten(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, lighten[perfectRounding])
}

func perfectScreen(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, screen[perfectRounding])
}

func perfectColorDodge(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, colorDodge[perfectRounding])
}

func perfectLinearDodge(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, linearDodge[perfectRounding])
}

func perfectLighterColor(src, dst pixel.Color32) pixel.Color32 {
	return byLuma[perfectRounding](src, dst, lighter)
}

func perfectOverlay(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, overlay[perfectRounding])
}

func perfectSoftLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, softLight[perfectRounding])
}

func perfectHardLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, hardLight[perfectRounding])
}

func perfectVividLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, vividLight[perfectRounding])
}

func perfectLinearLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, linearLight[perfectRounding])
}

func perfectPinLight(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, pinLight[perfectRounding])
}

func perfectHardMix(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, hardMix[perfectRounding])
}

func perfectDifference(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, difference[perfectRounding])
}

func perfectExclusion(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, exclusion[perfectRounding])
}

func perfectSubtract(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, subtract[perfectRounding])
}

func perfectDivide(src, dst pixel.Color32) pixel.Color32 {
	return separable[perfectRounding](src, dst, divide[perfectRounding])
}

var registry = [numModes][numTiers]Func{
	Overwrite:    {fastOverwrite, perfectOverwrite},
	SourceOver:   {fastSourceOver, perfectSourceOver},
	Darken:       {fastDarken, perfectDarken},
	Multiply:     {fastMultiply, perfectMultiply},
	ColorBurn:    {fastColorBurn, perfectColorBurn},
	LinearBurn:   {fastLinearBurn, perfectLinearBurn},
	DarkerColor:  {fastDarkerColor, perfectDarkerColor},
	Lighten:      {fastLighten, perfectLighten},
	Screen:       {fastScreen, perfectScreen},
	ColorDodge:   {fastColorDodge, perfectColorDodge},
	LinearDodge:  {fastLinearDodge, perfectLinearDodge},
	LighterColor: {fastLighterColor, perfectLighterColor},
	Overlay:      {fastOverlay, perfectOverlay},
	SoftLight:    {fastSoftLight, perfectSoftLight},
	HardLight:    {fastHardLight, perfectHardLight},
	VividLight:   {fastVividLight, perfectVividLight},
	LinearLight:  {fastLinearLight, perfectLinearLight},
	PinLight:     {fastPinLight, perfectPinLight},
	HardMix:      {fastHardMix, perfectHardMix},
	Difference:   {fastDifference, perfectDifference},
	Exclusion:    {fastExclusion, perfectExclusion},
	Subtract:     {fastSubtract, perfectSubtract},
	Divide:       {fastDivide, perfectDivide},
}
