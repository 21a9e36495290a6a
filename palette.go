package hues

import "math"

// Fixed partition of the 256-entry palette:
//
//	0-15    sixteen system colors (pass-through RGB table)
//	16-231  6x6x6 color cube, index = 16 + 36*r + 6*g + b, r,g,b in [0,5]
//	232-255 24-step grayscale ramp, level = 8 + 10*(index-232)

// cubeValues is the non-linear intensity ramp of the color cube axes.
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// systemRGB holds the conventional RGB of the sixteen system colors.
var systemRGB = [16]RGB{
	{0, 0, 0},
	{128, 0, 0},
	{0, 128, 0},
	{128, 128, 0},
	{0, 0, 128},
	{128, 0, 128},
	{0, 128, 128},
	{192, 192, 192},
	{128, 128, 128},
	{255, 0, 0},
	{0, 255, 0},
	{255, 255, 0},
	{0, 0, 255},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
}

const (
	cubeStart = 16
	grayStart = 232
)

// CubeIndex returns the palette index for a cube coordinate.
// r, g, b must be in [0,5]; values outside are clamped.
func CubeIndex(r, g, b uint8) Bit8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return Bit8(cubeStart + 36*r + 6*g + b)
}

// GrayIndex returns the palette index for a grayscale step.
// step must be in [0,23]; values outside are clamped.
func GrayIndex(step uint8) Bit8 {
	if step > 23 {
		step = 23
	}
	return Bit8(grayStart + step)
}

// ansiRGB decomposes a palette index into its fixed RGB value.
func ansiRGB(index Bit8) RGB {
	switch {
	case index < cubeStart:
		return systemRGB[index]
	case index >= grayStart:
		s := Bit8(8 + 10*(int(index)-grayStart))
		return RGB{R: s, G: s, B: s}
	default:
		n := int(index) - cubeStart
		b := n % 6
		g := n / 6 % 6
		r := n / 36 % 6
		return RGB{
			R: Bit8(cubeValues[r]),
			G: Bit8(cubeValues[g]),
			B: Bit8(cubeValues[b]),
		}
	}
}

// paletteHSV returns the snapped palette view of an index: the hue as a
// multiple of 30 degrees (0 = achromatic, 360 = red), the saturation
// fraction and the value.
//
// The arithmetic deliberately follows the classic max/min formulation
// step for step, with round-half-to-even at the sector snap: twelve cube
// entries sit exactly between two sectors and their assignment defines
// which hue owns them.
func paletteHSV(index Bit8) (h int, s float64, v int) {
	rgb := ansiRGB(index)
	r, g, b := float64(rgb.R), float64(rgb.G), float64(rgb.B)
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	v = int(maxc)
	if maxc == minc {
		return 0, 0, v
	}
	s = (maxc - minc) / maxc
	rc := (maxc - r) / (maxc - minc)
	gc := (maxc - g) / (maxc - minc)
	bc := (maxc - b) / (maxc - minc)
	var hf float64
	switch maxc {
	case r:
		hf = bc - gc
	case g:
		hf = 2.0 + rc - bc
	default:
		hf = 4.0 + gc - rc
	}
	hf = math.Mod(hf/6.0, 1.0)
	if hf < 0 {
		hf++
	}
	h = 30 * int(math.RoundToEven(360.0*hf/30.0))
	if h > 360 {
		h = 30
	}
	if h == 0 {
		h = 360
	}
	return h, s, v
}
