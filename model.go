package hues

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an additive color model built from guarded scalars.
type RGB struct {
	R, G, B Bit8
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%3d, %3d, %3d)", uint8(c.R), uint8(c.G), uint8(c.B))
}

// HSV converts to the hue/saturation/value model. Achromatic inputs
// (R=G=B) map to H=0°, S=0%.
func (c RGB) HSV() HSV {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, v := col.Hsv()
	return HSV{
		H: Degree(math.Round(h)),
		S: Percent(s * 100),
		V: Bit8(math.Round(v * 255)),
	}
}

// HSV is a perceptual color model built from guarded scalars.
type HSV struct {
	H Degree
	S Percent
	V Bit8
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%4s, %s, %3d)", c.H, c.S, uint8(c.V))
}

// RGB converts back to the additive model via the standard inverse
// sector formula. S=0 yields R=G=B=V.
func (c HSV) RGB() RGB {
	h := math.Mod(float64(c.H), 360)
	col := colorful.Hsv(h, c.S.Fraction(), float64(c.V)/255)
	r, g, b := col.RGB255()
	return RGB{R: Bit8(r), G: Bit8(g), B: Bit8(b)}
}
