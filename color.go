package hues

import "fmt"

// Color is one addressable palette cell plus a foreground/background
// flag. The RGB/HSV views and the hue name are pure functions of the
// stored index. Mutating operators re-resolve the index through the
// owning hue's table and either fully succeed or leave the Color
// untouched. Concurrent mutation of one instance must be serialized by
// the caller.
type Color struct {
	ansi Bit8
	bg   bool
}

// New creates a Color from a palette index in [0,255].
func New(index int) (*Color, error) {
	ansi, err := NewBit8(index)
	if err != nil {
		return nil, fmt.Errorf("palette index: %w", err)
	}
	return &Color{ansi: ansi}, nil
}

// Parse creates a Color from a numeric palette-index string.
func Parse(s string) (*Color, error) {
	ansi, err := ParseBit8(s)
	if err != nil {
		return nil, fmt.Errorf("palette index: %w", err)
	}
	return &Color{ansi: ansi}, nil
}

// Copy duplicates the color's index and background flag.
func (c *Color) Copy() *Color {
	dup := *c
	return &dup
}

// ANSI returns the palette index.
func (c *Color) ANSI() Bit8 {
	return c.ansi
}

// RGB returns the fixed RGB decomposition of the palette index.
func (c *Color) RGB() RGB {
	return ansiRGB(c.ansi)
}

// HSV returns the snapped palette view: the hue angle is a multiple of
// 30° (0° for achromatic cells, 360° for red).
func (c *Color) HSV() HSV {
	h, s, v := paletteHSV(c.ansi)
	return HSV{H: Degree(h), S: Percent(s * 100), V: Bit8(v)}
}

// HueName returns the name of the hue sector the color belongs to, or
// "Grey" for achromatic cells.
func (c *Color) HueName() string {
	return nameOf[c.ansi]
}

// Background reports whether the color renders as a background.
func (c *Color) Background() bool {
	return c.bg
}

// SetBackground marks the color for background rendering. The stored
// index is unaffected.
func (c *Color) SetBackground(bg bool) {
	c.bg = bg
}

// Equal reports whether both colors address the same palette cell with
// the same background flag.
func (c *Color) Equal(other *Color) bool {
	return other != nil && c.ansi == other.ansi && c.bg == other.bg
}

// point locates the color on the wheel, or fails with ErrRange for the
// system colors and the brightest grayscale tail, which have no
// (hue, level, saturation) coordinates.
func (c *Color) point() (position, error) {
	pos := positions[c.ansi]
	if !pos.valid {
		return pos, fmt.Errorf("palette index %d has no wheel position: %w",
			uint8(c.ansi), ErrRange)
	}
	return pos, nil
}

// resolve commits a new wheel coordinate, preserving the background flag.
func (c *Color) resolve(hue int, level, sat uint8) {
	c.ansi = wheel[hue].table[level][sat]
}

// RotateForward re-resolves the color n sectors ahead on the twelve-point
// wheel, wrapping modulo twelve and keeping the current brightness and
// saturation position. Achromatic colors rotate as if at the Red sector.
func (c *Color) RotateForward(n int) error {
	return c.rotate(n, false)
}

// RotateBackward re-resolves the color n sectors back on the wheel.
func (c *Color) RotateBackward(n int) error {
	return c.rotate(n, true)
}

func (c *Color) rotate(n int, backward bool) error {
	if n < 0 {
		return fmt.Errorf("rotation amount must not be negative, got %d: %w", n, ErrRange)
	}
	pos, err := c.point()
	if err != nil {
		return err
	}
	step := n % 12
	if backward {
		step = (12 - step) % 12
	}
	at := int(pos.hue)
	if at == hueGrey {
		if step == 0 {
			return nil
		}
		at = hueRed
	}
	c.resolve((at+step)%12, pos.level, pos.sat)
	return nil
}

// Brighten moves the color's brightness level toward 5, saturating at
// the boundary.
func (c *Color) Brighten(n int) error {
	return c.shiftLevel(n, false)
}

// Darken moves the color's brightness level toward 0, saturating at the
// boundary.
func (c *Color) Darken(n int) error {
	return c.shiftLevel(n, true)
}

func (c *Color) shiftLevel(n int, down bool) error {
	if n < 0 {
		return fmt.Errorf("brightness amount must not be negative, got %d: %w", n, ErrRange)
	}
	pos, err := c.point()
	if err != nil {
		return err
	}
	level := int(pos.level)
	if down {
		level -= n
		if level < levelMin {
			level = levelMin
		}
	} else {
		level += n
		if level > levelMax {
			level = levelMax
		}
	}
	c.resolve(int(pos.hue), uint8(level), pos.sat)
	return nil
}

// Saturate moves the color's saturation level toward 9, saturating at
// the boundary.
func (c *Color) Saturate(n int) error {
	return c.shiftSat(n, false)
}

// Desaturate moves the color's saturation level toward 1, saturating at
// the boundary.
func (c *Color) Desaturate(n int) error {
	return c.shiftSat(n, true)
}

func (c *Color) shiftSat(n int, down bool) error {
	if n < 0 {
		return fmt.Errorf("saturation amount must not be negative, got %d: %w", n, ErrRange)
	}
	pos, err := c.point()
	if err != nil {
		return err
	}
	sat := int(pos.sat)
	if down {
		sat += n // higher index is duller
		if sat > satMax-1 {
			sat = satMax - 1
		}
	} else {
		sat -= n
		if sat < 0 {
			sat = 0
		}
	}
	c.resolve(int(pos.hue), pos.level, uint8(sat))
	return nil
}
