package hues

import (
	"fmt"
	"strings"
)

// Hue is one named tone of the color wheel, or the achromatic Grey
// family, together with every brightness/saturation variation the
// palette provides for it. Hue instances are registry singletons and
// must not be mutated.
type Hue struct {
	name   string
	degree Degree

	// table resolves (brightness level, saturation index) to a palette
	// index. Row 0 duplicates the darkest populated level.
	table [levelMax + 1][satMax]Bit8
}

// Name returns the hue's registered name.
func (h *Hue) Name() string {
	return h.name
}

// Degree returns the hue's angle on the color wheel. Grey reports 0°.
func (h *Hue) Degree() Degree {
	return h.degree
}

// Achromatic reports whether the hue is the grayscale family.
func (h *Hue) Achromatic() bool {
	return h.degree == 0
}

// Color resolves a brightness level (0-5, 5 brightest) and saturation
// level (1-9, 9 most vivid) to a fresh foreground Color. Arguments
// outside their domains fail with ErrRange before any resolution.
func (h *Hue) Color(level, saturation int) (*Color, error) {
	if level < levelMin || level > levelMax {
		return nil, fmt.Errorf("%s: level must be %d-%d, got %d: %w",
			h.name, levelMin, levelMax, level, ErrRange)
	}
	if saturation < satMin || saturation > satMax {
		return nil, fmt.Errorf("%s: saturation must be %d-%d, got %d: %w",
			h.name, satMin, satMax, saturation, ErrRange)
	}
	return &Color{ansi: h.table[level][satMax-saturation]}, nil
}

// BackgroundColor resolves like Color with the background flag set.
func (h *Hue) BackgroundColor(level, saturation int) (*Color, error) {
	c, err := h.Color(level, saturation)
	if err != nil {
		return nil, err
	}
	c.bg = true
	return c, nil
}

// Default returns the hue's canonical color: full brightness, full
// saturation.
func (h *Hue) Default() *Color {
	return &Color{ansi: h.table[levelMax][0]}
}

// Grid renders the hue's full swatch table, one row per brightness
// level (brightest first), one column per saturation level (most vivid
// first), each cell colorized with its own palette index.
func (h *Hue) Grid() string {
	var b strings.Builder
	b.WriteString(h.Default().Sprint(h.name + " (row=level, column=saturation)"))
	b.WriteString("\n\n    ")
	for sat := satMax; sat >= satMin; sat-- {
		fmt.Fprintf(&b, "(%d) ", sat)
	}
	b.WriteByte('\n')
	for level := levelMax; level >= 1; level-- {
		fmt.Fprintf(&b, "(%d) ", level)
		for s := 0; s < satMax; s++ {
			cell := Color{ansi: h.table[level][s]}
			b.WriteString(cell.Sprint(fmt.Sprintf("%3d", uint8(cell.ansi))))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
