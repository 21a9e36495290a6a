package hues

import "sort"

// The registry is built once at package init and never mutated afterward,
// so unsynchronized concurrent reads are safe.

const (
	levelMin = 0
	levelMax = 5
	satMin   = 1
	satMax   = 9
)

// levelAmounts maps a brightness level to its cube-ramp value.
var levelAmounts = [levelMax + 1]int{0, 95, 135, 175, 215, 255}

// Wheel order: the twelve chromatic hues by ascending angle starting at
// Red (360° wraps to position 0), then Grey.
const (
	hueRed = iota
	hueOrange
	hueYellow
	hueLime
	hueGreen
	hueTurquoise
	hueTeal
	hueCyan
	hueBlue
	huePurple
	hueMagenta
	hueRose
	hueGrey
	hueCount
)

var hueNames = [hueCount]string{
	"Red", "Orange", "Yellow", "Lime", "Green", "Turquoise",
	"Teal", "Cyan", "Blue", "Purple", "Magenta", "Rose", "Grey",
}

// hueIndex maps a snapped angle (multiple of 30, 0 = achromatic,
// 360 = red) to its wheel position.
func hueIndex(deg int) int {
	if deg == 0 {
		return hueGrey
	}
	return deg / 30 % 12
}

// position locates a palette index inside its owning hue's table.
type position struct {
	hue   uint8
	level uint8
	sat   uint8 // saturation index 0 (most vivid) .. 8 (most dull)
	valid bool
}

var (
	wheel     [hueCount]*Hue
	positions [256]position
	nameOf    [256]string
)

// Registered hues, read-only after init.
var (
	Red       *Hue
	Orange    *Hue
	Yellow    *Hue
	Lime      *Hue
	Green     *Hue
	Turquoise *Hue
	Teal      *Hue
	Cyan      *Hue
	Blue      *Hue
	Purple    *Hue
	Magenta   *Hue
	Rose      *Hue
	Grey      *Hue
)

// Hues returns all registered hues: the twelve chromatic hues in wheel
// order, then Grey. The returned slice is a fresh copy.
func Hues() []*Hue {
	out := make([]*Hue, hueCount)
	copy(out, wheel[:])
	return out
}

// Lookup returns the hue registered under name.
func Lookup(name string) (*Hue, bool) {
	for _, h := range wheel {
		if h.name == name {
			return h, true
		}
	}
	return nil, false
}

// White returns Grey's brightest, most desaturated color (index 231).
func White() *Color {
	c, _ := Grey.Color(5, 1)
	return c
}

// Black returns Grey's darkest, most saturated color (index 16).
func Black() *Color {
	c, _ := Grey.Color(1, 9)
	return c
}

func init() {
	buildSpectrum()
	Red = wheel[hueRed]
	Orange = wheel[hueOrange]
	Yellow = wheel[hueYellow]
	Lime = wheel[hueLime]
	Green = wheel[hueGreen]
	Turquoise = wheel[hueTurquoise]
	Teal = wheel[hueTeal]
	Cyan = wheel[hueCyan]
	Blue = wheel[hueBlue]
	Purple = wheel[huePurple]
	Magenta = wheel[hueMagenta]
	Rose = wheel[hueRose]
	Grey = wheel[hueGrey]
}

// buildSpectrum derives the hue resolution tables from the fixed palette.
//
// Indices 16-254 are bucketed by (snapped hue, value level). Achromatic
// entries and entries whose value falls between cube-ramp levels are
// distributed across Grey's levels by proximity. Each bucket is then
// ordered by saturation, most vivid first, and padded to nine entries so
// every (level, saturation) request resolves. Indices 0-15 and 253-255
// gain no position: the system colors and the brightest ramp tail are
// addressable but not part of the wheel.
func buildSpectrum() {
	levelOf := map[int]uint8{}
	for l, a := range levelAmounts {
		levelOf[a] = uint8(l)
	}

	var buckets [hueCount][levelMax + 1][]Bit8
	var shades []Bit8
	for i := cubeStart; i < 255; i++ {
		idx := Bit8(i)
		h, _, v := paletteHSV(idx)
		if l, ok := levelOf[v]; ok && v != 0 {
			buckets[hueIndex(h)][l] = append(buckets[hueIndex(h)][l], idx)
		} else {
			shades = append(shades, idx)
		}
	}

	// Distribute the off-ramp shades across Grey's levels, nearest level
	// first, keeping each bucket ordered dark to light.
	for l := levelMax; l >= 1; l-- {
		hi, lo := levelAmounts[l], levelAmounts[l-1]
		var sel []Bit8
		for _, s := range shades {
			_, _, v := paletteHSV(s)
			if v+40 > lo && v+40 < hi {
				sel = append(sel, s)
			}
		}
		sort.SliceStable(sel, func(i, j int) bool {
			_, _, vi := paletteHSV(sel[i])
			_, _, vj := paletteHSV(sel[j])
			return vi > vj
		})
		lst := append(buckets[hueGrey][l], sel...)
		for i, j := 0, len(lst)-1; i < j; i, j = i+1, j-1 {
			lst[i], lst[j] = lst[j], lst[i]
		}
		buckets[hueGrey][l] = lst
	}

	// Order every bucket most vivid first and pad to the saturation width.
	for h := range buckets {
		for l := range buckets[h] {
			lst := buckets[h][l]
			if len(lst) == 0 {
				continue
			}
			sort.SliceStable(lst, func(i, j int) bool {
				_, si, _ := paletteHSV(lst[i])
				_, sj, _ := paletteHSV(lst[j])
				return si > sj
			})
			for len(lst) < satMax {
				lst = append(lst, lst[len(lst)-1])
			}
			buckets[h][l] = lst
		}
	}

	// Record each index's first occurrence as its wheel position.
	for h := range buckets {
		for l := range buckets[h] {
			for s, idx := range buckets[h][l] {
				if !positions[idx].valid {
					positions[idx] = position{
						hue:   uint8(h),
						level: uint8(l),
						sat:   uint8(s),
						valid: true,
					}
				}
			}
		}
	}

	// Materialize resolution tables. A level with no palette entries for
	// a hue resolves to the next level up, so level 0 is always the
	// darkest available variant.
	for h := range wheel {
		deg := 30 * h
		switch h {
		case hueRed:
			deg = 360
		case hueGrey:
			deg = 0
		}
		hue := &Hue{name: hueNames[h], degree: Degree(deg)}
		for l := levelMax; l >= levelMin; l-- {
			src := buckets[h][l]
			if len(src) == 0 {
				hue.table[l] = hue.table[l+1]
				continue
			}
			for s := 0; s < satMax; s++ {
				hue.table[l][s] = src[s]
			}
		}
		wheel[h] = hue
	}

	for i := range nameOf {
		h, _, _ := paletteHSV(Bit8(i))
		nameOf[i] = hueNames[hueIndex(h)]
	}
}
