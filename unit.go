package hues

import (
	"fmt"
	"strconv"
	"strings"
)

// Guarded scalar types. Each validates on construction so that illegal
// ranges are unrepresentable once a value exists.

// Bit8 is an 8-bit intensity or palette index in [0,255].
type Bit8 uint8

// NewBit8 validates v as an 8-bit value.
func NewBit8(v int) (Bit8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("bit8 value must be 0-255, got %d: %w", v, ErrRange)
	}
	return Bit8(v), nil
}

// ParseBit8 parses a numeric string into a Bit8.
func ParseBit8(s string) (Bit8, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bit8 value must be convertible to int, got %q: %w", s, ErrFormat)
	}
	return NewBit8(n)
}

// Invert returns the bitwise complement (255 - v) without mutating.
func (b Bit8) Invert() Bit8 {
	return 255 - b
}

// Degree is a color-wheel angle in [0,360].
type Degree uint16

// NewDegree validates v as a wheel angle.
func NewDegree(v int) (Degree, error) {
	if v < 0 || v > 360 {
		return 0, fmt.Errorf("degree value must be 0-360, got %d: %w", v, ErrRange)
	}
	return Degree(v), nil
}

// ParseDegree parses a numeric string into a Degree.
func ParseDegree(s string) (Degree, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("degree value must be convertible to int, got %q: %w", s, ErrFormat)
	}
	return NewDegree(n)
}

func (d Degree) String() string {
	return fmt.Sprintf("%d°", uint16(d))
}

// Percent is a ratio in [0,100].
type Percent float64

// NewPercent validates v as a percentage.
func NewPercent(v float64) (Percent, error) {
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("percent value must be 0-100, got %v: %w", v, ErrRange)
	}
	return Percent(v), nil
}

// ParsePercent parses a numeric string into a Percent.
func ParsePercent(s string) (Percent, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("percent value must be convertible to float, got %q: %w", s, ErrFormat)
	}
	return NewPercent(f)
}

// PercentFromFraction builds a Percent from its fractional form in [0,1].
func PercentFromFraction(f float64) (Percent, error) {
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("fraction must be 0-1, got %v: %w", f, ErrRange)
	}
	return Percent(f * 100), nil
}

// Fraction returns the fractional form (value / 100).
func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}
