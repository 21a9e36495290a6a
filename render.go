package hues

import "fmt"

// Escape-sequence boundary for text-formatting layers. Only the SGR
// parameters and the background flag are exposed; callers never reach
// into the palette internals.

const (
	sgrForeground = 38
	sgrBackground = 48
)

// Sequence returns the color's SGR parameters, e.g. "38;5;196" for a
// foreground color or "48;5;196" for a background one.
func (c *Color) Sequence() string {
	mode := sgrForeground
	if c.bg {
		mode = sgrBackground
	}
	return fmt.Sprintf("%d;5;%d", mode, uint8(c.ansi))
}

// Sprint wraps text in the color's escape sequence followed by a reset.
func (c *Color) Sprint(text string) string {
	return "\x1b[" + c.Sequence() + "m" + text + "\x1b[0m"
}

// String renders a colorized diagnostic line: index, RGB and HSV views.
func (c *Color) String() string {
	return c.Sprint(fmt.Sprintf("%3d | %s | %s", uint8(c.ansi), c.RGB(), c.HSV()))
}
