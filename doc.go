// Package hues addresses the xterm 256-color palette through named hues
// instead of raw indices or escape sequences.
//
// Every palette color belongs to one of twelve tones on the color wheel,
// or to the achromatic Grey family. A Hue represents one tone together
// with every brightness/saturation variation the palette provides for it.
// Resolving a hue at a brightness level (0-5) and saturation level (1-9)
// yields a Color: a single addressable palette cell that can render
// escape sequences, report its RGB/HSV views, and be rotated, brightened,
// darkened, saturated or desaturated while always remaining a valid cell.
//
// The hue/level/saturation lookup tables are built once at package init
// from the fixed palette partition (16 system colors, the 6x6x6 color
// cube over the ramp {0, 95, 135, 175, 215, 255}, and the 24-step
// grayscale ramp) and are safe for unsynchronized concurrent reads.
package hues
