package tint

import "github.com/arthur-debert/termtint/pkg/sgr"

// Named foreground colors. Each formats its arguments and wraps the result
// in the corresponding fixed SGR code via Applyf.

// Black formats its arguments in black.
func (c *Context) Black(format string, args ...any) string {
	return c.Applyf(sgr.Black, format, args...)
}

// Red formats its arguments in red.
func (c *Context) Red(format string, args ...any) string {
	return c.Applyf(sgr.Red, format, args...)
}

// Green formats its arguments in green.
func (c *Context) Green(format string, args ...any) string {
	return c.Applyf(sgr.Green, format, args...)
}

// Yellow formats its arguments in yellow.
func (c *Context) Yellow(format string, args ...any) string {
	return c.Applyf(sgr.Yellow, format, args...)
}

// Blue formats its arguments in blue.
func (c *Context) Blue(format string, args ...any) string {
	return c.Applyf(sgr.Blue, format, args...)
}

// Magenta formats its arguments in magenta.
func (c *Context) Magenta(format string, args ...any) string {
	return c.Applyf(sgr.Magenta, format, args...)
}

// Cyan formats its arguments in cyan.
func (c *Context) Cyan(format string, args ...any) string {
	return c.Applyf(sgr.Cyan, format, args...)
}

// White formats its arguments in white.
func (c *Context) White(format string, args ...any) string {
	return c.Applyf(sgr.White, format, args...)
}

// Named background colors.

// BgBlack formats its arguments on a black background.
func (c *Context) BgBlack(format string, args ...any) string {
	return c.Applyf(sgr.BgBlack, format, args...)
}

// BgRed formats its arguments on a red background.
func (c *Context) BgRed(format string, args ...any) string {
	return c.Applyf(sgr.BgRed, format, args...)
}

// BgGreen formats its arguments on a green background.
func (c *Context) BgGreen(format string, args ...any) string {
	return c.Applyf(sgr.BgGreen, format, args...)
}

// BgYellow formats its arguments on a yellow background.
func (c *Context) BgYellow(format string, args ...any) string {
	return c.Applyf(sgr.BgYellow, format, args...)
}

// BgBlue formats its arguments on a blue background.
func (c *Context) BgBlue(format string, args ...any) string {
	return c.Applyf(sgr.BgBlue, format, args...)
}

// BgMagenta formats its arguments on a magenta background.
func (c *Context) BgMagenta(format string, args ...any) string {
	return c.Applyf(sgr.BgMagenta, format, args...)
}

// BgCyan formats its arguments on a cyan background.
func (c *Context) BgCyan(format string, args ...any) string {
	return c.Applyf(sgr.BgCyan, format, args...)
}

// BgWhite formats its arguments on a white background.
func (c *Context) BgWhite(format string, args ...any) string {
	return c.Applyf(sgr.BgWhite, format, args...)
}

// Text attributes.

// Bold formats its arguments in bold.
func (c *Context) Bold(format string, args ...any) string {
	return c.Applyf(sgr.Bold, format, args...)
}

// Italic formats its arguments in italic.
func (c *Context) Italic(format string, args ...any) string {
	return c.Applyf(sgr.Italic, format, args...)
}

// Underline formats its arguments underlined.
func (c *Context) Underline(format string, args ...any) string {
	return c.Applyf(sgr.Underline, format, args...)
}

// Computed colors.

// RGB formats its arguments in a 24-bit foreground color.
func (c *Context) RGB(r, g, b uint8, format string, args ...any) string {
	return c.Applyf(sgr.RGB(r, g, b), format, args...)
}

// BgRGB formats its arguments on a 24-bit background color.
func (c *Context) BgRGB(r, g, b uint8, format string, args ...any) string {
	return c.Applyf(sgr.BgRGB(r, g, b), format, args...)
}

// HSL formats its arguments in an HSL-specified foreground color.
func (c *Context) HSL(h, s, l float64, format string, args ...any) string {
	return c.Applyf(sgr.HSL(h, s, l), format, args...)
}

// BgHSL formats its arguments on an HSL-specified background color.
func (c *Context) BgHSL(h, s, l float64, format string, args ...any) string {
	return c.Applyf(sgr.BgHSL(h, s, l), format, args...)
}

// HSV formats its arguments in an HSV-specified foreground color.
func (c *Context) HSV(h, s, v float64, format string, args ...any) string {
	return c.Applyf(sgr.HSV(h, s, v), format, args...)
}

// BgHSV formats its arguments on an HSV-specified background color.
func (c *Context) BgHSV(h, s, v float64, format string, args ...any) string {
	return c.Applyf(sgr.BgHSV(h, s, v), format, args...)
}
