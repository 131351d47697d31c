// Package tint styles terminal text with ANSI SGR escape sequences and
// handles nested styling correctly: when a styled region ends, output
// resumes the enclosing style instead of falling back to a fixed default.
//
// The mechanism is a stack of active style codes held by a Context. Apply
// pushes a code, renders the region, pops, and closes the region with a
// reset followed by whatever code is then on top of the stack, so the
// enclosing style is visually reasserted.
//
//	ctx := tint.New()
//	fmt.Println(ctx.Red("failed: %s", ctx.Bold("disk full")))
//
// For true lexical nesting, where an inner region must restore a specific
// enclosing style rather than the sentinel, build the body inside an Apply
// closure:
//
//	out := ctx.Apply(sgr.Red, func() string {
//		return "outer " + ctx.Apply(sgr.Green, func() string {
//			return "inner"
//		}) + " outer again"
//	})
//
// The package-level functions mirror the Context methods on a single
// package default Context. They are a convenience for programs that style
// from one goroutine; concurrent renderers should each own a Context.
package tint

import "github.com/arthur-debert/termtint/pkg/sgr"

var defaultContext = New()

// ResetCode returns the universal SGR reset sequence.
func ResetCode() sgr.Code {
	return sgr.Reset
}

// Current returns the style code currently active on the default Context.
func Current() sgr.Code {
	return defaultContext.Current()
}

// Apply renders on the default Context. See Context.Apply.
func Apply(code sgr.Code, render func() string) string {
	return defaultContext.Apply(code, render)
}

// Applyf formats on the default Context. See Context.Applyf.
func Applyf(code sgr.Code, format string, args ...any) string {
	return defaultContext.Applyf(code, format, args...)
}

// Black formats its arguments in black on the default Context.
func Black(format string, args ...any) string {
	return defaultContext.Black(format, args...)
}

// Red formats its arguments in red on the default Context.
func Red(format string, args ...any) string {
	return defaultContext.Red(format, args...)
}

// Green formats its arguments in green on the default Context.
func Green(format string, args ...any) string {
	return defaultContext.Green(format, args...)
}

// Yellow formats its arguments in yellow on the default Context.
func Yellow(format string, args ...any) string {
	return defaultContext.Yellow(format, args...)
}

// Blue formats its arguments in blue on the default Context.
func Blue(format string, args ...any) string {
	return defaultContext.Blue(format, args...)
}

// Magenta formats its arguments in magenta on the default Context.
func Magenta(format string, args ...any) string {
	return defaultContext.Magenta(format, args...)
}

// Cyan formats its arguments in cyan on the default Context.
func Cyan(format string, args ...any) string {
	return defaultContext.Cyan(format, args...)
}

// White formats its arguments in white on the default Context.
func White(format string, args ...any) string {
	return defaultContext.White(format, args...)
}

// BgBlack formats on a black background on the default Context.
func BgBlack(format string, args ...any) string {
	return defaultContext.BgBlack(format, args...)
}

// BgRed formats on a red background on the default Context.
func BgRed(format string, args ...any) string {
	return defaultContext.BgRed(format, args...)
}

// BgGreen formats on a green background on the default Context.
func BgGreen(format string, args ...any) string {
	return defaultContext.BgGreen(format, args...)
}

// BgYellow formats on a yellow background on the default Context.
func BgYellow(format string, args ...any) string {
	return defaultContext.BgYellow(format, args...)
}

// BgBlue formats on a blue background on the default Context.
func BgBlue(format string, args ...any) string {
	return defaultContext.BgBlue(format, args...)
}

// BgMagenta formats on a magenta background on the default Context.
func BgMagenta(format string, args ...any) string {
	return defaultContext.BgMagenta(format, args...)
}

// BgCyan formats on a cyan background on the default Context.
func BgCyan(format string, args ...any) string {
	return defaultContext.BgCyan(format, args...)
}

// BgWhite formats on a white background on the default Context.
func BgWhite(format string, args ...any) string {
	return defaultContext.BgWhite(format, args...)
}

// Bold formats its arguments in bold on the default Context.
func Bold(format string, args ...any) string {
	return defaultContext.Bold(format, args...)
}

// Italic formats its arguments in italic on the default Context.
func Italic(format string, args ...any) string {
	return defaultContext.Italic(format, args...)
}

// Underline formats its arguments underlined on the default Context.
func Underline(format string, args ...any) string {
	return defaultContext.Underline(format, args...)
}

// RGB formats in a 24-bit foreground color on the default Context.
func RGB(r, g, b uint8, format string, args ...any) string {
	return defaultContext.RGB(r, g, b, format, args...)
}

// BgRGB formats on a 24-bit background color on the default Context.
func BgRGB(r, g, b uint8, format string, args ...any) string {
	return defaultContext.BgRGB(r, g, b, format, args...)
}

// HSL formats in an HSL-specified foreground color on the default Context.
func HSL(h, s, l float64, format string, args ...any) string {
	return defaultContext.HSL(h, s, l, format, args...)
}

// BgHSL formats on an HSL-specified background color on the default Context.
func BgHSL(h, s, l float64, format string, args ...any) string {
	return defaultContext.BgHSL(h, s, l, format, args...)
}

// HSV formats in an HSV-specified foreground color on the default Context.
func HSV(h, s, v float64, format string, args ...any) string {
	return defaultContext.HSV(h, s, v, format, args...)
}

// BgHSV formats on an HSV-specified background color on the default Context.
func BgHSV(h, s, v float64, format string, args ...any) string {
	return defaultContext.BgHSV(h, s, v, format, args...)
}
