// Package sgr models ANSI SGR escape sequences as opaque code values.
//
// A Code is one complete escape sequence. Codes are plain strings so they
// can be concatenated into output directly; the package only knows how to
// construct them, never how a terminal will render them.
package sgr

import "fmt"

// Code is a single ANSI SGR escape sequence.
type Code string

// String returns the raw escape sequence bytes.
func (c Code) String() string {
	return string(c)
}

// Reset clears all active SGR attributes.
const Reset Code = "\x1b[0m"

// Default is the sentinel style: the code assumed active when no explicit
// styling is in effect. It seeds every style context.
const Default = White

// Foreground colors (SGR 30-37).
const (
	Black   Code = "\x1b[30m"
	Red     Code = "\x1b[31m"
	Green   Code = "\x1b[32m"
	Yellow  Code = "\x1b[33m"
	Blue    Code = "\x1b[34m"
	Magenta Code = "\x1b[35m"
	Cyan    Code = "\x1b[36m"
	White   Code = "\x1b[37m"
)

// Background colors (SGR 40-47).
const (
	BgBlack   Code = "\x1b[40m"
	BgRed     Code = "\x1b[41m"
	BgGreen   Code = "\x1b[42m"
	BgYellow  Code = "\x1b[43m"
	BgBlue    Code = "\x1b[44m"
	BgMagenta Code = "\x1b[45m"
	BgCyan    Code = "\x1b[46m"
	BgWhite   Code = "\x1b[47m"
)

// Text attributes.
const (
	Bold      Code = "\x1b[1m"
	Italic    Code = "\x1b[3m"
	Underline Code = "\x1b[4m"
)

// RGB returns the 24-bit foreground color code for the given channels.
func RGB(r, g, b uint8) Code {
	return Code(fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b))
}

// BgRGB returns the 24-bit background color code for the given channels.
func BgRGB(r, g, b uint8) Code {
	return Code(fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b))
}

// HSL returns the foreground color code for an HSL-specified color.
func HSL(h, s, l float64) Code {
	return RGB(HSLToRGB(h, s, l))
}

// BgHSL returns the background color code for an HSL-specified color.
func BgHSL(h, s, l float64) Code {
	return BgRGB(HSLToRGB(h, s, l))
}

// HSV returns the foreground color code for an HSV-specified color.
func HSV(h, s, v float64) Code {
	return RGB(HSVToRGB(h, s, v))
}

// BgHSV returns the background color code for an HSV-specified color.
func BgHSV(h, s, v float64) Code {
	return BgRGB(HSVToRGB(h, s, v))
}
