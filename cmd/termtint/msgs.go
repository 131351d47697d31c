package termtint

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Nested ANSI text styling for the terminal"
	MsgDemoShort     = "Render a tour of nested styling output"
	MsgPaletteShort  = "Show the named ANSI colors"
	MsgGradientShort = "Render a truecolor gradient between two colors"
	MsgSwatchShort   = "Render named colors defined in a YAML file"
	MsgConvertShort  = "Convert an HSL or HSV color to RGB"
	MsgVersionShort  = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor = "Disable escape sequences in output"
	MsgFlagFrom    = "Gradient start color as a hex string (e.g. #ff0000)"
	MsgFlagTo      = "Gradient end color as a hex string (e.g. #0000ff)"
	MsgFlagSteps   = "Number of gradient steps"
)

// Long messages
const (
	MsgRootLong = `termtint wraps strings in ANSI SGR escape sequences for colors and text
attributes. Styled regions nest: when an inner region ends, output resumes
the enclosing style instead of a fixed default.`

	MsgConvertLong = `Convert an HSL or HSV color to its RGB channels.

Hue is in degrees [0,360]; saturation and lightness/value are in [0,1].
Out-of-range inputs convert to black rather than failing.`

	MsgSwatchLong = `Render named colors from a YAML palette file of the form:

colors:
  - name: coral
    rgb: [255, 127, 80]
  - name: teal
    rgb: [0, 128, 128]`
)
