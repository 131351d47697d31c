package sgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedCodes(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want string
	}{
		{"reset", Reset, "\x1b[0m"},
		{"red foreground", Red, "\x1b[31m"},
		{"white foreground", White, "\x1b[37m"},
		{"black foreground", Black, "\x1b[30m"},
		{"green background", BgGreen, "\x1b[42m"},
		{"white background", BgWhite, "\x1b[47m"},
		{"bold", Bold, "\x1b[1m"},
		{"italic", Italic, "\x1b[3m"},
		{"underline", Underline, "\x1b[4m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestDefaultIsWhite(t *testing.T) {
	// The sentinel style outside any explicit styling is white.
	assert.Equal(t, White, Default)
}

func TestRGB(t *testing.T) {
	assert.Equal(t, Code("\x1b[38;2;255;0;0m"), RGB(255, 0, 0))
	assert.Equal(t, Code("\x1b[38;2;18;52;86m"), RGB(18, 52, 86))
	assert.Equal(t, Code("\x1b[48;2;0;255;0m"), BgRGB(0, 255, 0))
}

func TestHSLCodeBuilders(t *testing.T) {
	// The HSL/HSV builders compose the conversion with the RGB escape.
	assert.Equal(t, RGB(255, 0, 0), HSL(0, 1, 0.5))
	assert.Equal(t, BgRGB(255, 0, 0), BgHSL(0, 1, 0.5))
	assert.Equal(t, RGB(0, 0, 255), HSV(240, 1, 1))
	assert.Equal(t, BgRGB(0, 0, 255), BgHSV(240, 1, 1))
}
