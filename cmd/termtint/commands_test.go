package termtint

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and returns its combined
// output. Logging and the log file are redirected into a temp dir.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()

	rootCmd := NewRootCmd()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootWithoutCommandFails(t *testing.T) {
	_, err := runCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "termtint version")
	assert.Contains(t, out, "commit:")
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hsl red", []string{"convert", "hsl", "0", "1", "0.5"}, "rgb(255, 0, 0)"},
		{"hsl green", []string{"convert", "hsl", "120", "1", "0.5"}, "rgb(0, 255, 0)"},
		{"hsv blue", []string{"convert", "hsv", "240", "1", "1"}, "rgb(0, 0, 255)"},
		{"out of range hue is black", []string{"convert", "hsl", "400", "1", "0.5"}, "rgb(0, 0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestConvertCommandRejectsBadInput(t *testing.T) {
	_, err := runCommand(t, "convert", "rgb", "0", "1", "0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color space")

	_, err = runCommand(t, "convert", "hsl", "zero", "1", "0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number")
}

func TestPaletteCommand(t *testing.T) {
	out, err := runCommand(t, "palette", "--no-color")
	require.NoError(t, err)

	for _, name := range []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		assert.Contains(t, out, name)
	}
	// Captured output is not a terminal, so no escapes either way.
	assert.NotContains(t, out, "\x1b[")
}

func TestGradientCommand(t *testing.T) {
	out, err := runCommand(t, "gradient", "--from", "#ff0000", "--to", "#0000ff", "--steps", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "#ff0000")
	assert.Contains(t, lines[3], "#0000ff")
}

func TestGradientCommandValidation(t *testing.T) {
	_, err := runCommand(t, "gradient", "--steps", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be at least 2")

	_, err = runCommand(t, "gradient", "--from", "notacolor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --from color")
}

func TestSwatchCommand(t *testing.T) {
	palette := `colors:
  - name: coral
    rgb: [255, 127, 80]
  - name: teal
    rgb: [0, 128, 128]
`
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(palette), 0644))

	out, err := runCommand(t, "swatch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "coral")
	assert.Contains(t, out, "rgb(255, 127, 80)")
	assert.Contains(t, out, "teal")
}

func TestSwatchCommandRejectsBadPalette(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty palette", "colors: []", "defines no colors"},
		{"missing name", "colors:\n  - rgb: [1, 2, 3]", "no name"},
		{"wrong channel count", "colors:\n  - name: x\n    rgb: [1, 2]", "exactly 3 rgb channels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "palette.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := runCommand(t, "swatch", path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDemoCommandEmitsEscapes(t *testing.T) {
	out, err := runCommand(t, "demo")
	require.NoError(t, err)

	// The demo shows escape output unconditionally.
	assert.Contains(t, out, "\x1b[31mHello World!\x1b[0m\x1b[37m")
	assert.Contains(t, out, "\x1b[38;2;255;128;0m")
}
