package termtint

import (
	"fmt"
	"os"

	"github.com/arthur-debert/termtint/pkg/sgr"
	"github.com/arthur-debert/termtint/pkg/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// styler renders through a tint.Context when escape output is wanted and
// falls back to plain formatting otherwise.
type styler struct {
	enabled bool
	ctx     *tint.Context
}

func newStyler(enabled bool) *styler {
	return &styler{enabled: enabled, ctx: tint.New()}
}

// stylerFor builds a styler honoring the --no-color flag and whether
// stdout is a terminal.
func stylerFor(cmd *cobra.Command) *styler {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return newStyler(!noColor && stdoutIsTerminal())
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// paint formats the arguments wrapped in code, or plain when disabled.
func (s *styler) paint(code sgr.Code, format string, args ...any) string {
	if !s.enabled {
		return fmt.Sprintf(format, args...)
	}
	return s.ctx.Applyf(code, format, args...)
}
