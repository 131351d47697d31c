package termtint

import (
	"fmt"
	"io"

	"github.com/arthur-debert/termtint/pkg/sgr"
	"github.com/arthur-debert/termtint/pkg/tint"
	"github.com/spf13/cobra"
)

// newDemoCmd renders a tour of the styling surface. Escape sequences are
// emitted unconditionally: the point of the command is to show them.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Run: func(cmd *cobra.Command, args []string) {
			runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(out io.Writer) {
	// Simple color application
	fmt.Fprintln(out, tint.Red("Hello World!"))

	// Multiple colors in a single line
	fmt.Fprintln(out, tint.Red("Error: %s, %s",
		tint.Blue("File not found"),
		tint.Green("Please check your path")))

	// Composed colors: inner segments close back to the sentinel
	fmt.Fprintln(out, tint.White("This is %s with %s color",
		tint.Red("red"), tint.Green("green")))

	// Formatting with values
	fmt.Fprintln(out, tint.Green("The number is: %d", 42))

	// True lexical nesting: the inner region resumes the enclosing red
	ctx := tint.New()
	fmt.Fprintln(out, ctx.Apply(sgr.Red, func() string {
		return "Red text " + ctx.Apply(sgr.Green, func() string {
			return "green inside"
		}) + " and red again"
	}))

	// Background colors and attributes
	fmt.Fprintln(out, tint.BgBlue("On blue"))
	fmt.Fprintln(out, tint.Bold("Bold, %s", tint.Underline("underlined")))
	fmt.Fprintln(out, tint.Italic("Italic text"))

	// Computed colors
	fmt.Fprintln(out, tint.RGB(255, 128, 0, "Orange via RGB"))
	fmt.Fprintln(out, tint.HSL(200, 0.8, 0.6, "Sky via HSL"))
	fmt.Fprintln(out, tint.HSV(280, 1, 1, "Violet via HSV"))
	fmt.Fprintln(out, tint.BgHSL(120, 0.5, 0.3, "On muted green"))

	// Multi-line summary in the original demo's shape
	fmt.Fprintln(out, tint.White("Summary: %s\nDetails: %s\nInfo: %s",
		tint.Red("Critical error: %s", "File not found"),
		tint.Green("Suggestion: %s", "Check the file path"),
		tint.Blue("Additional info: %s", "System log")))
}
