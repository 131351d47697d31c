package termtint

import (
	"fmt"

	"github.com/arthur-debert/termtint/pkg/sgr"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var namedColors = []struct {
	name string
	fg   sgr.Code
	bg   sgr.Code
}{
	{"black", sgr.Black, sgr.BgBlack},
	{"red", sgr.Red, sgr.BgRed},
	{"green", sgr.Green, sgr.BgGreen},
	{"yellow", sgr.Yellow, sgr.BgYellow},
	{"blue", sgr.Blue, sgr.BgBlue},
	{"magenta", sgr.Magenta, sgr.BgMagenta},
	{"cyan", sgr.Cyan, sgr.BgCyan},
	{"white", sgr.White, sgr.BgWhite},
}

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: MsgPaletteShort,
		Run: func(cmd *cobra.Command, args []string) {
			s := stylerFor(cmd)
			out := cmd.OutOrStdout()

			nameWidth := 0
			for _, c := range namedColors {
				if w := runewidth.StringWidth(c.name); w > nameWidth {
					nameWidth = w
				}
			}

			for _, c := range namedColors {
				fmt.Fprintf(out, "%s  %s  %s\n",
					runewidth.FillRight(c.name, nameWidth),
					s.paint(c.fg, "sample"),
					s.paint(c.bg, "      "))
			}
		},
	}
}
