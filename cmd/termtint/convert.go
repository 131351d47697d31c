package termtint

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/termtint/pkg/sgr"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <hsl|hsv> <hue> <saturation> <lightness|value>",
		Short: MsgConvertShort,
		Long:  MsgConvertLong,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			space := args[0]

			var components [3]float64
			for i, arg := range args[1:] {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				components[i] = v
			}

			var r, g, b uint8
			switch space {
			case "hsl":
				r, g, b = sgr.HSLToRGB(components[0], components[1], components[2])
			case "hsv":
				r, g, b = sgr.HSVToRGB(components[0], components[1], components[2])
			default:
				return fmt.Errorf("unknown color space %q (expected hsl or hsv)", space)
			}

			s := stylerFor(cmd)
			fmt.Fprintf(cmd.OutOrStdout(), "rgb(%d, %d, %d)  %s\n",
				r, g, b, s.paint(sgr.RGB(r, g, b), "sample"))
			return nil
		},
	}
}
