package termtint

import (
	"fmt"

	"github.com/arthur-debert/termtint/pkg/logging"
	"github.com/arthur-debert/termtint/pkg/sgr"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

func newGradientCmd() *cobra.Command {
	var (
		from  string
		to    string
		steps int
	)

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: MsgGradientShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.gradient")
			done := logging.LogOperationStart(logger, "render gradient")
			defer done()

			if steps < 2 {
				return fmt.Errorf("steps must be at least 2, got %d", steps)
			}

			start, err := colorful.Hex(from)
			if err != nil {
				return fmt.Errorf("invalid --from color %q: %w", from, err)
			}
			end, err := colorful.Hex(to)
			if err != nil {
				return fmt.Errorf("invalid --to color %q: %w", to, err)
			}

			s := stylerFor(cmd)
			out := cmd.OutOrStdout()

			for i := 0; i < steps; i++ {
				t := float64(i) / float64(steps-1)
				// Blend in Luv space for perceptually even steps.
				c := start.BlendLuv(end, t)
				r, g, b := c.RGB255()
				fmt.Fprintf(out, "%s %s\n",
					s.paint(sgr.BgRGB(r, g, b), "    "),
					c.Hex())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "#ff0000", MsgFlagFrom)
	cmd.Flags().StringVar(&to, "to", "#0000ff", MsgFlagTo)
	cmd.Flags().IntVar(&steps, "steps", 8, MsgFlagSteps)

	return cmd
}
