package termtint

import (
	"fmt"
	"os"

	"github.com/arthur-debert/termtint/pkg/sgr"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type swatchFile struct {
	Colors []swatchColor `yaml:"colors"`
}

type swatchColor struct {
	Name string  `yaml:"name"`
	RGB  []uint8 `yaml:"rgb"`
}

func newSwatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swatch <palette.yaml>",
		Short: MsgSwatchShort,
		Long:  MsgSwatchLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := loadPalette(args[0])
			if err != nil {
				return err
			}

			s := stylerFor(cmd)
			out := cmd.OutOrStdout()

			nameWidth := 0
			for _, c := range palette.Colors {
				if w := runewidth.StringWidth(c.Name); w > nameWidth {
					nameWidth = w
				}
			}

			for _, c := range palette.Colors {
				r, g, b := c.RGB[0], c.RGB[1], c.RGB[2]
				fmt.Fprintf(out, "%s  %s  %s  rgb(%d, %d, %d)\n",
					runewidth.FillRight(c.Name, nameWidth),
					s.paint(sgr.RGB(r, g, b), "sample"),
					s.paint(sgr.BgRGB(r, g, b), "      "),
					r, g, b)
			}
			return nil
		},
	}
}

func loadPalette(path string) (*swatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var palette swatchFile
	if err := yaml.Unmarshal(data, &palette); err != nil {
		return nil, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}

	if len(palette.Colors) == 0 {
		return nil, fmt.Errorf("palette file %s defines no colors", path)
	}
	for _, c := range palette.Colors {
		if c.Name == "" {
			return nil, fmt.Errorf("palette file %s has a color with no name", path)
		}
		if len(c.RGB) != 3 {
			return nil, fmt.Errorf("color %q must have exactly 3 rgb channels, got %d", c.Name, len(c.RGB))
		}
	}
	return &palette, nil
}
