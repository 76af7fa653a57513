package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/delaneyj/figspec/preferences"
	"github.com/urfave/cli/v3"
)

const (
	preferencesKey = "preferences"
	unitKey        = "unit"
	colorKey       = "color"
	decimalsKey    = "decimals"
	imagesKey      = "images"
	watchKey       = "watch"
	nodeKey        = "node"
	outKey         = "out"
)

var errMissingFile = errors.New("path of an exported JSON file is required")

// stdout is replaced in tests.
var stdout io.Writer = os.Stdout

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	nodeFlag := &cli.StringFlag{
		Name:     nodeKey,
		Usage:    "ID of the node, e.g. 1:2",
		Required: true,
	}

	return &cli.Command{
		Name:  "figspec",
		Usage: "Inspect Figma file exports",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  preferencesKey,
				Usage: "YAML preferences file, written back when changed in the viewer",
			},
			&cli.StringFlag{
				Name:  unitKey,
				Usage: "CSS length unit (px, rem)",
			},
			&cli.StringFlag{
				Name:  colorKey,
				Usage: "CSS color notation (hex, rgb, hsl, color-srgb, display-p3, srgb-to-display-p3)",
			},
			&cli.IntFlag{
				Name:  decimalsKey,
				Usage: "Decimal places of CSS numbers",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "view",
				Usage:     "Browse an export in the terminal",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  imagesKey,
						Usage: "Directory of rendered images named after their node ID",
					},
					&cli.BoolFlag{
						Name:  watchKey,
						Usage: "Reload the export when it changes",
					},
				},
				Action: view,
			},
			{
				Name:      "css",
				Usage:     "Print the CSS of a node",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{nodeFlag},
				Action:    css,
			},
			{
				Name:      "tree",
				Usage:     "Print the node tree",
				ArgsUsage: "FILE",
				Action:    tree,
			},
			{
				Name:      "info",
				Usage:     "Print details of an export",
				ArgsUsage: "FILE",
				Action:    info,
			},
			{
				Name:      "canvases",
				Usage:     "List the canvases of a file export",
				ArgsUsage: "FILE",
				Action:    canvases,
			},
			{
				Name:      "report",
				Usage:     "Write an HTML report of a node",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  nodeKey,
						Usage: "ID of the node to describe, none for the file only",
					},
					&cli.StringFlag{
						Name:  outKey,
						Usage: "Output path, stdout when empty",
					},
				},
				Action: writeReport,
			},
		},
	}
}

// loadPreferences reads the preferences file, when one is given and exists,
// and applies the flags on top.
func loadPreferences(cmd *cli.Command) (preferences.Preferences, error) {
	p := preferences.Default()
	if path := cmd.String(preferencesKey); path != "" {
		loaded, err := preferences.Load(path)
		switch {
		case err == nil:
			p = loaded
		case !errors.Is(err, os.ErrNotExist):
			return p, err
		}
	}

	if cmd.IsSet(unitKey) {
		p.LengthUnit = preferences.LengthUnit(cmd.String(unitKey))
	}
	if cmd.IsSet(colorKey) {
		p.CSSColorNotation = preferences.ColorNotation(cmd.String(colorKey))
	}
	if cmd.IsSet(decimalsKey) {
		p.DecimalPlaces = int(cmd.Int(decimalsKey))
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid preferences: %w", err)
	}
	return p, nil
}
