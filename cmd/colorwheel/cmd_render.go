// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"math"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/teradata-labs/colorwheel/internal/log"
	"github.com/teradata-labs/colorwheel/pkg/color"
	"github.com/teradata-labs/colorwheel/pkg/render"
	"go.uber.org/zap"
)

var (
	renderOut         string
	renderColor       string
	renderScale       float64
	renderSupersample float64
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the wheel to a PNG file",
	Long: heredoc.Doc(`
		Paint the hue ring, the saturation/value square and both markers for
		a color and write the result as PNG. Use "-" to write to stdout.

		Examples:
		  colorwheel render --out wheel.png
		  colorwheel render --color 'hsl(200, 80%, 40%)' --scale 2 --out - > wheel.png
	`),
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "colorwheel.png", "output file, or - for stdout")
	renderCmd.Flags().StringVar(&renderColor, "color", "", "color to show (default: the configured init color)")
	renderCmd.Flags().Float64Var(&renderScale, "scale", 1, "output scale factor")
	renderCmd.Flags().Float64Var(&renderSupersample, "supersample", 2, "antialiasing factor, 1 to disable")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderScale <= 0 || renderSupersample < 1 {
		return fmt.Errorf("scale must be positive and supersample at least 1")
	}

	input := renderColor
	if input == "" {
		input = cfg.InitColor
	}
	c, err := color.Parse(input)
	if err != nil {
		return err
	}
	style, err := render.StyleFromConfig(cfg)
	if err != nil {
		return err
	}

	side := int(math.Ceil(cfg.Size * renderScale))
	img := render.Fit(render.Draw(c, cfg.Geometry(), style, renderScale*renderSupersample), side, side)

	log.Debug("wheel rendered", zap.Int("side", side), zap.String("color", c.HexString()))

	if renderOut == "-" {
		return render.EncodePNG(cmd.OutOrStdout(), img)
	}
	if err := render.WritePNG(renderOut, img); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%dx%d)\n", renderOut, side, side)
	return nil
}
