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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/teradata-labs/colorwheel/internal/charmtone"
	"github.com/teradata-labs/colorwheel/pkg/config"
)

var paletteOutput string

var paletteCmd = &cobra.Command{
	Use:   "palette <file|name>",
	Short: "Show the colors of a palette file",
	Long: heredoc.Doc(`
		Load a palette YAML file and print every swatch in all notations.
		A bare name is looked up in $COLORWHEEL_DATA_DIR/palettes; the name
		"charmtone" falls back to the built-in palette.

		Example palette:
		  apiVersion: colorwheel/v1
		  kind: Palette
		  metadata:
		    name: brand
		  spec:
		    colors:
		      - name: primary
		        value: "#0a66c2"
	`),
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVarP(&paletteOutput, "output", "o", "text", "output format: text, json, yaml")
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	palette, err := loadPalette(args[0])
	if err != nil {
		return err
	}

	convs := make([]conversion, 0, len(palette.Swatches))
	for _, s := range palette.Swatches {
		conv := newConversion(s.Color.String(), s.Color)
		conv.Name = s.Name
		convs = append(convs, conv)
	}

	out := cmd.OutOrStdout()
	return writeOutput(out, paletteOutput, convs, func(w io.Writer) error {
		swatches := make([]string, len(convs))
		for i, s := range palette.Swatches {
			swatches[i] = swatch(out, s.Color)
		}
		return writePaletteTable(w, palette.Name, convs, swatches)
	})
}

// writePaletteTable prints one aligned row per swatch. Swatch blocks carry
// escape sequences, so they go after the last cell where tabwriter does
// not measure them.
func writePaletteTable(w io.Writer, name string, convs []conversion, swatches []string) error {
	if _, err := fmt.Fprintf(w, "%s (%d colors)\n", name, len(convs)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, conv := range convs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s", conv.Name, conv.Hex, conv.RGBString, conv.HSLString)
		if i < len(swatches) && swatches[i] != "" {
			fmt.Fprintf(tw, "  %s", swatches[i])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func loadPalette(arg string) (*config.Palette, error) {
	path := config.ResolvePalettePath(arg)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && arg == charmtone.Name {
		return charmtone.Palette(), nil
	}
	return config.LoadPalette(path)
}
