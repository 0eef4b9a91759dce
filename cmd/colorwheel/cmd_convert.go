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
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/teradata-labs/colorwheel/pkg/color"
)

var (
	convertFormat string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color string between notations",
	Long: heredoc.Doc(`
		Parse a #hex, rgb() or hsl() color string and print it in every
		supported form, or only in the form selected with --format.

		Examples:
		  colorwheel convert '#f80'
		  colorwheel convert 'rgb(100%, 50%, 0%)' -o json
		  colorwheel convert 'hsl(210, 50%, 40%)' --format rgb
	`),
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "single form to print: hex, rgb, hsl, object:rgb, object:hsv")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "text", "output format: text, json, yaml")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if convertFormat != "" {
		f, err := color.ParseFormat(convertFormat)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, c.Get(f).String())
		return err
	}

	conv := newConversion(args[0], c)
	return writeOutput(out, convertOutput, conv, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s%s\n%s\n%s\n%s\n",
			swatch(w, c), conv.Hex, conv.RGBString, conv.HSLString,
			c.Get(color.FormatHSV).String())
		return err
	})
}
