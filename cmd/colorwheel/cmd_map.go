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
	"math"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/teradata-labs/colorwheel/pkg/picker"
	"github.com/teradata-labs/colorwheel/pkg/wheel"
)

var (
	mapX, mapY             float64
	mapCenterX, mapCenterY float64
	mapOutput              string
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map a pointer position on the wheel to a color",
	Long: heredoc.Doc(`
		Press the wheel at (--x, --y) starting from the configured initial
		color and print the region hit and the resulting color. Coordinates
		are widget-local pixels; the center defaults to the middle of the
		wheel.

		Examples:
		  colorwheel map --x 193.5 --y 103.5
		  colorwheel map --x 103.5 --y 103.5 --init-color '#f00' -o json
	`),
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().Float64Var(&mapX, "x", 0, "pointer x")
	mapCmd.Flags().Float64Var(&mapY, "y", 0, "pointer y")
	mapCmd.Flags().Float64Var(&mapCenterX, "center-x", math.NaN(), "wheel center x (default: size/2)")
	mapCmd.Flags().Float64Var(&mapCenterY, "center-y", math.NaN(), "wheel center y (default: size/2)")
	mapCmd.Flags().StringVarP(&mapOutput, "output", "o", "text", "output format: text, json, yaml")
	_ = mapCmd.MarkFlagRequired("x")
	_ = mapCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(mapCmd)
}

// mapping is the result of one press.
type mapping struct {
	Region string  `json:"region" yaml:"region"`
	Hue    float64 `json:"hue" yaml:"hue"`
	Sat    float64 `json:"saturation" yaml:"saturation"`
	Val    float64 `json:"value" yaml:"value"`
	Color  string  `json:"color" yaml:"color"`
}

func runMap(cmd *cobra.Command, args []string) error {
	p, err := picker.New(cfg)
	if err != nil {
		return err
	}

	center := p.Geometry().Center()
	if !math.IsNaN(mapCenterX) {
		center.X = mapCenterX
	}
	if !math.IsNaN(mapCenterY) {
		center.Y = mapCenterY
	}

	region := p.Press(wheel.PointerSample{Point: wheel.Pt(mapX, mapY), Center: center})
	p.Release()

	h, s, val := p.Color().HSV()
	m := mapping{Region: region.String(), Hue: h, Sat: s, Val: val, Color: p.Color().HexString()}

	return writeOutput(cmd.OutOrStdout(), mapOutput, m, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "region: %s\nhsv: %g, %g, %g\ncolor: %s%s\n",
			m.Region, m.Hue, m.Sat, m.Val, swatch(w, p.Color()), m.Color)
		return err
	})
}
