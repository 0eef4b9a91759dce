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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/teradata-labs/colorwheel/pkg/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// conversion is one color in every supported form.
type conversion struct {
	Name      string    `json:"name,omitempty" yaml:"name,omitempty"`
	Input     string    `json:"input" yaml:"input"`
	Hex       string    `json:"hex" yaml:"hex"`
	RGBString string    `json:"rgb_string" yaml:"rgb_string"`
	HSLString string    `json:"hsl_string" yaml:"hsl_string"`
	RGB       color.RGB `json:"rgb" yaml:"rgb"`
	HSV       color.HSV `json:"hsv" yaml:"hsv"`
	HSL       color.HSL `json:"hsl" yaml:"hsl"`
}

func newConversion(input string, c color.Color) conversion {
	return conversion{
		Input:     input,
		Hex:       c.HexString(),
		RGBString: c.RGBString(),
		HSLString: c.HSLString(),
		RGB:       c.Get(color.FormatRGB).RGB,
		HSV:       c.Get(color.FormatHSV).HSV,
		HSL:       c.Get(color.FormatHSL).HSL,
	}
}

// writeOutput encodes v as json or yaml, or calls text for plain output.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "", "text":
		return text(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// swatch returns a colored block followed by a space when w is a terminal,
// and nothing otherwise.
func swatch(w io.Writer, c color.Color) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ""
	}
	return lipgloss.NewStyle().Background(c).Render("    ") + " "
}
