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
package color

import (
	"fmt"
	"math"
	"strconv"
)

// Format selects one of the output forms returned by Color.Get.
type Format int

const (
	// FormatHexString is "#rrggbb". It is the zero value and the default.
	FormatHexString Format = iota
	// FormatRGBString is "rgb(r, g, b)".
	FormatRGBString
	// FormatHSL is "hsl(h, s%, l%)" plus the HSL triple.
	FormatHSL
	// FormatRGB is the rounded RGB triple.
	FormatRGB
	// FormatHSV is the HSV triple.
	FormatHSV
)

var formatNames = map[Format]string{
	FormatHexString: "hex",
	FormatRGBString: "rgb",
	FormatHSL:       "hsl",
	FormatRGB:       "object:rgb",
	FormatHSV:       "object:hsv",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name ("hex", "rgb", "hsl", "object:rgb",
// "object:hsv") to a Format. The empty string selects FormatHexString.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatHexString, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatHexString, fmt.Errorf("unknown color format %q (must be: hex, rgb, hsl, object:rgb, object:hsv)", name)
}

// RGB is a rounded RGB triple.
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// HSV is a hue/saturation/value triple.
type HSV struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	V float64 `json:"v" yaml:"v"`
}

// HSL is a hue/saturation/lightness triple.
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// Value is the result of Color.Get. Only the fields belonging to Format are
// populated: Text for the string forms, RGB or HSV for the triples, and both
// HSL and Text for FormatHSL.
type Value struct {
	Format Format
	Text   string
	RGB    RGB
	HSV    HSV
	HSL    HSL
}

// String renders the value as text regardless of its form.
func (v Value) String() string {
	switch v.Format {
	case FormatRGB:
		return fmt.Sprintf("{r: %d, g: %d, b: %d}", v.RGB.R, v.RGB.G, v.RGB.B)
	case FormatHSV:
		return fmt.Sprintf("{h: %g, s: %g, v: %g}", v.HSV.H, v.HSV.S, v.HSV.V)
	default:
		return v.Text
	}
}

// Get returns the color in the requested form.
func (c Color) Get(f Format) Value {
	switch f {
	case FormatRGB:
		return Value{Format: f, RGB: RGB{R: c.red, G: c.green, B: c.blue}}
	case FormatHSV:
		return Value{Format: f, HSV: HSV{H: c.hue, S: c.saturation, V: c.value}}
	case FormatHSL:
		h, s, l := c.HSL()
		return Value{Format: f, Text: c.HSLString(), HSL: HSL{H: h, S: s, L: l}}
	case FormatRGBString:
		return Value{Format: f, Text: c.RGBString()}
	default:
		return Value{Format: FormatHexString, Text: c.HexString()}
	}
}

// RGBString formats the color as "rgb(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.red, c.green, c.blue)
}

// HexString formats the color as "#rrggbb".
func (c Color) HexString() string {
	return RGBToHex(c.red, c.green, c.blue)
}

// HSLString formats the color as "hsl(h, s%, l%)" with the hue rounded to
// whole degrees and saturation and lightness to one decimal place.
func (c Color) HSLString() string {
	h, s, l := c.HSL()
	hue := int(math.Floor(NormalizeHue(h) + 0.5))
	if hue == 360 {
		hue = 0
	}
	return fmt.Sprintf("hsl(%d, %s%%, %s%%)", hue, oneDecimal(s*100), oneDecimal(l*100))
}

// oneDecimal rounds to one decimal place and drops a trailing ".0".
func oneDecimal(v float64) string {
	r := math.Round(v*10) / 10
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
