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
// Package color implements the HSV color model behind the wheel picker and
// the conversions between HSV, HSL, RGB and hex notations.
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an HSV color together with its RGB projection.
//
// Hue is kept as given (it may lie outside [0,360)); it is normalized only
// when projected. The RGB channels are always the rounded HSVToRGB image of
// the current hue, saturation and value: every mutator recomputes them.
type Color struct {
	hue        float64
	saturation float64
	value      float64

	red   int
	green int
	blue  int
}

// FromHSV creates a color from a hue in degrees and saturation and value in
// [0,1]. Saturation and value are not clamped.
func FromHSV(hue, saturation, value float64) Color {
	c := Color{hue: hue, saturation: saturation, value: value}
	c.refresh()
	return c
}

// Parse creates a color from a hex, rgb() or hsl() color string.
func Parse(s string) (Color, error) {
	h, sat, v, err := ParseString(s)
	if err != nil {
		return Color{}, err
	}
	return FromHSV(h, sat, v), nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// package-level color constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SetHSV replaces all three HSV components.
func (c *Color) SetHSV(hue, saturation, value float64) {
	c.hue = hue
	c.saturation = saturation
	c.value = value
	c.refresh()
}

// SetHue replaces the hue and keeps saturation and value.
func (c *Color) SetHue(hue float64) {
	c.hue = hue
	c.refresh()
}

// refresh re-derives the channels. Out-of-range saturation or value can
// project outside [0,255], so channels are clamped for every output form.
func (c *Color) refresh() {
	r, g, b := HSVToRGB(c.hue, c.saturation, c.value)
	c.red = clampByte(roundChannel(r))
	c.green = clampByte(roundChannel(g))
	c.blue = clampByte(roundChannel(b))
}

// Hue returns the hue in degrees as it was set.
func (c Color) Hue() float64 { return c.hue }

// Saturation returns the HSV saturation.
func (c Color) Saturation() float64 { return c.saturation }

// Value returns the HSV value.
func (c Color) Value() float64 { return c.value }

// HSV returns the hue, saturation and value.
func (c Color) HSV() (hue, saturation, value float64) {
	return c.hue, c.saturation, c.value
}

// RGB returns the rounded red, green and blue channels.
func (c Color) RGB() (r, g, b int) {
	return c.red, c.green, c.blue
}

// HSL returns the color in HSL notation.
func (c Color) HSL() (hue, saturation, lightness float64) {
	return HSVToHSL(c.hue, c.saturation, c.value)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clampByte(c.red)) * 0x101
	g = uint32(clampByte(c.green)) * 0x101
	b = uint32(clampByte(c.blue)) * 0x101
	return r, g, b, 0xffff
}

// Colorful converts the color to a go-colorful color using the unrounded
// RGB projection.
func (c Color) Colorful() colorful.Color {
	r, g, b := HSVToRGB(c.hue, c.saturation, c.value)
	return colorful.Color{R: r / 255, G: g / 255, B: b / 255}
}

// Equal reports whether two colors have identical HSV components.
func (c Color) Equal(other Color) bool {
	return c.hue == other.hue && c.saturation == other.saturation && c.value == other.value
}

// String returns the hex notation.
func (c Color) String() string {
	return c.HexString()
}

// GoString makes %#v output readable in test failures.
func (c Color) GoString() string {
	return fmt.Sprintf("color.FromHSV(%g, %g, %g)", c.hue, c.saturation, c.value)
}

// roundChannel rounds half up, matching the rounding used for display.
func roundChannel(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
