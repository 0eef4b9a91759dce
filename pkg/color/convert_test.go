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
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-6

func TestHSVToRGB_PrimaryColors(t *testing.T) {
	tests := []struct {
		name    string
		hue     float64
		r, g, b float64
	}{
		{name: "red", hue: 0, r: 255, g: 0, b: 0},
		{name: "yellow", hue: 60, r: 255, g: 255, b: 0},
		{name: "green", hue: 120, r: 0, g: 255, b: 0},
		{name: "cyan", hue: 180, r: 0, g: 255, b: 255},
		{name: "blue", hue: 240, r: 0, g: 0, b: 255},
		{name: "magenta", hue: 300, r: 255, g: 0, b: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSVToRGB(tt.hue, 1, 1)
			assert.InDelta(t, tt.r, r, tolerance)
			assert.InDelta(t, tt.g, g, tolerance)
			assert.InDelta(t, tt.b, b, tolerance)
		})
	}
}

func TestHSVToRGB_Achromatic(t *testing.T) {
	for h := 0.0; h < 360; h += 15 {
		for _, v := range []float64{0, 0.25, 0.5, 1} {
			r, g, b := HSVToRGB(h, 0, v)
			assert.InDelta(t, 255*v, r, tolerance, "hue %v value %v", h, v)
			assert.InDelta(t, 255*v, g, tolerance, "hue %v value %v", h, v)
			assert.InDelta(t, 255*v, b, tolerance, "hue %v value %v", h, v)
		}
	}
}

func TestHSVToRGB_NormalizesHue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		same float64
	}{
		{name: "full turn", in: 360, same: 0},
		{name: "over a turn", in: 480, same: 120},
		{name: "negative", in: -120, same: 240},
		{name: "several turns negative", in: -750, same: 330},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r1, g1, b1 := HSVToRGB(tt.in, 0.7, 0.8)
			r2, g2, b2 := HSVToRGB(tt.same, 0.7, 0.8)
			assert.InDelta(t, r2, r1, tolerance)
			assert.InDelta(t, g2, g1, tolerance)
			assert.InDelta(t, b2, b1, tolerance)
		})
	}
}

func TestHSVToRGB_MatchesColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 7.5 {
		for s := 0.0; s <= 1; s += 0.125 {
			for v := 0.0; v <= 1; v += 0.125 {
				r, g, b := HSVToRGB(h, s, v)
				want := colorful.Hsv(h, s, v)
				assert.InDelta(t, want.R*255, r, 1e-9, "hsv(%v, %v, %v)", h, s, v)
				assert.InDelta(t, want.G*255, g, 1e-9, "hsv(%v, %v, %v)", h, s, v)
				assert.InDelta(t, want.B*255, b, 1e-9, "hsv(%v, %v, %v)", h, s, v)
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		h, s, l float64
	}{
		{name: "black", r: 0, g: 0, b: 0, h: 0, s: 0, l: 0},
		{name: "white", r: 255, g: 255, b: 255, h: 0, s: 0, l: 1},
		{name: "red", r: 255, g: 0, b: 0, h: 0, s: 1, l: 0.5},
		{name: "green", r: 0, g: 255, b: 0, h: 120, s: 1, l: 0.5},
		{name: "blue", r: 0, g: 0, b: 255, h: 240, s: 1, l: 0.5},
		{name: "rose wraps below zero", r: 255, g: 0, b: 128, h: 360 - 128.0/255*60, s: 1, l: 0.5},
		{name: "gray", r: 128, g: 128, b: 128, h: 0, s: 0, l: 128.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.h, h, tolerance)
			assert.InDelta(t, tt.s, s, tolerance)
			assert.InDelta(t, tt.l, l, tolerance)
			assert.GreaterOrEqual(t, h, 0.0)
			assert.Less(t, h, 360.0)
		})
	}
}

func TestHSVHSLRoundTrip(t *testing.T) {
	for h := 0.0; h < 360; h += 12.5 {
		for s := 0.0; s <= 1.0001; s += 0.05 {
			for v := 0.0; v <= 1.0001; v += 0.05 {
				sat, val := math.Min(s, 1), math.Min(v, 1)

				hh, ss, ll := HSVToHSL(h, sat, val)
				h2, s2, v2 := HSLToHSV(hh, ss, ll)

				assert.Equal(t, h, h2, "hue passes through")
				assert.InDelta(t, val, v2, tolerance, "value of hsv(%v, %v, %v)", h, sat, val)
				if val == 0 {
					// saturation is undefined for black
					continue
				}
				assert.InDelta(t, sat, s2, tolerance, "saturation of hsv(%v, %v, %v)", h, sat, val)
			}
		}
	}
}

func TestHSLToHSV(t *testing.T) {
	tests := []struct {
		name  string
		s, l  float64
		wantS float64
		wantV float64
	}{
		{name: "black", s: 0.5, l: 0, wantS: 0, wantV: 0},
		{name: "white", s: 0, l: 1, wantS: 0, wantV: 1},
		{name: "pure", s: 1, l: 0.5, wantS: 1, wantV: 1},
		{name: "muted", s: 0.5, l: 0.4, wantS: 2 - 0.8/0.6, wantV: 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := HSLToHSV(42, tt.s, tt.l)
			assert.Equal(t, 42.0, h)
			assert.InDelta(t, tt.wantS, s, tolerance)
			assert.InDelta(t, tt.wantV, v, tolerance)
		})
	}
}

func TestNormalizeHue(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeHue(0))
	assert.Equal(t, 0.0, NormalizeHue(360))
	assert.Equal(t, 10.0, NormalizeHue(370))
	assert.Equal(t, 350.0, NormalizeHue(-10))
	assert.Equal(t, 0.0, NormalizeHue(-720))
	assert.InDelta(t, 359.5, NormalizeHue(-0.5), tolerance)
}
