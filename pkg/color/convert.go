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

import "math"

// NormalizeHue maps any hue in degrees onto [0,360).
func NormalizeHue(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HSVToRGB converts HSV to RGB channels on [0,255]. The result is not
// rounded so it can be chained into further conversions.
//
// The hue is normalized first, so out-of-range hues are safe here.
func HSVToRGB(hue, saturation, value float64) (r, g, b float64) {
	chroma := value * saturation
	h := NormalizeHue(hue) / 60
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))

	var r1, g1, b1 float64
	switch int(math.Floor(h)) {
	case 0:
		r1, g1, b1 = chroma, x, 0
	case 1:
		r1, g1, b1 = x, chroma, 0
	case 2:
		r1, g1, b1 = 0, chroma, x
	case 3:
		r1, g1, b1 = 0, x, chroma
	case 4:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	m := value - chroma
	return (r1 + m) * 255, (g1 + m) * 255, (b1 + m) * 255
}

// RGBToHSL converts RGB channels on [0,255] to hue in degrees, saturation
// and lightness in [0,1]. Achromatic input yields hue 0.
func RGBToHSL(r, g, b float64) (hue, saturation, lightness float64) {
	r /= 255
	g /= 255
	b /= 255

	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))
	delta := cmax - cmin

	switch {
	case delta == 0:
		hue = 0
	case cmax == r:
		hue = math.Mod((g-b)/delta, 6)
	case cmax == g:
		hue = (b-r)/delta + 2
	default:
		hue = (r-g)/delta + 4
	}
	hue = NormalizeHue(hue * 60)

	lightness = (cmax + cmin) / 2
	if delta != 0 {
		saturation = delta / (1 - math.Abs(2*lightness-1))
	}
	return hue, saturation, lightness
}

// HSLToHSV converts HSL to HSV. The hue passes through unchanged.
func HSLToHSV(hue, saturation, lightness float64) (h, s, v float64) {
	v = saturation*math.Min(lightness, 1-lightness) + lightness
	if v != 0 {
		s = 2 - 2*lightness/v
	}
	return hue, s, v
}

// HSVToHSL converts HSV to HSL. The hue passes through unchanged.
func HSVToHSL(hue, saturation, value float64) (h, s, l float64) {
	l = value - value*saturation/2
	m := math.Min(l, 1-l)
	if m != 0 {
		s = (value - l) / m
	}
	return hue, s, l
}
