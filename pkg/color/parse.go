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
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColorString is wrapped by every ParseError.
var ErrInvalidColorString = errors.New("not a valid color string")

// ParseError reports a color string that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %q", ErrInvalidColorString, e.Input)
	}
	return fmt.Sprintf("%s: %q: %s", ErrInvalidColorString, e.Input, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidColorString.
func (e *ParseError) Unwrap() error {
	return ErrInvalidColorString
}

var (
	shorthandHexPattern = regexp.MustCompile(`(?i)^#?([a-f\d])([a-f\d])([a-f\d])$`)
	fullHexPattern      = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)
	rgbBodyPattern      = regexp.MustCompile(`rgb\((.+)\)`)
	hslBodyPattern      = regexp.MustCompile(`hsl\((.+)\)`)
)

// HexToRGB parses "#rgb" or "#rrggbb" (the leading # is optional, digits are
// case-insensitive).
func HexToRGB(hex string) (r, g, b int, err error) {
	expanded := shorthandHexPattern.ReplaceAllString(hex, "$1$1$2$2$3$3")

	m := fullHexPattern.FindStringSubmatch(expanded)
	if m == nil {
		return 0, 0, 0, &ParseError{Input: hex, Reason: "expected 3 or 6 hex digits"}
	}

	channels := [3]int{}
	for i := range channels {
		n, perr := strconv.ParseUint(m[i+1], 16, 8)
		if perr != nil {
			return 0, 0, 0, &ParseError{Input: hex, Reason: perr.Error()}
		}
		channels[i] = int(n)
	}
	return channels[0], channels[1], channels[2], nil
}

// RGBToHex formats channels as "#rrggbb". Channels are clamped to [0,255].
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b))
}

// ParseString parses a color string into HSV. Accepted forms:
//
//	#fff, #ffffff
//	rgb(255, 255, 255), rgb(100%, 100%, 100%)
//	hsl(192, 0%, 100%)
//
// rgb() components containing % are read as percentages of 255. hsl()
// components containing % are read as fractions of 1; the others are taken
// as-is. Hex and rgb input go through HSL on the way to HSV, hsl input
// converts directly.
func ParseString(s string) (hue, saturation, value float64, err error) {
	s = strings.TrimSpace(s)

	var lightness float64
	switch {
	case strings.HasPrefix(s, "#"):
		r, g, b, herr := HexToRGB(s)
		if herr != nil {
			return 0, 0, 0, herr
		}
		hue, saturation, lightness = RGBToHSL(float64(r), float64(g), float64(b))

	case strings.Contains(s, "rgb"):
		body, berr := functionBody(rgbBodyPattern, s)
		if berr != nil {
			return 0, 0, 0, berr
		}
		percent := strings.Contains(body, "%")
		if percent {
			body = strings.ReplaceAll(body, "%", "")
		}
		ch, perr := parseTriple(s, body)
		if perr != nil {
			return 0, 0, 0, perr
		}
		if percent {
			for i := range ch {
				ch[i] = ch[i] / 100 * 255
			}
		}
		hue, saturation, lightness = RGBToHSL(ch[0], ch[1], ch[2])

	case strings.Contains(s, "hsl"):
		body, berr := functionBody(hslBodyPattern, s)
		if berr != nil {
			return 0, 0, 0, berr
		}
		parts := strings.Split(body, ",")
		if len(parts) != 3 {
			return 0, 0, 0, &ParseError{Input: s, Reason: fmt.Sprintf("expected 3 components, got %d", len(parts))}
		}
		var hsl [3]float64
		for i, part := range parts {
			percent := strings.Contains(part, "%")
			n, perr := parseNumber(s, strings.Replace(part, "%", "", 1))
			if perr != nil {
				return 0, 0, 0, perr
			}
			if percent {
				n /= 100
			}
			hsl[i] = n
		}
		hue, saturation, lightness = hsl[0], hsl[1], hsl[2]

	default:
		return 0, 0, 0, &ParseError{Input: s, Reason: "expected #hex, rgb() or hsl()"}
	}

	hue, saturation, value = HSLToHSV(hue, saturation, lightness)
	return hue, saturation, value, nil
}

func functionBody(pattern *regexp.Regexp, s string) (string, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return "", &ParseError{Input: s, Reason: "missing parenthesized components"}
	}
	return m[1], nil
}

func parseTriple(input, body string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return out, &ParseError{Input: input, Reason: fmt.Sprintf("expected 3 components, got %d", len(parts))}
	}
	for i, part := range parts {
		n, err := parseNumber(input, part)
		if err != nil {
			return out, err
		}
		out[i] = n
	}
	return out, nil
}

func parseNumber(input, part string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
	if err != nil {
		return 0, &ParseError{Input: input, Reason: fmt.Sprintf("component %q is not a number", strings.TrimSpace(part))}
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, &ParseError{Input: input, Reason: fmt.Sprintf("component %q is not finite", strings.TrimSpace(part))}
	}
	return n, nil
}
