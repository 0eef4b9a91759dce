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
package wheel

import (
	"math"

	"github.com/teradata-labs/colorwheel/pkg/color"
)

// Region is the part of the wheel a pointer sample falls into.
type Region int

const (
	// RegionNone is outside both the ring and the square. Samples here are
	// dropped.
	RegionNone Region = iota
	// RegionRing is the hue ring.
	RegionRing
	// RegionSquare is the saturation/value square.
	RegionSquare
)

func (r Region) String() string {
	switch r {
	case RegionRing:
		return "ring"
	case RegionSquare:
		return "square"
	default:
		return "none"
	}
}

// ClassifyRegion decides which region point falls into. The ring is tested
// first and its bounds are inclusive; the square is tested relative to its
// top-left corner and is inclusive on all sides.
func ClassifyRegion(point, center Point, g Geometry) Region {
	distance := point.Distance(center)
	if distance >= g.InnerRadius && distance <= g.OuterRadius {
		return RegionRing
	}

	rel := point.Sub(squareOrigin(center, g.SquareSize))
	if rel.X >= 0 && rel.X <= g.SquareSize && rel.Y >= 0 && rel.Y <= g.SquareSize {
		return RegionSquare
	}
	return RegionNone
}

// AngleToHue converts the angle of point around center into a hue in
// [0,360). The atan2 angle is shifted from [-π,π] onto [0,360] degrees and
// rotated by startAngle.
func AngleToHue(point, center Point, startAngle float64) float64 {
	d := point.Sub(center)
	phi := math.Atan2(d.Y, d.X)
	return color.NormalizeHue(rad2deg(phi) + startAngle)
}

// PointToSaturationValue maps a point in (or around) the square to
// saturation and value. Each axis is clamped to the square edge first, so
// dragging outside the square pins the result to its border.
func PointToSaturationValue(point, center Point, squareSize float64) (saturation, value float64) {
	rel := point.Sub(squareOrigin(center, squareSize))
	x := clampEdge(rel.X, 0, squareSize)
	y := clampEdge(rel.Y, 0, squareSize)
	return x / squareSize, 1 - y/squareSize
}

// HueToMarkerPosition returns where the hue marker sits on the ring's
// middle circle. It is the inverse of AngleToHue at radius middleRadius.
func HueToMarkerPosition(hue, startAngle, middleRadius float64, center Point) Point {
	phi := deg2rad(hue + 180 - startAngle)
	return Point{
		X: center.X + middleRadius*math.Cos(phi),
		Y: center.Y + middleRadius*math.Sin(phi),
	}
}

// ColorToMarkerPosition returns where the saturation/value marker sits,
// relative to the square's top-left corner.
func ColorToMarkerPosition(saturation, value, squareSize float64) Point {
	return Point{X: saturation * squareSize, Y: (1 - value) * squareSize}
}

// clampEdge pins v to hi when above it and to lo when below zero.
// Callers always pass lo = 0.
// TODO(ux): confirm whether the lower bound should compare against lo
// instead of zero before any caller passes a non-zero lo.
func clampEdge(v, lo, hi float64) float64 {
	switch {
	case v > hi:
		return hi
	case v < 0:
		return lo
	default:
		return v
	}
}

// rad2deg maps an atan2 angle in [-π,π] onto [0,360].
func rad2deg(rad float64) float64 {
	return (rad + math.Pi) / (2 * math.Pi) * 360
}

func deg2rad(deg float64) float64 {
	return math.Mod(deg, 360) / 180 * math.Pi
}
