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
// Package wheel maps pointer positions on a hue ring and an inscribed
// saturation/value square to HSV components, and back to marker positions.
//
// Everything here is a pure function of a Geometry and its inputs; callers
// own the color state and the drag session.
package wheel

import (
	"fmt"
	"math"
)

// Point is a 2-D position in pixels. Y grows downwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// PointerSample is one pointer position together with the center of the
// ring/square it was taken against.
type PointerSample struct {
	Point  Point
	Center Point
}

// Borders are the reserved border dimensions drawn around the ring. They
// shrink the ring and the square.
type Borders struct {
	// Width is the stroke width of the outer border line.
	Width float64
	// Offset is the gap between the ring and its border lines.
	Offset float64
}

// DefaultBorders are the border dimensions used by the stock widget.
var DefaultBorders = Borders{Width: 1, Offset: 1}

// Geometry describes the ring and square of a wheel of a given size. It is
// derived once per widget size and not mutated afterwards.
type Geometry struct {
	Size         float64 `json:"size"`
	InnerRadius  float64 `json:"inner_radius"`
	OuterRadius  float64 `json:"outer_radius"`
	MiddleRadius float64 `json:"middle_radius"`
	SquareSize   float64 `json:"square_size"`
	StartAngle   float64 `json:"start_angle"`
	Borders      Borders `json:"borders"`
}

// NewGeometry derives the ring and square dimensions for a wheel with the
// given overall diameter, ring thickness and start angle (degrees).
//
// The outer radius leaves room for the border line; the square is inscribed
// in the inner circle with a gap of Borders.Offset on every side.
func NewGeometry(size, thickness, startAngle float64, borders Borders) Geometry {
	radius := size/2 - borders.Offset - borders.Width
	inner := radius - thickness
	return Geometry{
		Size:         size,
		InnerRadius:  inner,
		OuterRadius:  radius,
		MiddleRadius: (inner + radius) / 2,
		SquareSize:   ((inner-borders.Offset)/math.Sqrt2 - borders.Offset) * 2,
		StartAngle:   startAngle,
		Borders:      borders,
	}
}

// Center is the center of the wheel in widget-local coordinates.
func (g Geometry) Center() Point {
	return Point{X: g.Size / 2, Y: g.Size / 2}
}

// SquareOrigin returns the top-left corner of the square for a wheel
// centered at center.
func (g Geometry) SquareOrigin(center Point) Point {
	return squareOrigin(center, g.SquareSize)
}

// Validate reports geometry that cannot host a ring and a square.
func (g Geometry) Validate() error {
	if g.Size <= 0 {
		return fmt.Errorf("size must be positive, got %g", g.Size)
	}
	if g.InnerRadius <= 0 {
		return fmt.Errorf("ring thickness leaves no inner circle (inner radius %g)", g.InnerRadius)
	}
	if g.SquareSize <= 0 {
		return fmt.Errorf("inner circle too small for the color square (square size %g)", g.SquareSize)
	}
	return nil
}

func squareOrigin(center Point, squareSize float64) Point {
	return Point{X: center.X - squareSize/2, Y: center.Y - squareSize/2}
}
