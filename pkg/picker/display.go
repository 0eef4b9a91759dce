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
package picker

import (
	"github.com/teradata-labs/colorwheel/pkg/color"
	"github.com/teradata-labs/colorwheel/pkg/wheel"
)

// Marker is a position indicator and the color it should be drawn with.
type Marker struct {
	Position wheel.Point
	Color    color.Color
}

// Display is everything a collaborator needs to draw the current state.
type Display struct {
	// Background fills the square: the current hue at full saturation and
	// value.
	Background color.Color
	// HueMarker sits on the ring's middle circle, in widget-local
	// coordinates (the wheel centered at Geometry.Center).
	HueMarker Marker
	// ColorMarker sits in the square, relative to its top-left corner.
	ColorMarker Marker
}

// Display computes the marker positions and colors for the current color.
func (p *Picker) Display() Display {
	return ComputeDisplay(p.color, p.geometry)
}

// ComputeDisplay computes the marker positions and colors for c on a wheel
// of geometry g. Markers use the complementary hue so they stay visible.
func ComputeDisplay(c color.Color, g wheel.Geometry) Display {
	hue, saturation, value := c.HSV()
	markerHue := color.NormalizeHue(hue + 180)

	return Display{
		Background: color.FromHSV(hue, 1, 1),
		HueMarker: Marker{
			Position: wheel.HueToMarkerPosition(hue, g.StartAngle, g.MiddleRadius, g.Center()),
			Color:    color.FromHSV(markerHue, 1, 1),
		},
		ColorMarker: Marker{
			Position: wheel.ColorToMarkerPosition(saturation, value, g.SquareSize),
			Color:    color.FromHSV(markerHue, value, 1-value*(1-saturation)),
		},
	}
}
