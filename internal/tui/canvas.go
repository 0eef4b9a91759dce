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
package tui

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background, giving two square-ish pixels per terminal cell.
const upperHalf = "▀"

// halfBlocks converts img into rows of half-block cells. Odd heights leave
// the last background half empty.
func halfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(img.At(x, y))
			if y+1 < b.Max.Y {
				style = style.Background(img.At(x, y+1))
			}
			sb.WriteString(style.Render(upperHalf))
		}
	}
	return sb.String()
}

// cellToPixel maps a terminal cell to the pixel at the center of its area
// on a half-block canvas.
func cellToPixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(2*y) + 1
}
