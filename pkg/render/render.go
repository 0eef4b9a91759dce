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
// Package render paints a color wheel into an image: the hue ring, the
// saturation/value square, the decorative borders and both markers.
package render

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/srwiley/rasterx"
	"github.com/teradata-labs/colorwheel/pkg/color"
	"github.com/teradata-labs/colorwheel/pkg/config"
	"github.com/teradata-labs/colorwheel/pkg/picker"
	"github.com/teradata-labs/colorwheel/pkg/wheel"
	"golang.org/x/image/math/fixed"
)

// Style holds the decoration options that do not affect the geometry.
type Style struct {
	Background           color.Color
	Border               color.Color
	MatteBorderWidth     float64
	InnerBorderGapRadian float64
}

// StyleFromConfig parses the colors in cfg.
func StyleFromConfig(cfg config.Config) (Style, error) {
	bg, err := color.Parse(cfg.BackgroundColor)
	if err != nil {
		return Style{}, fmt.Errorf("background_color: %w", err)
	}
	border, err := color.Parse(cfg.BorderColor)
	if err != nil {
		return Style{}, fmt.Errorf("border_color: %w", err)
	}
	return Style{
		Background:           bg,
		Border:               border,
		MatteBorderWidth:     cfg.MatteBorderWidth,
		InnerBorderGapRadian: cfg.InnerBorderGapRadian,
	}, nil
}

// Draw paints the wheel for c on a square image of ceil(g.Size*scale)
// pixels. A scale above 1 supersamples; pair it with Fit to get smooth
// edges at the original size.
func Draw(c color.Color, g wheel.Geometry, style Style, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	g = scaleGeometry(g, scale)
	side := int(math.Ceil(g.Size))
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	p := &painter{img: img, center: g.Center()}
	p.ring(g)
	p.square(g, c.Hue())
	p.borders(g, style, scale)
	p.markers(g, picker.ComputeDisplay(c, g), scale)
	return img
}

func scaleGeometry(g wheel.Geometry, k float64) wheel.Geometry {
	if k == 1 {
		return g
	}
	return wheel.NewGeometry(g.Size*k, (g.OuterRadius-g.InnerRadius)*k, g.StartAngle, wheel.Borders{
		Width:  g.Borders.Width * k,
		Offset: g.Borders.Offset * k,
	})
}

type painter struct {
	img    *image.RGBA
	center wheel.Point
}

func (p *painter) stroker(width float64) *rasterx.Stroker {
	b := p.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), p.img, b)
	s := rasterx.NewStroker(b.Dx(), b.Dy(), scanner)
	s.SetStroke(toFixed(width), 4<<6, rasterx.ButtCap, nil, rasterx.RoundGap, rasterx.Round)
	return s
}

func (p *painter) filler() *rasterx.Filler {
	b := p.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), p.img, b)
	return rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
}

// ring strokes the middle circle with the ring thickness. Each pixel takes
// the hue the mapper would report for a press at its center.
func (p *painter) ring(g wheel.Geometry) {
	s := p.stroker(g.OuterRadius - g.InnerRadius)
	s.SetColor(rasterx.ColorFunc(func(x, y int) stdcolor.Color {
		hue := wheel.AngleToHue(pixelCenter(x, y), p.center, g.StartAngle)
		return color.FromHSV(hue, 1, 1)
	}))
	rasterx.AddCircle(p.center.X, p.center.Y, g.MiddleRadius, s)
	s.Draw()
}

// square fills the saturation/value square: white blended towards the pure
// hue along x, then towards black down y.
func (p *painter) square(g wheel.Geometry, hue float64) {
	origin := g.SquareOrigin(p.center)
	pure := colorful.Hsv(color.NormalizeHue(hue), 1, 1)
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}

	f := p.filler()
	f.SetColor(rasterx.ColorFunc(func(x, y int) stdcolor.Color {
		rel := pixelCenter(x, y).Sub(origin)
		s := clamp01(rel.X / g.SquareSize)
		v := 1 - clamp01(rel.Y/g.SquareSize)
		return white.BlendRgb(pure, s).BlendRgb(black, 1-v).Clamped()
	}))
	rasterx.AddRect(origin.X, origin.Y, origin.X+g.SquareSize, origin.Y+g.SquareSize, 0, f)
	f.Draw()
}

// borders draws the matte edges of the ring in the background color, the
// outer border line and four quarter arcs around the square.
func (p *painter) borders(g wheel.Geometry, style Style, scale float64) {
	if w := style.MatteBorderWidth * scale; w > 0 {
		s := p.stroker(w)
		s.SetColor(style.Background)
		rasterx.AddCircle(p.center.X, p.center.Y, g.OuterRadius, s)
		rasterx.AddCircle(p.center.X, p.center.Y, g.InnerRadius, s)
		s.Draw()
	}

	w := g.Borders.Width
	if w <= 0 {
		return
	}
	s := p.stroker(w)
	s.SetColor(style.Border)
	rasterx.AddCircle(p.center.X, p.center.Y, g.OuterRadius+g.Borders.Offset, s)

	r := g.InnerRadius - g.Borders.Offset
	gap := style.InnerBorderGapRadian
	for k := 0; k < 4; k++ {
		mid := float64(k) * math.Pi / 2
		p.arc(s, r, mid-math.Pi/4+gap, mid+math.Pi/4-gap)
	}
	s.Draw()
}

// arc adds an open polyline approximating the arc from a0 to a1.
func (p *painter) arc(a rasterx.Adder, r, a0, a1 float64) {
	if a1 <= a0 || r <= 0 {
		return
	}
	steps := int(math.Ceil((a1 - a0) * r / 2))
	if steps < 4 {
		steps = 4
	}
	at := func(t float64) fixed.Point26_6 {
		return rasterx.ToFixedP(p.center.X+r*math.Cos(t), p.center.Y+r*math.Sin(t))
	}
	a.Start(at(a0))
	for i := 1; i <= steps; i++ {
		a.Line(at(a0 + (a1-a0)*float64(i)/float64(steps)))
	}
	a.Stop(false)
}

func (p *painter) markers(g wheel.Geometry, d picker.Display, scale float64) {
	ringMarker := (g.OuterRadius - g.InnerRadius) / 2
	s := p.stroker(2 * scale)
	s.SetColor(d.HueMarker.Color)
	rasterx.AddCircle(d.HueMarker.Position.X, d.HueMarker.Position.Y, ringMarker*0.6, s)
	s.Draw()

	at := g.SquareOrigin(p.center).Add(d.ColorMarker.Position)
	s = p.stroker(1.5 * scale)
	s.SetColor(d.ColorMarker.Color)
	rasterx.AddCircle(at.X, at.Y, 4*scale, s)
	s.Draw()
}

func pixelCenter(x, y int) wheel.Point {
	return wheel.Pt(float64(x)+0.5, float64(y)+0.5)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
