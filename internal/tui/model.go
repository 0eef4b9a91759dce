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
// Package tui is an interactive terminal front end for a color picker. The
// wheel is painted with half-block cells and driven by mouse drags or the
// keyboard.
package tui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/teradata-labs/colorwheel/internal/log"
	"github.com/teradata-labs/colorwheel/pkg/color"
	"github.com/teradata-labs/colorwheel/pkg/picker"
	"github.com/teradata-labs/colorwheel/pkg/render"
	"github.com/teradata-labs/colorwheel/pkg/wheel"
	"go.uber.org/zap"
)

const (
	// lines below the wheel: value, help and a spacer
	statusLines    = 3
	minWheelPixels = 24
	supersample    = 3

	hueStep      = 5
	fractionStep = 0.05
)

var formats = []color.Format{
	color.FormatHexString,
	color.FormatRGBString,
	color.FormatHSL,
	color.FormatRGB,
	color.FormatHSV,
}

// Model is the bubbletea model wrapping a picker.
type Model struct {
	picker *picker.Picker
	style  render.Style
	keyMap KeyMap
	help   help.Model
	logger *zap.Logger

	// ring thickness relative to the wheel size, kept across resizes
	ratio float64

	width, height int
	tooSmall      bool
	canvas        string
	dirty         bool

	format   int
	selected bool
}

// New creates a model for p. The wheel is resized to fit the terminal on
// the first WindowSizeMsg.
func New(p *picker.Picker, style render.Style) *Model {
	cfg := p.Config()
	m := &Model{
		picker: p,
		style:  style,
		keyMap: DefaultKeyMap(),
		help:   help.New(),
		logger: log.Named("tui"),
		ratio:  cfg.Thickness / cfg.Size,
		dirty:  true,
	}
	p.OnUpdate(func(string) {
		m.dirty = true
	})
	return m
}

// Selected returns the color and true if the user confirmed a pick.
func (m *Model) Selected() (color.Color, bool) {
	return m.picker.Color(), m.selected
}

// Format returns the output form currently shown in the status line.
func (m *Model) Format() color.Format {
	return formats[m.format]
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft || m.tooSmall {
			return m, nil
		}
		m.picker.Press(wheel.PointerSample{
			Point:  m.pointAt(msg.X, msg.Y),
			Center: m.picker.Geometry().Center(),
		})
	case tea.MouseMotionMsg:
		m.picker.Move(m.pointAt(msg.X, msg.Y))
	case tea.MouseReleaseMsg:
		m.picker.Release()
	}
	return m, nil
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m *Model) pointAt(x, y int) wheel.Point {
	px, py := cellToPixel(x, y)
	return wheel.Pt(px, py)
}

func (m *Model) setSize(width, height int) {
	m.width, m.height = width, height

	side := min(width, 2*(height-statusLines))
	side -= side % 2
	if side < minWheelPixels {
		m.tooSmall = true
		return
	}

	size := float64(side)
	if err := m.picker.Resize(size, size*m.ratio); err != nil {
		m.logger.Debug("resize rejected", zap.Int("side", side), zap.Error(err))
		m.tooSmall = true
		return
	}
	m.tooSmall = false
	m.dirty = true
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	h, s, v := m.picker.Color().HSV()
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keyMap.Select):
		m.selected = true
		return tea.Quit
	case key.Matches(msg, m.keyMap.HueUp):
		m.picker.SetHSV(color.NormalizeHue(h+hueStep), s, v)
	case key.Matches(msg, m.keyMap.HueDown):
		m.picker.SetHSV(color.NormalizeHue(h-hueStep), s, v)
	case key.Matches(msg, m.keyMap.ValueUp):
		m.picker.SetHSV(h, s, clamp01(v+fractionStep))
	case key.Matches(msg, m.keyMap.ValueDown):
		m.picker.SetHSV(h, s, clamp01(v-fractionStep))
	case key.Matches(msg, m.keyMap.SaturationUp):
		m.picker.SetHSV(h, clamp01(s+fractionStep), v)
	case key.Matches(msg, m.keyMap.SaturationDown):
		m.picker.SetHSV(h, clamp01(s-fractionStep), v)
	case key.Matches(msg, m.keyMap.Format):
		m.format = (m.format + 1) % len(formats)
	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) render() string {
	if m.width == 0 {
		return ""
	}
	if m.tooSmall {
		return "terminal too small for the color wheel"
	}

	if m.dirty {
		g := m.picker.Geometry()
		img := render.Draw(m.picker.Color(), g, m.style, supersample)
		m.canvas = halfBlocks(render.Fit(img, int(g.Size), int(g.Size)))
		m.dirty = false
	}

	c := m.picker.Color()
	swatch := lipgloss.NewStyle().Background(c).Render(strings.Repeat(" ", 6))
	value := lipgloss.NewStyle().Bold(true).Render(c.Get(m.Format()).String())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.canvas,
		"",
		swatch+" "+value,
		m.help.View(m.keyMap),
	)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
