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
// Package picker drives a color wheel: it owns the current color and the
// drag session, applies pointer samples through the wheel mapping and
// notifies observers after every change.
//
// A Picker is not safe for concurrent use. Collaborators feed it from a
// single event loop.
package picker

import (
	"fmt"

	"github.com/teradata-labs/colorwheel/internal/log"
	"github.com/teradata-labs/colorwheel/internal/pubsub"
	"github.com/teradata-labs/colorwheel/pkg/color"
	"github.com/teradata-labs/colorwheel/pkg/config"
	"github.com/teradata-labs/colorwheel/pkg/wheel"
	"go.uber.org/zap"
)

// Mode is the state of the drag session.
type Mode int

const (
	// ModeIdle means no button is held.
	ModeIdle Mode = iota
	// ModeDraggingHue started with a press on the ring.
	ModeDraggingHue
	// ModeDraggingColor started with a press in the square.
	ModeDraggingColor
)

func (m Mode) String() string {
	switch m {
	case ModeDraggingHue:
		return "dragging-hue"
	case ModeDraggingColor:
		return "dragging-color"
	default:
		return "idle"
	}
}

// Option configures a Picker.
type Option func(*Picker)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *zap.Logger) Option {
	return func(p *Picker) {
		p.logger = l
	}
}

// Picker is the interactive state of one color wheel.
type Picker struct {
	cfg      config.Config
	geometry wheel.Geometry
	color    color.Color

	mode   Mode
	center wheel.Point

	subject *pubsub.Subject[string]
	logger  *zap.Logger
}

// New validates cfg, derives the geometry and seeds the color from
// cfg.InitColor.
func New(cfg config.Config, opts ...Option) (*Picker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Picker{
		cfg:      cfg,
		geometry: cfg.Geometry(),
		subject:  pubsub.NewSubject[string](),
		logger:   log.Named("picker"),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.SetColor(cfg.InitColor); err != nil {
		return nil, fmt.Errorf("init_color: %w", err)
	}
	return p, nil
}

// Config returns the configuration the picker was built from.
func (p *Picker) Config() config.Config {
	return p.cfg
}

// Geometry returns the current ring and square dimensions.
func (p *Picker) Geometry() wheel.Geometry {
	return p.geometry
}

// Color returns the current color.
func (p *Picker) Color() color.Color {
	return p.color
}

// Get returns the current color in the requested form.
func (p *Picker) Get(f color.Format) color.Value {
	return p.color.Get(f)
}

// Mode returns the state of the drag session.
func (p *Picker) Mode() Mode {
	return p.mode
}

// SetColor replaces the color with a parsed color string. Parse errors are
// returned as-is and leave the color unchanged.
func (p *Picker) SetColor(s string) error {
	h, sat, v, err := color.ParseString(s)
	if err != nil {
		return err
	}
	p.color.SetHSV(h, sat, v)
	p.changed()
	return nil
}

// SetHSV replaces the color with an HSV triple.
func (p *Picker) SetHSV(hue, saturation, value float64) {
	p.color.SetHSV(hue, saturation, value)
	p.changed()
}

// Resize re-derives the geometry for a new size and ring thickness. The
// color is kept and no update is published.
func (p *Picker) Resize(size, thickness float64) error {
	cfg := config.MergeDefaults(p.cfg, config.Overrides{Size: &size, Thickness: &thickness})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	p.cfg = cfg
	p.geometry = cfg.Geometry()
	p.logger.Debug("resized", zap.Float64("size", size), zap.Float64("thickness", thickness))
	return nil
}

// Press starts a drag session. A press on the ring sets the hue and a press
// in the square sets saturation and value; anywhere else is ignored. The
// sample's center is kept for the rest of the session.
//
// A press while a session is already active is ignored and returns
// RegionNone.
func (p *Picker) Press(sample wheel.PointerSample) wheel.Region {
	if p.mode != ModeIdle {
		p.logger.Debug("press ignored while dragging", zap.Stringer("mode", p.mode))
		return wheel.RegionNone
	}

	region := wheel.ClassifyRegion(sample.Point, sample.Center, p.geometry)
	switch region {
	case wheel.RegionRing:
		p.center = sample.Center
		p.mode = ModeDraggingHue
		p.applyHue(sample.Point)
	case wheel.RegionSquare:
		p.center = sample.Center
		p.mode = ModeDraggingColor
		p.applySaturationValue(sample.Point)
	default:
		p.logger.Debug("press outside wheel dropped", zap.Stringer("point", sample.Point))
		return region
	}

	p.logger.Debug("drag started", zap.Stringer("mode", p.mode), zap.Stringer("point", sample.Point))
	return region
}

// Move applies a pointer move during a drag session. The session's mode,
// not the region under the pointer, picks the mapping. It reports whether
// the sample was applied (false when idle).
func (p *Picker) Move(point wheel.Point) bool {
	switch p.mode {
	case ModeDraggingHue:
		p.applyHue(point)
	case ModeDraggingColor:
		p.applySaturationValue(point)
	default:
		return false
	}
	return true
}

// Release ends the drag session.
func (p *Picker) Release() {
	if p.mode == ModeIdle {
		return
	}
	p.logger.Debug("drag ended", zap.Stringer("mode", p.mode))
	p.mode = ModeIdle
}

// Subscribe registers o for "update" events. The payload is the hex string
// of the new color; the picker is fully updated before o is notified.
func (p *Picker) Subscribe(o pubsub.Observer[string]) pubsub.SubscriptionID {
	return p.subject.Subscribe(pubsub.UpdatedEvent, o)
}

// OnUpdate is Subscribe for a plain callback.
func (p *Picker) OnUpdate(fn func(hex string)) pubsub.SubscriptionID {
	return p.Subscribe(pubsub.ObserverFunc[string](func(e pubsub.Event[string]) {
		fn(e.Payload)
	}))
}

// Unsubscribe removes a subscription. It reports whether id was found.
func (p *Picker) Unsubscribe(id pubsub.SubscriptionID) bool {
	return p.subject.Unsubscribe(id)
}

func (p *Picker) applyHue(point wheel.Point) {
	hue := wheel.AngleToHue(point, p.center, p.geometry.StartAngle)
	p.color.SetHue(hue)
	p.changed()
}

func (p *Picker) applySaturationValue(point wheel.Point) {
	s, v := wheel.PointToSaturationValue(point, p.center, p.geometry.SquareSize)
	p.color = color.FromHSV(p.color.Hue(), s, v)
	p.changed()
}

func (p *Picker) changed() {
	p.subject.Publish(pubsub.NewUpdatedEvent(p.color.HexString()))
}
