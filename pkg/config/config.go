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
// Package config holds the color wheel widget configuration: defaults,
// merging, validation and loading from files, environment and flags.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/teradata-labs/colorwheel/pkg/color"
	"github.com/teradata-labs/colorwheel/pkg/wheel"
)

// Config is the complete widget configuration. Treat it as immutable: derive
// variants with MergeDefaults instead of mutating a shared value.
type Config struct {
	// Size is the overall wheel diameter in pixels.
	Size float64 `mapstructure:"size" yaml:"size" json:"size"`
	// Thickness is the width of the hue ring in pixels.
	Thickness float64 `mapstructure:"thickness" yaml:"thickness" json:"thickness"`
	// StartAngle rotates the ring: the hue at the 9 o'clock position.
	StartAngle float64 `mapstructure:"start_angle" yaml:"start_angle" json:"start_angle"`

	// Cosmetic colors, passed through to rendering only.
	BackgroundColor string `mapstructure:"background_color" yaml:"background_color" json:"background_color"`
	BorderColor     string `mapstructure:"border_color" yaml:"border_color" json:"border_color"`

	// InitColor seeds the picker. Any string accepted by color.Parse.
	InitColor string `mapstructure:"init_color" yaml:"init_color" json:"init_color"`

	// Reserved border dimensions. Changing them is not recommended.
	MatteBorderWidth     float64 `mapstructure:"matte_border_width" yaml:"matte_border_width" json:"matte_border_width"`
	RealBorderWidth      float64 `mapstructure:"real_border_width" yaml:"real_border_width" json:"real_border_width"`
	RealBorderOffset     float64 `mapstructure:"real_border_offset" yaml:"real_border_offset" json:"real_border_offset"`
	InnerBorderGapRadian float64 `mapstructure:"inner_border_gap_radian" yaml:"inner_border_gap_radian" json:"inner_border_gap_radian"`

	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format" json:"format"` // text, json
}

// Defaults returns the stock widget configuration.
func Defaults() Config {
	return Config{
		Size:                 207,
		Thickness:            21,
		StartAngle:           330,
		BackgroundColor:      "#fff",
		BorderColor:          "#acacac",
		InitColor:            "#fff",
		MatteBorderWidth:     2,
		RealBorderWidth:      1,
		RealBorderOffset:     1,
		InnerBorderGapRadian: math.Pi / 180,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Overrides lists the options a caller may change. Nil fields keep the base
// value, so zero is a valid override (a start angle of 0, for instance).
type Overrides struct {
	Size            *float64
	Thickness       *float64
	StartAngle      *float64
	BackgroundColor *string
	BorderColor     *string
	InitColor       *string
}

// MergeDefaults returns base with every non-nil override applied.
func MergeDefaults(base Config, o Overrides) Config {
	merged := base
	if o.Size != nil {
		merged.Size = *o.Size
	}
	if o.Thickness != nil {
		merged.Thickness = *o.Thickness
	}
	if o.StartAngle != nil {
		merged.StartAngle = *o.StartAngle
	}
	if o.BackgroundColor != nil {
		merged.BackgroundColor = *o.BackgroundColor
	}
	if o.BorderColor != nil {
		merged.BorderColor = *o.BorderColor
	}
	if o.InitColor != nil {
		merged.InitColor = *o.InitColor
	}
	return merged
}

// Geometry derives the ring and square dimensions for this configuration.
func (c Config) Geometry() wheel.Geometry {
	return wheel.NewGeometry(c.Size, c.Thickness, c.StartAngle, wheel.Borders{
		Width:  c.RealBorderWidth,
		Offset: c.RealBorderOffset,
	})
}

// Validate checks dimensions and color strings. All problems are reported
// together.
func (c Config) Validate() error {
	var errs []error

	if c.Size <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %g", c.Size))
	}
	if c.Thickness <= 0 {
		errs = append(errs, fmt.Errorf("thickness must be positive, got %g", c.Thickness))
	}
	if c.Size > 0 && c.Thickness >= c.Size/2 {
		errs = append(errs, fmt.Errorf("thickness %g must be less than half the size %g", c.Thickness, c.Size))
	}
	if c.MatteBorderWidth < 0 || c.RealBorderWidth < 0 || c.RealBorderOffset < 0 {
		errs = append(errs, errors.New("border widths and offsets must not be negative"))
	}
	if c.InnerBorderGapRadian < 0 || c.InnerBorderGapRadian >= math.Pi/4 {
		errs = append(errs, fmt.Errorf("inner_border_gap_radian must be in [0, π/4), got %g", c.InnerBorderGapRadian))
	}
	if len(errs) == 0 {
		if err := c.Geometry().Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, field := range []struct{ name, value string }{
		{"background_color", c.BackgroundColor},
		{"border_color", c.BorderColor},
		{"init_color", c.InitColor},
	} {
		if _, err := color.Parse(field.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field.name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
