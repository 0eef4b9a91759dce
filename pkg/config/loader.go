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
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigFileName is the name of the config file, without extension.
	DefaultConfigFileName = "colorwheel"
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "COLORWHEEL"
)

// SetDefaults registers Defaults() on v so every key is known to viper
// (required for env lookups and Unmarshal).
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("size", d.Size)
	v.SetDefault("thickness", d.Thickness)
	v.SetDefault("start_angle", d.StartAngle)
	v.SetDefault("background_color", d.BackgroundColor)
	v.SetDefault("border_color", d.BorderColor)
	v.SetDefault("init_color", d.InitColor)
	v.SetDefault("matte_border_width", d.MatteBorderWidth)
	v.SetDefault("real_border_width", d.RealBorderWidth)
	v.SetDefault("real_border_offset", d.RealBorderOffset)
	v.SetDefault("inner_border_gap_radian", d.InnerBorderGapRadian)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Load reads configuration into a Config.
//
// Priority: flags bound to v > environment (COLORWHEEL_*) > config file >
// defaults. With an empty cfgFile the file is searched as colorwheel.yaml in
// the data directory, the working directory and /etc/colorwheel; a missing
// file is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(GetDataDir())
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/colorwheel/")
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
