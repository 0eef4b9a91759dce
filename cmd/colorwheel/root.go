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
package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teradata-labs/colorwheel/internal/log"
	"github.com/teradata-labs/colorwheel/internal/version"
	"github.com/teradata-labs/colorwheel/pkg/config"
	"go.uber.org/zap"
)

var (
	cfgFile string
	v       = viper.New()
	cfg     = config.Defaults()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "colorwheel",
	Short: "HSV color wheel picker and color conversion tool",
	Long: heredoc.Doc(`
		colorwheel is a hue ring with a saturation/value square.

		Pick colors interactively in the terminal, map pointer coordinates to
		colors the way the wheel does, convert between hex, rgb() and hsl()
		notations, or render the wheel to a PNG.
	`),
	Version:      version.Get(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command
func Execute() {
	defer func() { _ = log.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	d := config.Defaults()
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&cfgFile, "config", "", "config file (default: $COLORWHEEL_DATA_DIR/colorwheel.yaml)")

	// Wheel flags
	pf.Float64("size", d.Size, "wheel diameter in pixels")
	pf.Float64("thickness", d.Thickness, "hue ring thickness in pixels")
	pf.Float64("start-angle", d.StartAngle, "hue at the 9 o'clock position, in degrees")
	pf.String("init-color", d.InitColor, "initial color (#hex, rgb() or hsl())")
	pf.String("background-color", d.BackgroundColor, "background color")
	pf.String("border-color", d.BorderColor, "border line color")

	// Logging flags
	pf.String("log-level", d.Logging.Level, "Log level (debug, info, warn, error)")
	pf.String("log-format", d.Logging.Format, "Log format (text, json)")

	// Bind flags to viper
	_ = v.BindPFlag("size", pf.Lookup("size"))
	_ = v.BindPFlag("thickness", pf.Lookup("thickness"))
	_ = v.BindPFlag("start_angle", pf.Lookup("start-angle"))
	_ = v.BindPFlag("init_color", pf.Lookup("init-color"))
	_ = v.BindPFlag("background_color", pf.Lookup("background-color"))
	_ = v.BindPFlag("border_color", pf.Lookup("border-color"))

	_ = v.BindPFlag("logging.level", pf.Lookup("log-level"))
	_ = v.BindPFlag("logging.format", pf.Lookup("log-format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if err := log.Configure(loaded.Logging.Level, loaded.Logging.Format); err != nil {
		return err
	}
	cfg = loaded
	log.Debug("config loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.Float64("size", cfg.Size),
		zap.Float64("thickness", cfg.Thickness),
		zap.Float64("start_angle", cfg.StartAngle))
	return nil
}
