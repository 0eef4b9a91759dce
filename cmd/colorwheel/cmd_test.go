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
	"bytes"
	"encoding/json"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/colorwheel/pkg/color"
	"github.com/teradata-labs/colorwheel/pkg/config"
	"gopkg.in/yaml.v3"
)

// useConfig installs c as the loaded configuration for the duration of
// the test.
func useConfig(t *testing.T, c config.Config) {
	t.Helper()
	orig := cfg
	cfg = c
	t.Cleanup(func() { cfg = orig })
}

// restore resets package-level flag variables after the test.
func restore[T any](t *testing.T, p *T) {
	t.Helper()
	orig := *p
	t.Cleanup(func() { *p = orig })
}

// captureOut points cmd's output at a fresh buffer and detaches it again
// when the test ends, so later tests see the parent's writer.
func captureOut(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	return buf
}

func TestConvert(t *testing.T) {
	restore(t, &convertFormat)
	restore(t, &convertOutput)

	t.Run("text", func(t *testing.T) {
		convertFormat, convertOutput = "", "text"
		buf := captureOut(t, convertCmd)

		require.NoError(t, runConvert(convertCmd, []string{"#f80"}))
		out := buf.String()
		assert.Contains(t, out, "#ff8800")
		assert.Contains(t, out, "rgb(255, 136, 0)")
		assert.Contains(t, out, "hsl(32, 100%, 50%)")
		assert.NotContains(t, out, "\x1b[", "no swatch when not writing to a terminal")
	})

	t.Run("json", func(t *testing.T) {
		convertFormat, convertOutput = "", "json"
		buf := captureOut(t, convertCmd)

		require.NoError(t, runConvert(convertCmd, []string{"rgb(100%, 50%, 0%)"}))
		var got conversion
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "rgb(100%, 50%, 0%)", got.Input)
		assert.Equal(t, "#ff8000", got.Hex)
		assert.Equal(t, color.RGB{R: 255, G: 128, B: 0}, got.RGB)
	})

	t.Run("yaml", func(t *testing.T) {
		convertFormat, convertOutput = "", "yaml"
		buf := captureOut(t, convertCmd)

		require.NoError(t, runConvert(convertCmd, []string{"#000"}))
		var got conversion
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "#000000", got.Hex)
		assert.Equal(t, "hsl(0, 0%, 0%)", got.HSLString)
	})

	t.Run("single format", func(t *testing.T) {
		convertFormat, convertOutput = "rgb", "text"
		buf := captureOut(t, convertCmd)

		require.NoError(t, runConvert(convertCmd, []string{"hsl(120, 100%, 50%)"}))
		assert.Equal(t, "rgb(0, 255, 0)\n", buf.String())
	})

	t.Run("errors", func(t *testing.T) {
		convertFormat, convertOutput = "", "text"
		err := runConvert(convertCmd, []string{"teal"})
		assert.ErrorIs(t, err, color.ErrInvalidColorString)

		convertOutput = "xml"
		assert.Error(t, runConvert(convertCmd, []string{"#fff"}))

		convertFormat = "cmyk"
		assert.Error(t, runConvert(convertCmd, []string{"#fff"}))
	})
}

func TestMap(t *testing.T) {
	restore(t, &mapX)
	restore(t, &mapY)
	restore(t, &mapOutput)
	restore(t, &mapCenterX)
	restore(t, &mapCenterY)
	mapCenterX, mapCenterY = math.NaN(), math.NaN()

	c := config.Defaults()
	c.InitColor = "#f00"
	useConfig(t, c)

	tests := []struct {
		name   string
		x, y   float64
		region string
		color  string
	}{
		{name: "ring", x: 193.5, y: 103.5, region: "ring", color: "#00ff80"},
		{name: "square", x: 103.5, y: 103.5, region: "square", color: "#804040"},
		{name: "outside", x: 0, y: 0, region: "none", color: "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapX, mapY, mapOutput = tt.x, tt.y, "json"
			buf := captureOut(t, mapCmd)

			require.NoError(t, runMap(mapCmd, nil))
			var got mapping
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			assert.Equal(t, tt.region, got.Region)
			assert.Equal(t, tt.color, got.Color)
		})
	}

	t.Run("explicit center", func(t *testing.T) {
		mapCenterX, mapCenterY = 0, 0
		mapX, mapY, mapOutput = 90, 0, "text"
		buf := captureOut(t, mapCmd)

		require.NoError(t, runMap(mapCmd, nil))
		assert.Contains(t, buf.String(), "region: ring")
		assert.Contains(t, buf.String(), "color: #00ff80")
	})
}

func TestRender(t *testing.T) {
	restore(t, &renderOut)
	restore(t, &renderColor)
	restore(t, &renderScale)
	restore(t, &renderSupersample)
	useConfig(t, config.Defaults())

	t.Run("file", func(t *testing.T) {
		renderOut = filepath.Join(t.TempDir(), "wheel.png")
		renderColor, renderScale, renderSupersample = "#36c", 0.5, 1
		errBuf := new(bytes.Buffer)
		renderCmd.SetErr(errBuf)
		t.Cleanup(func() { renderCmd.SetErr(nil) })

		require.NoError(t, runRender(renderCmd, nil))
		f, err := os.Open(renderOut)
		require.NoError(t, err)
		defer f.Close()

		img, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 104, img.Bounds().Dx())
		assert.Contains(t, errBuf.String(), "104x104")
	})

	t.Run("stdout", func(t *testing.T) {
		renderOut, renderColor, renderScale, renderSupersample = "-", "", 1, 2
		buf := captureOut(t, renderCmd)

		require.NoError(t, runRender(renderCmd, nil))
		img, err := png.Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, 207, img.Bounds().Dy())
	})

	t.Run("invalid", func(t *testing.T) {
		renderOut, renderScale, renderSupersample = "-", 0, 1
		assert.Error(t, runRender(renderCmd, nil))

		renderScale, renderColor = 1, "nope"
		assert.ErrorIs(t, runRender(renderCmd, nil), color.ErrInvalidColorString)
	})
}

func TestPalette(t *testing.T) {
	restore(t, &paletteOutput)

	path := filepath.Join(t.TempDir(), "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimSpace(`
apiVersion: colorwheel/v1
kind: Palette
metadata:
  name: brand
spec:
  colors:
    - name: primary
      value: "#1e90ff"
    - name: accent
      value: "rgb(255, 128, 0)"
`)), 0o644))

	t.Run("text", func(t *testing.T) {
		paletteOutput = "text"
		buf := captureOut(t, paletteCmd)

		require.NoError(t, runPalette(paletteCmd, []string{path}))
		out := buf.String()
		assert.Contains(t, out, "brand (2 colors)")
		assert.Contains(t, out, "primary")
		assert.Contains(t, out, "#1e90ff")
		assert.Contains(t, out, "#ff8000")
	})

	t.Run("json", func(t *testing.T) {
		paletteOutput = "json"
		buf := captureOut(t, paletteCmd)

		require.NoError(t, runPalette(paletteCmd, []string{path}))
		var got []conversion
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "accent", got[1].Name)
		assert.Equal(t, color.RGB{R: 255, G: 128, B: 0}, got[1].RGB)
	})

	t.Run("by name", func(t *testing.T) {
		dataDir := t.TempDir()
		t.Setenv("COLORWHEEL_DATA_DIR", dataDir)
		require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "palettes"), 0o755))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, "palettes", "brand.yaml"), data, 0o644))

		paletteOutput = "text"
		buf := captureOut(t, paletteCmd)
		require.NoError(t, runPalette(paletteCmd, []string{"brand"}))
		assert.Contains(t, buf.String(), "brand (2 colors)")
	})

	t.Run("built-in", func(t *testing.T) {
		t.Setenv("COLORWHEEL_DATA_DIR", t.TempDir())
		paletteOutput = "text"
		buf := captureOut(t, paletteCmd)

		require.NoError(t, runPalette(paletteCmd, []string{"charmtone"}))
		assert.Contains(t, buf.String(), "charmtone (")
		assert.Contains(t, buf.String(), "#f37440")
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv("COLORWHEEL_DATA_DIR", t.TempDir())
		assert.Error(t, runPalette(paletteCmd, []string{"nothing-here"}))
	})
}

func TestRootExecute(t *testing.T) {
	restore(t, &convertFormat)
	restore(t, &convertOutput)
	restore(t, &cfgFile)
	useConfig(t, config.Defaults())

	dir := t.TempDir()
	t.Setenv("COLORWHEEL_DATA_DIR", dir)
	cfgFile = filepath.Join(dir, "colorwheel.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("size: 300\nthickness: 30\nlogging:\n  level: warn\n"), 0o644))

	// a subcommand captured by an earlier test must write through the root again
	t.Run("direct run", func(t *testing.T) {
		convertFormat, convertOutput = "hex", "text"
		buf := captureOut(t, convertCmd)
		require.NoError(t, runConvert(convertCmd, []string{"#00f"}))
		assert.Equal(t, "#0000ff\n", buf.String())
	})
	convertFormat, convertOutput = "", "text"

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	assert.Same(t, buf, convertCmd.OutOrStdout())
	rootCmd.SetArgs([]string{"convert", "#0f0", "--format", "hex"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "#00ff00\n", buf.String())
	assert.InDelta(t, 300, cfg.Size, 1e-9)
	assert.InDelta(t, 30, cfg.Thickness, 1e-9)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestWritePaletteTable(t *testing.T) {
	convs := []conversion{
		newConversion("#1e90ff", color.MustParse("#1e90ff")),
		newConversion("#ff8000", color.MustParse("#ff8000")),
	}
	convs[0].Name, convs[1].Name = "primary", "a-much-longer-accent"

	plain := new(bytes.Buffer)
	require.NoError(t, writePaletteTable(plain, "brand", convs, nil))

	styled := new(bytes.Buffer)
	swatches := []string{"\x1b[48;2;30;144;255m    \x1b[m", "\x1b[48;2;255;128;0m    \x1b[m"}
	require.NoError(t, writePaletteTable(styled, "brand", convs, swatches))

	plainLines := strings.Split(strings.TrimRight(plain.String(), "\n"), "\n")
	styledLines := strings.Split(strings.TrimRight(styled.String(), "\n"), "\n")
	require.Len(t, styledLines, 3)
	assert.Equal(t, "brand (2 colors)", styledLines[0])

	// escape sequences must not shift the columns
	for i := 1; i < len(styledLines); i++ {
		assert.True(t, strings.HasPrefix(styledLines[i], plainLines[i]), styledLines[i])
		assert.True(t, strings.HasSuffix(styledLines[i], swatches[i-1]), styledLines[i])
	}
	assert.Equal(t, strings.Index(plainLines[1], "#1e90ff"), strings.Index(plainLines[2], "#ff8000"))
}
