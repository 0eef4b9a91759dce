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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/teradata-labs/colorwheel/pkg/color"
	"gopkg.in/yaml.v3"
)

const (
	paletteAPIVersion = "colorwheel/v1"
	paletteKind       = "Palette"
)

// PaletteYAML represents the YAML structure of a palette file:
//
//	apiVersion: colorwheel/v1
//	kind: Palette
//	metadata:
//	  name: brand
//	spec:
//	  colors:
//	    - name: primary
//	      value: "#1e90ff"
type PaletteYAML struct {
	APIVersion string              `yaml:"apiVersion"`
	Kind       string              `yaml:"kind"`
	Metadata   PaletteMetadataYAML `yaml:"metadata"`
	Spec       PaletteSpecYAML     `yaml:"spec"`
}

type PaletteMetadataYAML struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Labels      map[string]string `yaml:"labels"`
}

type PaletteSpecYAML struct {
	Colors []SwatchYAML `yaml:"colors"`
}

type SwatchYAML struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Palette is a validated, parsed palette.
type Palette struct {
	Name        string
	Description string
	Labels      map[string]string
	Swatches    []Swatch
}

// Swatch is one named color of a palette.
type Swatch struct {
	Name  string
	Color color.Color
}

// LoadPalette reads, validates and parses a palette file. ${VAR}
// references are expanded from the environment before parsing.
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file %s: %w", path, err)
	}

	dataStr := expandEnvVars(string(data))

	var doc PaletteYAML
	if err := yaml.Unmarshal([]byte(dataStr), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse palette YAML: %w", err)
	}

	if err := validatePaletteYAML(&doc); err != nil {
		return nil, fmt.Errorf("invalid palette %s: %w", filepath.Base(path), err)
	}

	return yamlToPalette(&doc)
}

// ResolvePalettePath returns name unchanged when it points at an existing
// file, otherwise the matching file in the palettes data subdirectory.
func ResolvePalettePath(name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name += ".yaml"
	}
	return filepath.Join(GetSubDir("palettes"), name)
}

func validatePaletteYAML(doc *PaletteYAML) error {
	if doc.APIVersion == "" {
		return fmt.Errorf("apiVersion is required")
	}
	if doc.APIVersion != paletteAPIVersion {
		return fmt.Errorf("unsupported apiVersion: %s (expected: %s)", doc.APIVersion, paletteAPIVersion)
	}
	if doc.Kind != paletteKind {
		return fmt.Errorf("kind must be '%s', got: %s", paletteKind, doc.Kind)
	}
	if doc.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if len(doc.Spec.Colors) == 0 {
		return fmt.Errorf("spec.colors must list at least one color")
	}

	seen := make(map[string]bool, len(doc.Spec.Colors))
	for i, c := range doc.Spec.Colors {
		if c.Name == "" {
			return fmt.Errorf("spec.colors[%d].name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate color name: %s", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func yamlToPalette(doc *PaletteYAML) (*Palette, error) {
	p := &Palette{
		Name:        doc.Metadata.Name,
		Description: doc.Metadata.Description,
		Labels:      doc.Metadata.Labels,
		Swatches:    make([]Swatch, 0, len(doc.Spec.Colors)),
	}
	for _, c := range doc.Spec.Colors {
		parsed, err := color.Parse(c.Value)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", c.Name, err)
		}
		p.Swatches = append(p.Swatches, Swatch{Name: c.Name, Color: parsed})
	}
	return p, nil
}

// expandEnvVars expands environment variables in YAML content
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}
