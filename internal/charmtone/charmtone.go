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
// Package charmtone is the built-in named palette, available to the palette
// command without a file.
package charmtone

import (
	"github.com/teradata-labs/colorwheel/pkg/color"
	"github.com/teradata-labs/colorwheel/pkg/config"
)

// Name is the palette name the CLI resolves to this package.
const Name = "charmtone"

var swatches = []struct{ name, hex string }{
	// Primary
	{"charple", "#7B5FC7"},
	{"dolly", "#F5D76E"},
	{"bok", "#7FD1AE"},
	{"zest", "#FF9F43"},

	// Backgrounds
	{"pepper", "#1A1B26"},
	{"bbq", "#24283B"},
	{"charcoal", "#414868"},
	{"iron", "#565F89"},
	{"zinc", "#6B7089"},

	// Foregrounds
	{"ash", "#A9B1D6"},
	{"smoke", "#787C99"},
	{"oyster", "#9AA5CE"},
	{"salt", "#C0CAF5"},

	// Status
	{"guac", "#9ECE6A"},
	{"sriracha", "#F7768E"},
	{"mustard", "#E0AF68"},
	{"malibu", "#7AA2F7"},

	// Accents
	{"butter", "#FFEAA7"},
	{"sardine", "#B4F9F8"},
	{"damson", "#BB9AF7"},
	{"julep", "#73DACA"},
	{"coral", "#FF9E64"},
	{"cherry", "#DB4B4B"},
	{"bengal", "#FF7A93"},
	{"guppy", "#7DCFFF"},
	{"mauve", "#C0A8E4"},
	{"cumin", "#D8A657"},

	// Teradata brand
	{"teradata-orange", "#F37440"},
	{"teradata-cyan", "#00D4AA"},
}

// Palette returns a fresh copy of the built-in palette.
func Palette() *config.Palette {
	p := &config.Palette{
		Name:        Name,
		Description: "Built-in charmtone colors",
		Swatches:    make([]config.Swatch, 0, len(swatches)),
	}
	for _, s := range swatches {
		p.Swatches = append(p.Swatches, config.Swatch{Name: s.name, Color: color.MustParse(s.hex)})
	}
	return p
}
