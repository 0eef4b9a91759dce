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
	"charm.land/bubbles/v2/key"
)

type KeyMap struct {
	Quit           key.Binding
	Select         key.Binding
	HueUp          key.Binding
	HueDown        key.Binding
	ValueUp        key.Binding
	ValueDown      key.Binding
	SaturationUp   key.Binding
	SaturationDown key.Binding
	Format         key.Binding
	Help           key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick"),
		),
		HueUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←/→", "hue"),
		),
		HueDown: key.NewBinding(
			key.WithKeys("left", "h"),
		),
		ValueUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "value"),
		),
		ValueDown: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		SaturationUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("[/]", "saturation"),
		),
		SaturationDown: key.NewBinding(
			key.WithKeys("["),
		),
		Format: key.NewBinding(
			key.WithKeys("f", "tab"),
			key.WithHelp("f", "format"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.HueUp, k.ValueUp, k.Select, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.HueUp, k.ValueUp, k.SaturationUp},
		{k.Format, k.Select, k.Quit, k.Help},
	}
}
