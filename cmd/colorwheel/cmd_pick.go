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

	tea "charm.land/bubbletea/v2"
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/teradata-labs/colorwheel/internal/log"
	"github.com/teradata-labs/colorwheel/internal/tui"
	"github.com/teradata-labs/colorwheel/pkg/color"
	"github.com/teradata-labs/colorwheel/pkg/picker"
	"github.com/teradata-labs/colorwheel/pkg/render"
	"go.uber.org/zap"
)

var pickFormat string

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a color interactively",
	Long: heredoc.Doc(`
		Open the color wheel in the terminal. Drag on the ring to choose the
		hue and in the square to choose saturation and value, or use the
		arrow keys. Press enter to print the picked color.
	`),
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVarP(&pickFormat, "format", "f", "hex", "printed form: hex, rgb, hsl, object:rgb, object:hsv")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	format, err := color.ParseFormat(pickFormat)
	if err != nil {
		return err
	}

	p, err := picker.New(cfg)
	if err != nil {
		return err
	}
	style, err := render.StyleFromConfig(cfg)
	if err != nil {
		return err
	}

	logger := log.Named("pick")
	p.OnUpdate(func(hex string) {
		logger.Debug("color updated", zap.String("hex", hex))
	})

	model := tui.New(p, style)
	if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}

	c, ok := model.Selected()
	if !ok {
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), c.Get(format).String())
	return err
}
