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
package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "text debug", level: "debug", format: "text"},
		{name: "json info", level: "info", format: "json"},
		{name: "upper case", level: "WARN", format: "TEXT"},
		{name: "empty format means text", level: "error", format: ""},
		{name: "bad level", level: "loud", format: "text", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Configure(tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, Logger())
		})
	}
}

func TestConfigure_SetsLevel(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	require.NoError(t, Configure("warn", "json"))
	assert.False(t, Logger().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger().Core().Enabled(zapcore.WarnLevel))
}

func TestHelpersWriteToGlobalLogger(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Debug("d")
	Info("i", zap.String("k", "v"))
	Warn("w")
	Error("e")
	With(zap.Int("n", 1)).Info("with")
	Named("picker").Debug("named")

	entries := logs.All()
	require.Len(t, entries, 6)
	assert.Equal(t, "d", entries[0].Message)
	assert.Equal(t, "v", entries[1].ContextMap()["k"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, int64(1), entries[4].ContextMap()["n"])
	assert.Equal(t, "picker", entries[5].LoggerName)
}
