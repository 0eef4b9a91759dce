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
	"os"
	"path/filepath"
	"strings"
)

// GetDataDir returns the colorwheel data directory, where the config file
// and palettes are looked up.
//
// Priority:
// 1. COLORWHEEL_DATA_DIR environment variable (if set and non-empty)
// 2. ~/.colorwheel (default)
//
// Tilde in COLORWHEEL_DATA_DIR is expanded and relative paths are made
// absolute.
//
// This reads os.Getenv directly rather than viper because it is needed to
// locate the config file itself.
func GetDataDir() string {
	if dataDir := os.Getenv("COLORWHEEL_DATA_DIR"); dataDir != "" {
		return ExpandPath(dataDir)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".colorwheel"
	}
	return filepath.Join(homeDir, ".colorwheel")
}

// GetSubDir returns a subdirectory within the data directory.
// Example: GetSubDir("palettes") returns ~/.colorwheel/palettes
func GetSubDir(subdir string) string {
	return filepath.Join(GetDataDir(), subdir)
}

// ExpandPath expands a leading ~/ and resolves path to an absolute path.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
