// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/walteh/stagesync/pkg/ignore"
	"gitlab.com/tozd/go/errors"
)

// 📦 Mapping is a single source-to-destination copy instruction
type Mapping struct {
	Label  string `json:"label" yaml:"label" hcl:"label"`    // Human-readable name used in logs
	Source string `json:"source" yaml:"source" hcl:"source"` // Absolute path to the file or directory to copy
	Dest   string `json:"dest" yaml:"dest" hcl:"dest"`       // Path relative to the destination root
}

// 🔧 CopyArgs represents copy-phase configuration
type CopyArgs struct {
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"` // Glob patterns for files to skip while copying trees
}

// 📚 Config represents the complete configuration
type Config struct {
	Destination string    `json:"destination" yaml:"destination" hcl:"destination"`               // Staging root being synchronized into
	Ignore      []string  `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"` // Literal path prefixes protected during cleaning
	Mappings    []Mapping `json:"mappings" yaml:"mappings" hcl:"mapping,block"`                   // Manifest, processed in order
	Copy        *CopyArgs `json:"copy,omitempty" yaml:"copy,omitempty" hcl:"copy,block"`
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	// Check required fields
	if cfg.Destination == "" {
		return errors.Errorf("destination is required")
	}
	if len(cfg.Mappings) == 0 {
		return errors.Errorf("at least one mapping is required")
	}
	for i, m := range cfg.Mappings {
		if m.Label == "" {
			return errors.Errorf("mappings[%d]: label is required", i)
		}
		if m.Source == "" {
			return errors.Errorf("mapping %q: source is required", m.Label)
		}
		if m.Dest == "" {
			return errors.Errorf("mapping %q: dest is required", m.Label)
		}
		if filepath.IsAbs(m.Dest) {
			return errors.Errorf("mapping %q: dest must be relative to the destination root", m.Label)
		}
	}

	// Clean up paths. Ignore prefixes are left untouched: they are literal
	// string prefixes where a trailing separator is significant.
	cfg.Destination = filepath.Clean(cfg.Destination)
	for i := range cfg.Mappings {
		cfg.Mappings[i].Source = filepath.Clean(cfg.Mappings[i].Source)
		cfg.Mappings[i].Dest = filepath.Clean(cfg.Mappings[i].Dest)
	}

	return nil
}

// 🛡️ IgnoreList returns the ignore prefixes as an ignore.List
func (cfg *Config) IgnoreList() ignore.List {
	return ignore.List(cfg.Ignore)
}

// 🔑 Hash returns a hash of the configuration
func (cfg *Config) Hash() string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%d mappings -> %s (%d protected prefixes)",
		len(cfg.Mappings), cfg.Destination, len(cfg.Ignore))
}
