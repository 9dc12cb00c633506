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

package status

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// 📊 ItemStatus represents the outcome of processing a single entry or mapping
type ItemStatus int

const (
	StatusUnknown   ItemStatus = iota
	StatusRemoved              // Entry was deleted during the clean phase
	StatusProtected            // Entry matched the ignore list and was left untouched
	StatusCopied               // Mapping was copied into the destination
	StatusSkipped              // Mapping was skipped (source not found)
	StatusFailed               // Removal or copy failed
)

// String returns a string representation of ItemStatus
func (s ItemStatus) String() string {
	switch s {
	case StatusRemoved:
		return "removed"
	case StatusProtected:
		return "protected"
	case StatusCopied:
		return "copied"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Item is a single per-entry outcome reported during a run
type Item struct {
	Label  string     // Mapping label, empty for clean-phase entries
	Path   string     // Source path (copy phase) or path relative to the clean root
	Dest   string     // Computed destination, set for copy-phase items
	Status ItemStatus // Outcome
	Err    error      // Underlying cause for failed items
}

// 📈 Reporter receives per-item outcomes and phase boundaries. It is
// injected into operations so tests can assert on emitted diagnostics
// without capturing console output.
type Reporter interface {
	// Track records the outcome of a single item
	Track(ctx context.Context, item Item)

	// StartPhase marks the beginning of a named phase (clean/copy)
	StartPhase(ctx context.Context, name string)

	// FinishPhase marks the end of a named phase
	FinishPhase(ctx context.Context, name string)
}

// 🔧 Manager is the default Reporter. It accumulates items in memory and
// mirrors each one into the context logger using a Formatter.
type Manager struct {
	formatter Formatter

	mu    sync.Mutex
	items []Item
}

// 🏭 NewManager creates a new status manager
func NewManager(formatter Formatter) *Manager {
	if formatter == nil {
		formatter = NewDefaultFormatter()
	}
	return &Manager{formatter: formatter}
}

// Track implements Reporter.Track
func (m *Manager) Track(ctx context.Context, item Item) {
	m.mu.Lock()
	m.items = append(m.items, item)
	m.mu.Unlock()

	logger := zerolog.Ctx(ctx)
	var ev *zerolog.Event
	if item.Status == StatusFailed {
		ev = logger.Error().Err(item.Err)
	} else {
		ev = logger.Info()
	}
	if item.Label != "" {
		ev = ev.Str("label", item.Label)
	}
	if item.Dest != "" {
		ev = ev.Str("dest", item.Dest)
	}
	ev.Str("path", item.Path).
		Str("status", item.Status.String()).
		Msg(m.formatter.FormatItem(item))
}

// StartPhase implements Reporter.StartPhase
func (m *Manager) StartPhase(ctx context.Context, name string) {
	zerolog.Ctx(ctx).Debug().Str("phase", name).Msg("starting phase")
}

// FinishPhase implements Reporter.FinishPhase
func (m *Manager) FinishPhase(ctx context.Context, name string) {
	zerolog.Ctx(ctx).Debug().Str("phase", name).Msg("phase complete")
}

// 📋 Items returns a copy of all tracked items in report order
func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]Item, len(m.items))
	copy(items, m.items)
	return items
}

// ❌ Failures returns the tracked items with StatusFailed
func (m *Manager) Failures() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	var failures []Item
	for _, item := range m.items {
		if item.Status == StatusFailed {
			failures = append(failures, item)
		}
	}
	return failures
}
