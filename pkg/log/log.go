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

// Package log provides user-friendly console feedback for stagesync runs,
// mirrored into zerolog for debugging.
package log

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/stagesync/pkg/status"
)

func init() {
	// Protected entries are reported through pterm.Debug
	pterm.EnableDebugMessages()
}

// 📢 UserLogger provides user-friendly feedback about run progress
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 Header prints the run header
func (u *UserLogger) Header(msg string) {
	name := color.New(color.Bold, color.FgCyan).Sprint("stagesync")
	pterm.Printf("\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	u.log.Info().Msg(msg)
}

// 📝 LogItem logs a per-entry outcome with appropriate prefix and formatting
func (u *UserLogger) LogItem(item status.Item) {
	name := item.Path
	if item.Label != "" {
		name = fmt.Sprintf("%s (%s)", item.Label, item.Path)
	}

	var printer *pterm.PrefixPrinter
	var action string
	switch item.Status {
	case status.StatusCopied:
		action = "Copied"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case status.StatusRemoved:
		action = "Removed"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "🗑️"})
	case status.StatusProtected:
		action = "Protected"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "🛡️"})
	case status.StatusSkipped:
		action = "Skipped"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case status.StatusFailed:
		action = "Failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	default:
		action = "Unchanged"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "•"})
	}

	msg := fmt.Sprintf("%s %s", action, name)
	printer.Println(msg)
	if item.Err != nil {
		pterm.Error.Println(item.Err)
		u.log.Error().Err(item.Err).Msg(msg)
		return
	}
	u.log.Info().Msg(msg)
}

// 📊 LogPhase logs the start of a run phase
func (u *UserLogger) LogPhase(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// ✅ Success logs a success message
func (u *UserLogger) Success(msg string) {
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	u.log.Info().Msg(msg)
}

// ⚠️ Warning logs a warning message
func (u *UserLogger) Warning(msg string) {
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
	u.log.Warn().Msg(msg)
}

// ❌ Error logs an error message
func (u *UserLogger) Error(msg string, err error) {
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(msg)
	if err != nil {
		pterm.Error.Println(err)
	}
	u.log.Error().Err(err).Msg(msg)
}
