package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	itemIndent  = 4  // spaces to indent item entries
	pathWidth   = 35 // base width for paths
	statusWidth = 12 // width for status text
)

// Formatter defines how item outcomes and summaries should be formatted
type Formatter interface {
	// FormatItem formats a single item outcome
	FormatItem(item Item) string

	// FormatSummary formats the aggregate outcome of a run
	FormatSummary(removed, copied, skipped, failed int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFormatter provides a plain-text implementation of Formatter
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatItem formats an item outcome with emojis
func (f *DefaultFormatter) FormatItem(item Item) string {
	name := item.Path
	if item.Label != "" {
		name = fmt.Sprintf("%s (%s)", item.Label, item.Path)
	}

	switch item.Status {
	case StatusRemoved:
		return fmt.Sprintf("🗑️  Removed %s", name)
	case StatusProtected:
		return fmt.Sprintf("🛡️  Protected %s", name)
	case StatusCopied:
		return fmt.Sprintf("✨ Copied %s", name)
	case StatusSkipped:
		return fmt.Sprintf("⏭️  Skipped %s", name)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s", name)
	default:
		return fmt.Sprintf("👍 Unchanged %s", name)
	}
}

// FormatSummary formats the aggregate outcome of a run
func (f *DefaultFormatter) FormatSummary(removed, copied, skipped, failed int) string {
	if failed > 0 {
		return fmt.Sprintf("finished with failures: %d removed, %d copied, %d skipped, %d failed",
			removed, copied, skipped, failed)
	}
	return fmt.Sprintf("finished: %d removed, %d copied, %d skipped", removed, copied, skipped)
}

// FormatError formats an error message with emoji
func (f *DefaultFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

// 🎯 FormatItemLine formats an item outcome as an aligned console line
func FormatItemLine(item Item) string {
	// Determine prefix symbol
	var prefix string
	switch item.Status {
	case StatusCopied:
		prefix = color.GreenString("✓")
	case StatusRemoved:
		prefix = color.RedString("✗")
	case StatusProtected:
		prefix = color.CyanString("•")
	case StatusSkipped:
		prefix = color.YellowString("-")
	case StatusFailed:
		prefix = color.RedString("!")
	default:
		prefix = color.HiBlackString("-")
	}

	// Format parts with padding
	pathPart := fmt.Sprintf("%-*s", pathWidth, item.Path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, item.Status.String())

	// Build final string with indentation
	return fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", itemIndent),
		prefix,
		pathPart,
		statusPart,
	)
}
