package operation

import (
	"context"

	"github.com/walteh/stagesync/pkg/config"
	"github.com/walteh/stagesync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for stagesync operations
type Operator interface {
	// Sync ensures the destination root exists, cleans it, then copies the
	// manifest into it, in strict sequence
	Sync(ctx context.Context) (*Result, error)
	// Clean empties the destination root except protected entries
	Clean(ctx context.Context) (*Result, error)
	// Status is a local operation indicating if the destination is stale
	Status(ctx context.Context) (bool, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config carries the destination root, ignore list and mapping manifest
	Config *config.Config
	// Reporter receives per-item outcomes
	Reporter status.Reporter
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	return &operator{
		config:   opts.Config,
		reporter: opts.Reporter,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config   *config.Config
	reporter status.Reporter
}
