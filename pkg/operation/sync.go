package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Sync implements Operator.Sync
func (o *operator) Sync(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("destination", o.config.Destination).Msg("synchronizing staging directory")

	// Ensure the destination root exists before anything else. Failure here
	// is fatal: neither clean nor copy runs.
	if err := os.MkdirAll(o.config.Destination, 0755); err != nil {
		return nil, errors.Errorf("ensuring destination root: %w", err)
	}

	// Clean fully completes before any copy begins
	res, err := o.Clean(ctx)
	if err != nil {
		return nil, errors.Errorf("cleaning destination: %w", err)
	}

	o.copyAll(ctx, res)

	logger.Info().
		Int("removed", res.Removed).
		Int("protected", res.Protected).
		Int("copied", res.Copied).
		Int("skipped", res.Skipped).
		Int("failed", len(res.Failures)).
		Msg("staging sync complete")

	return res, nil
}

// Status implements Operator.Status. It is a local dry check: it reports
// true when a sync would change the destination — the root is missing, a
// mapping's destination has not been populated yet, or a mapping's source
// no longer exists.
func (o *operator) Status(ctx context.Context) (bool, error) {
	logger := zerolog.Ctx(ctx)

	if _, err := os.Stat(o.config.Destination); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("destination", o.config.Destination).Msg("destination root missing")
			return true, nil
		}
		return false, errors.Errorf("checking destination root: %w", err)
	}

	for _, m := range o.config.Mappings {
		if _, err := os.Stat(m.Source); err != nil {
			if os.IsNotExist(err) {
				logger.Debug().Str("label", m.Label).Str("source", m.Source).Msg("mapping source missing")
				return true, nil
			}
			return false, errors.Errorf("checking source for mapping %q: %w", m.Label, err)
		}

		dest := filepath.Join(o.config.Destination, m.Dest)
		if _, err := os.Stat(dest); err != nil {
			if os.IsNotExist(err) {
				logger.Debug().Str("label", m.Label).Str("dest", dest).Msg("mapping destination not populated")
				return true, nil
			}
			return false, errors.Errorf("checking destination for mapping %q: %w", m.Label, err)
		}
	}

	logger.Debug().Msg("destination is populated")
	return false, nil
}
