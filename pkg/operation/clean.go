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

package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/stagesync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🧹 Clean implements Operator.Clean. It empties the destination root,
// leaving entries protected by the ignore list untouched.
func (o *operator) Clean(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	res := &Result{}

	root := o.config.Destination
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("root", root).Msg("destination does not exist, nothing to clean")
			return res, nil
		}
		return nil, errors.Errorf("checking destination root: %w", err)
	}

	o.reporter.StartPhase(ctx, "clean")
	defer o.reporter.FinishPhase(ctx, "clean")

	o.cleanDir(ctx, root, root, res)
	return res, nil
}

// 🗑️ cleanDir removes the contents of dir, post-order, skipping entries
// whose path relative to root matches the ignore list. The original clean
// root is threaded through recursion unchanged: a single prefix like
// "preserve-this-folder/" protects deeply nested paths regardless of the
// current recursion depth.
//
// Every failure is isolated per entry: it is logged, recorded on the
// result, and siblings continue. That includes directories that cannot be
// listed (the subtree is left as-is) and directories that cannot be
// removed because a protected descendant keeps them non-empty.
func (o *operator) cleanDir(ctx context.Context, dir, root string, res *Result) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("listing directory, leaving subtree as-is")
		item := status.Item{Path: dir, Status: status.StatusFailed, Err: errors.Errorf("listing directory: %w", err)}
		o.reporter.Track(ctx, item)
		res.fail(item)
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Relative to the original clean root, not the immediate parent
		rel, err := filepath.Rel(root, path)
		if err != nil {
			item := status.Item{Path: path, Status: status.StatusFailed, Err: errors.Errorf("computing relative path: %w", err)}
			o.reporter.Track(ctx, item)
			res.fail(item)
			continue
		}

		if o.config.IgnoreList().Matches(rel) {
			res.Protected++
			o.reporter.Track(ctx, status.Item{Path: rel, Status: status.StatusProtected})
			continue
		}

		// Children before their parent directory, so non-empty directories
		// are never attempted for direct removal until cleared by recursion
		if entry.IsDir() {
			o.cleanDir(ctx, path, root, res)
		}

		if err := os.Remove(path); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("removing entry")
			item := status.Item{Path: rel, Status: status.StatusFailed, Err: errors.Errorf("removing %s: %w", path, err)}
			o.reporter.Track(ctx, item)
			res.fail(item)
			continue
		}

		res.Removed++
		o.reporter.Track(ctx, status.Item{Path: rel, Status: status.StatusRemoved})
	}
}
