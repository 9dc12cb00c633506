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
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/stagesync/pkg/config"
	"github.com/walteh/stagesync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 copyAll copies each mapping into the destination root, in manifest
// order. A failure or missing-source condition on one mapping never
// prevents subsequent mappings from being attempted.
func (o *operator) copyAll(ctx context.Context, res *Result) {
	o.reporter.StartPhase(ctx, "copy")
	defer o.reporter.FinishPhase(ctx, "copy")

	for _, m := range o.config.Mappings {
		o.copyMapping(ctx, m, res)
	}
}

// 📄 copyMapping copies a single mapping, isolating its failures
func (o *operator) copyMapping(ctx context.Context, m config.Mapping, res *Result) {
	logger := zerolog.Ctx(ctx)
	dest := filepath.Join(o.config.Destination, m.Dest)

	info, err := os.Stat(m.Source)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("label", m.Label).Str("source", m.Source).Msg("source not found, skipping mapping")
			res.Skipped++
			o.reporter.Track(ctx, status.Item{Label: m.Label, Path: m.Source, Dest: dest, Status: status.StatusSkipped})
			return
		}
		o.trackCopyFailure(ctx, m, dest, errors.Errorf("checking source: %w", err), res)
		return
	}

	if info.IsDir() {
		err = o.copyTree(ctx, m.Source, dest)
	} else {
		err = copyFile(m.Source, dest)
	}
	if err != nil {
		o.trackCopyFailure(ctx, m, dest, err, res)
		return
	}

	res.Copied++
	o.reporter.Track(ctx, status.Item{Label: m.Label, Path: m.Source, Dest: dest, Status: status.StatusCopied})
	logger.Info().Str("label", m.Label).Str("dest", dest).Msg("mapping copied")
}

func (o *operator) trackCopyFailure(ctx context.Context, m config.Mapping, dest string, err error, res *Result) {
	zerolog.Ctx(ctx).Error().Err(err).
		Str("label", m.Label).
		Str("source", m.Source).
		Str("dest", dest).
		Msg("copying mapping")
	item := status.Item{Label: m.Label, Path: m.Source, Dest: dest, Status: status.StatusFailed, Err: err}
	o.reporter.Track(ctx, item)
	res.fail(item)
}

// 🌲 copyTree recursively copies the directory src to dst, creating any
// intermediate destination directories as needed. Individual files
// matching a copy-phase ignore pattern are skipped.
func (o *operator) copyTree(ctx context.Context, src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Errorf("computing relative path: %w", err)
		}
		if rel == "." {
			if err := os.MkdirAll(dst, 0755); err != nil {
				return errors.Errorf("creating destination root: %w", err)
			}
			return nil
		}

		target := filepath.Join(dst, rel)
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Errorf("creating directory %s: %w", target, err)
			}
			return nil
		}

		if o.shouldIgnore(ctx, rel) {
			return nil
		}

		return copyFile(path, target)
	})
}

// 🔍 shouldIgnore checks if a file within a copied tree should be ignored
func (o *operator) shouldIgnore(ctx context.Context, path string) bool {
	if o.config.Copy == nil || len(o.config.Copy.IgnorePatterns) == 0 {
		return false
	}

	logger := zerolog.Ctx(ctx)
	for _, pattern := range o.config.Copy.IgnorePatterns {
		matched, err := doublestar.Match(pattern, filepath.ToSlash(path))
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}

	return false
}

// copyFile copies a single file from src to dst, creating parent
// directories if needed
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	dstFile, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return errors.Errorf("copying file content: %w", err)
	}

	return nil
}
