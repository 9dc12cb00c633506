package operation_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/stagesync/pkg/config"
	"github.com/walteh/stagesync/pkg/operation"
	"github.com/walteh/stagesync/pkg/status"
)

// 🧪 newTestOperator builds a full operator over temp directories: a build
// dir holding the mapping sources and a staging dir as destination
func newTestOperator(t *testing.T) (context.Context, *config.Config, operation.Operator, *status.Manager) {
	t.Helper()

	buildDir := t.TempDir()
	writeTestFile(t, filepath.Join(buildDir, "static", "app.js"), "app")
	writeTestFile(t, filepath.Join(buildDir, "static", "css", "main.css"), "css")
	writeTestFile(t, filepath.Join(buildDir, "assets", "logo.png"), "logo")
	writeTestFile(t, filepath.Join(buildDir, "index.html"), "<html>kiosk</html>")

	cfg := &config.Config{
		Destination: filepath.Join(t.TempDir(), "staging"),
		Ignore:      []string{"data"},
		Mappings: []config.Mapping{
			{Label: "static", Source: filepath.Join(buildDir, "static"), Dest: "static"},
			{Label: "assets", Source: filepath.Join(buildDir, "assets"), Dest: "assets"},
			{Label: "index", Source: filepath.Join(buildDir, "index.html"), Dest: filepath.Join("public", "index.html")},
		},
	}
	require.NoError(t, cfg.Validate())

	mgr := status.NewManager(status.NewDefaultFormatter())
	op, err := operation.New(operation.Options{Config: cfg, Reporter: mgr})
	require.NoError(t, err)

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	return ctx, cfg, op, mgr
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSyncCreatesDestinationAndCopies(t *testing.T) {
	ctx, cfg, op, _ := newTestOperator(t)

	res, err := op.Sync(ctx)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(cfg.Destination, "static", "app.js"))
	assert.FileExists(t, filepath.Join(cfg.Destination, "static", "css", "main.css"))
	assert.FileExists(t, filepath.Join(cfg.Destination, "assets", "logo.png"))
	assert.FileExists(t, filepath.Join(cfg.Destination, "public", "index.html"))
	assert.Equal(t, 3, res.Copied)
	assert.False(t, res.Failed())
}

func TestSyncCleansBeforeCopying(t *testing.T) {
	ctx, cfg, op, _ := newTestOperator(t)

	// Stale artifacts from a previous deployment plus protected data
	writeTestFile(t, filepath.Join(cfg.Destination, "stale.txt"), "old")
	writeTestFile(t, filepath.Join(cfg.Destination, "static", "old.js"), "old")
	writeTestFile(t, filepath.Join(cfg.Destination, "data", "kiosk.db"), "db")

	res, err := op.Sync(ctx)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(cfg.Destination, "stale.txt"), "stale entries are removed")
	assert.NoFileExists(t, filepath.Join(cfg.Destination, "static", "old.js"), "prior copy artifacts are removed before re-copying")
	assert.FileExists(t, filepath.Join(cfg.Destination, "data", "kiosk.db"), "protected data survives")
	assert.FileExists(t, filepath.Join(cfg.Destination, "static", "app.js"))
	assert.Equal(t, 1, res.Protected)
	assert.False(t, res.Failed())
}

func TestSyncIsIdempotent(t *testing.T) {
	ctx, cfg, op, _ := newTestOperator(t)

	res1, err := op.Sync(ctx)
	require.NoError(t, err)
	first := snapshotTree(t, cfg.Destination)

	res2, err := op.Sync(ctx)
	require.NoError(t, err)
	second := snapshotTree(t, cfg.Destination)

	assert.Equal(t, first, second, "running twice yields the same destination tree as running once")
	assert.Equal(t, res1.Copied, res2.Copied)
	assert.False(t, res2.Failed())
}

func TestSyncFatalWhenDestinationCannotBeCreated(t *testing.T) {
	ctx, cfg, op, mgr := newTestOperator(t)

	// A regular file where a parent directory is needed makes MkdirAll fail
	blocker := filepath.Dir(cfg.Destination)
	require.NoError(t, os.RemoveAll(blocker))
	writeTestFile(t, blocker, "not a directory")

	res, err := op.Sync(ctx)
	require.Error(t, err, "destination-creation failure is fatal")
	assert.Contains(t, err.Error(), "ensuring destination root")
	assert.Nil(t, res)
	assert.Empty(t, mgr.Items(), "neither clean nor copy should run after a fatal setup failure")
}

func TestSyncScenarioMissingSourceMapping(t *testing.T) {
	ctx, cfg, op, mgr := newTestOperator(t)

	// Prepend a mapping whose source does not exist
	cfg.Mappings = append([]config.Mapping{
		{Label: "lib", Source: filepath.Join(t.TempDir(), "missing", "lib.js"), Dest: filepath.Join("static", "lib.js")},
	}, cfg.Mappings...)

	res, err := op.Sync(ctx)
	require.NoError(t, err, "run completes despite the missing source")

	assert.NoFileExists(t, filepath.Join(cfg.Destination, "static", "lib.js"))
	assert.FileExists(t, filepath.Join(cfg.Destination, "assets", "logo.png"), "valid mappings still complete")
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 3, res.Copied)

	var found bool
	for _, item := range mgr.Items() {
		if item.Status == status.StatusSkipped && item.Label == "lib" {
			found = true
			assert.Contains(t, item.Path, "lib.js", "diagnostic should name the missing source path")
		}
	}
	assert.True(t, found, "a not-found diagnostic naming the mapping should be reported")
}

func TestStatus(t *testing.T) {
	ctx, cfg, op, _ := newTestOperator(t)

	needsSync, err := op.Status(ctx)
	require.NoError(t, err)
	assert.True(t, needsSync, "missing destination root means a sync is needed")

	_, err = op.Sync(ctx)
	require.NoError(t, err)

	needsSync, err = op.Status(ctx)
	require.NoError(t, err)
	assert.False(t, needsSync, "populated destination needs no sync")

	// Removing a populated mapping destination makes the check stale again
	require.NoError(t, os.RemoveAll(filepath.Join(cfg.Destination, "assets")))
	needsSync, err = op.Status(ctx)
	require.NoError(t, err)
	assert.True(t, needsSync, "missing mapping destination means a sync is needed")
}

func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()

	snapshot := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snapshot[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return snapshot
}
