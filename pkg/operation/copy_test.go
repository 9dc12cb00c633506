package operation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/stagesync/pkg/config"
	"github.com/walteh/stagesync/pkg/status"
)

func TestCopyMissingSourceIsSkippedAndIsolated(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "assets", "logo.png"), "png-bytes")

	ctx, cfg, mgr := testEnv(t, []config.Mapping{
		{Label: "lib", Source: filepath.Join(srcDir, "missing", "lib.js"), Dest: filepath.Join("static", "lib.js")},
		{Label: "assets", Source: filepath.Join(srcDir, "assets"), Dest: "assets"},
	}, nil)
	op := &operator{config: cfg, reporter: mgr}

	require.NoError(t, os.MkdirAll(cfg.Destination, 0755))
	res := &Result{}
	op.copyAll(ctx, res)

	assert.NoFileExists(t, filepath.Join(cfg.Destination, "static", "lib.js"), "missing source must not produce a destination")
	assert.FileExists(t, filepath.Join(cfg.Destination, "assets", "logo.png"), "valid mapping after the skipped one should still complete")
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Copied)
	assert.False(t, res.Failed(), "a missing source is a skip, not a failure")

	// The not-found diagnostic names the mapping's source path
	var skipped *status.Item
	for _, item := range mgr.Items() {
		if item.Status == status.StatusSkipped {
			skipped = &item
			break
		}
	}
	require.NotNil(t, skipped, "skip should be reported")
	assert.Equal(t, "lib", skipped.Label)
	assert.Equal(t, filepath.Join(srcDir, "missing", "lib.js"), skipped.Path)
}

func TestCopySingleFileCreatesIntermediateDirs(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "index.html"), "<html>kiosk</html>")

	ctx, cfg, mgr := testEnv(t, []config.Mapping{
		{Label: "index", Source: filepath.Join(srcDir, "index.html"), Dest: filepath.Join("public", "index.html")},
	}, nil)
	op := &operator{config: cfg, reporter: mgr}

	require.NoError(t, os.MkdirAll(cfg.Destination, 0755))
	res := &Result{}
	op.copyAll(ctx, res)

	data, err := os.ReadFile(filepath.Join(cfg.Destination, "public", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>kiosk</html>", string(data), "copied bytes should be identical")
	assert.Equal(t, 1, res.Copied)
}

func TestCopyTreeIsStructuralCopy(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "app.js"), "app")
	writeFile(t, filepath.Join(srcDir, "css", "main.css"), "css")
	writeFile(t, filepath.Join(srcDir, "img", "icons", "ok.svg"), "svg")
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "empty"), 0755))

	ctx, cfg, mgr := testEnv(t, []config.Mapping{
		{Label: "static", Source: srcDir, Dest: "static"},
	}, nil)
	op := &operator{config: cfg, reporter: mgr}

	require.NoError(t, os.MkdirAll(cfg.Destination, 0755))
	res := &Result{}
	op.copyAll(ctx, res)

	require.False(t, res.Failed())
	assert.Equal(t, treeSnapshot(t, srcDir), treeSnapshot(t, filepath.Join(cfg.Destination, "static")),
		"destination should be a structural copy of the source")
	assert.DirExists(t, filepath.Join(cfg.Destination, "static", "empty"), "empty directories are copied too")
}

func TestCopyIgnorePatterns(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "app.js"), "app")
	writeFile(t, filepath.Join(srcDir, "app.js.map"), "map")
	writeFile(t, filepath.Join(srcDir, "nested", "lib.js.map"), "map")

	ctx, cfg, mgr := testEnv(t, []config.Mapping{
		{Label: "static", Source: srcDir, Dest: "static"},
	}, nil)
	cfg.Copy = &config.CopyArgs{IgnorePatterns: []string{"**/*.map"}}
	op := &operator{config: cfg, reporter: mgr}

	require.NoError(t, os.MkdirAll(cfg.Destination, 0755))
	res := &Result{}
	op.copyAll(ctx, res)

	require.False(t, res.Failed())
	assert.FileExists(t, filepath.Join(cfg.Destination, "static", "app.js"))
	assert.NoFileExists(t, filepath.Join(cfg.Destination, "static", "app.js.map"), "pattern should skip source maps")
	assert.NoFileExists(t, filepath.Join(cfg.Destination, "static", "nested", "lib.js.map"), "pattern should apply at any depth")
}

func TestCopyManifestOrderIsPreserved(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.txt"), "a")
	writeFile(t, filepath.Join(srcDir, "b.txt"), "b")

	ctx, cfg, mgr := testEnv(t, []config.Mapping{
		{Label: "missing", Source: filepath.Join(srcDir, "nope.txt"), Dest: "nope.txt"},
		{Label: "a", Source: filepath.Join(srcDir, "a.txt"), Dest: "a.txt"},
		{Label: "b", Source: filepath.Join(srcDir, "b.txt"), Dest: "b.txt"},
	}, nil)
	op := &operator{config: cfg, reporter: mgr}

	require.NoError(t, os.MkdirAll(cfg.Destination, 0755))
	res := &Result{}
	op.copyAll(ctx, res)

	var labels []string
	for _, item := range mgr.Items() {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"missing", "a", "b"}, labels, "mappings are processed sequentially in manifest order")
	assert.Equal(t, 2, res.Copied)
	assert.Equal(t, 1, res.Skipped)
}

func TestCopyFailureIsIsolatedPerMapping(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("copy cannot be forced to fail as root")
	}

	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "sealed", "secret.txt"), "secret")
	writeFile(t, filepath.Join(srcDir, "ok.txt"), "ok")

	ctx, cfg, mgr := testEnv(t, []config.Mapping{
		{Label: "sealed", Source: filepath.Join(srcDir, "sealed"), Dest: "sealed"},
		{Label: "ok", Source: filepath.Join(srcDir, "ok.txt"), Dest: "ok.txt"},
	}, nil)
	op := &operator{config: cfg, reporter: mgr}

	// Unreadable source directory forces the first copy to fail
	require.NoError(t, os.Chmod(filepath.Join(srcDir, "sealed"), 0000))
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(srcDir, "sealed"), 0755) })

	require.NoError(t, os.MkdirAll(cfg.Destination, 0755))
	res := &Result{}
	op.copyAll(ctx, res)

	assert.FileExists(t, filepath.Join(cfg.Destination, "ok.txt"), "second mapping should still be attempted")
	require.Len(t, res.Failures, 1, "first mapping should fail")
	assert.Equal(t, "sealed", res.Failures[0].Label)
	assert.NotEmpty(t, res.Failures[0].Dest, "failure should carry the computed destination")
}
