package resolver

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func writeGoMod(t *testing.T, dir, module string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module "+module+"\n"), 0o644))
}

func TestFindModuleRootInTree_AtRoot(t *testing.T) {
	tmp := t.TempDir()
	writeGoMod(t, tmp, "test")

	got, err := findModuleRootInTree(tmp)
	require.NoError(t, err)
	assert.Equal(t, tmp, got)
}

func TestFindModuleRootInTree_InSubdirectory(t *testing.T) {
	tmp := t.TempDir()
	subdir := filepath.Join(tmp, "backend")
	writeGoMod(t, subdir, "test/backend")

	got, err := findModuleRootInTree(tmp)
	require.NoError(t, err)
	assert.Equal(t, subdir, got)
}

func TestFindModuleRootInTree_NoGoMod(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "src"), 0o755))

	_, err := findModuleRootInTree(tmp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no go.mod found")
}

func TestFindModuleRootInTree_SkipsGitDir(t *testing.T) {
	tmp := t.TempDir()
	writeGoMod(t, filepath.Join(tmp, ".git"), "fake")
	realDir := filepath.Join(tmp, "real")
	writeGoMod(t, realDir, "real")

	got, err := findModuleRootInTree(tmp)
	require.NoError(t, err)
	assert.Equal(t, realDir, got)
}

func TestFindModuleRootInTree_PicksShallowest(t *testing.T) {
	tmp := t.TempDir()
	writeGoMod(t, filepath.Join(tmp, "a", "b"), "deep")
	shallow := filepath.Join(tmp, "a")
	writeGoMod(t, shallow, "shallow")

	got, err := findModuleRootInTree(tmp)
	require.NoError(t, err)
	assert.Equal(t, shallow, got)
}

func TestFindModuleRootInTree_SameDepthSorted(t *testing.T) {
	tmp := t.TempDir()
	dirA := filepath.Join(tmp, "alpha")
	writeGoMod(t, filepath.Join(tmp, "beta"), "beta")
	writeGoMod(t, dirA, "alpha")

	got, err := findModuleRootInTree(tmp)
	require.NoError(t, err)
	assert.Equal(t, dirA, got)
}

func TestFindModuleRootInTree_SkipsVendorNodeModulesAndTestdata(t *testing.T) {
	tmp := t.TempDir()
	for _, skip := range []string{"vendor", "node_modules", "testdata"} {
		writeGoMod(t, filepath.Join(tmp, skip), "skip")
	}

	_, err := findModuleRootInTree(tmp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no go.mod found")
}

func TestResolve_WalksUpToModuleRoot(t *testing.T) {
	tmp := t.TempDir()
	writeGoMod(t, tmp, "example.com/up")
	pkgDir := filepath.Join(tmp, "internal", "pkg")
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))

	dir, err := Resolve(context.Background(), pkgDir, testLogger())
	require.NoError(t, err)
	assert.Equal(t, tmp, dir)
}

func TestResolve_RejectsFiles(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main\n"), 0o644))

	_, err := Resolve(context.Background(), file, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestResolve_MissingPath(t *testing.T) {
	_, err := Resolve(context.Background(), filepath.Join(t.TempDir(), "nope"), testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Resolve(ctx, t.TempDir(), testLogger())
	require.ErrorIs(t, err, context.Canceled)
}
