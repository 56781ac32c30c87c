package resolver

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve takes a local directory and returns the root of the Go module to
// analyze. The nearest go.mod at or above the directory wins; failing that,
// the shallowest go.mod below it.
func Resolve(ctx context.Context, input string, logger *slog.Logger) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", absPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", absPath)
	}

	modRoot, err := findModuleRoot(absPath)
	if err != nil {
		logger.Debug("no go.mod above input, searching below", "dir", absPath)
		modRoot, err = findModuleRootInTree(absPath)
		if err != nil {
			return "", err
		}
	}

	logger.Info("resolved local directory", "input", input, "module_root", modRoot)
	return modRoot, nil
}

func findModuleRoot(dir string) (string, error) {
	current := dir
	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		current = parent
	}
}

// skipDirs are never searched for nested modules.
var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
}

// findModuleRootInTree returns the directory of the shallowest go.mod under
// root. Candidates at the same depth are ordered by path. Hidden directories,
// vendor, node_modules and testdata are skipped.
func findModuleRootInTree(root string) (string, error) {
	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), ".") || skipDirs[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == "go.mod" {
			candidates = append(candidates, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("searching %s: %w", root, err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no go.mod found in %s or its subdirectories", root)
	}

	depth := func(p string) int { return strings.Count(p, string(filepath.Separator)) }
	sort.Slice(candidates, func(i, j int) bool {
		di, dj := depth(candidates[i]), depth(candidates[j])
		if di != dj {
			return di < dj
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0], nil
}
