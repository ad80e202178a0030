package detect

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// skipDirs are directory names never descended into while locating apps.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
}

// LocateApps walks root and returns every directory whose package.json
// declares a dependency on next. Order is the WalkDir traversal order
// (lexical), which keeps repeated runs byte-identical. Unreadable files
// and directories are skipped silently.
func LocateApps(root string) []string {
	var apps []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are not findings
		}
		if d.IsDir() {
			if skipDirs[d.Name()] && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != "package.json" {
			return nil
		}
		if manifestDeclaresNext(path) {
			apps = append(apps, filepath.Dir(path))
		}
		return nil
	})

	return apps
}

// ActiveApp picks the app the session is working in: the first located
// directory that is a path prefix of cwd, falling back to the first
// located directory.
func ActiveApp(apps []string, cwd string) string {
	for _, app := range apps {
		if isPathPrefix(app, cwd) {
			return app
		}
	}
	return apps[0]
}

// manifestDeclaresNext reports whether a package.json declares next in
// dependencies or devDependencies.
func manifestDeclaresNext(path string) bool {
	pkg, ok := readManifest(filepath.Dir(path))
	if !ok {
		return false
	}
	return pkg.hasDep("next")
}

// isPathPrefix reports whether dir is path itself or an ancestor of it.
func isPathPrefix(dir, path string) bool {
	dir = filepath.Clean(dir)
	path = filepath.Clean(path)
	if dir == path {
		return true
	}
	return strings.HasPrefix(path, dir+string(os.PathSeparator))
}
