package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// manifest is the minimal structure parsed from package.json.
type manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// readManifest parses dir/package.json. Returns ok=false when the file
// is absent or malformed; detection treats both as "no information".
func readManifest(dir string) (manifest, bool) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return manifest{}, false
	}
	var pkg manifest
	if err := json.Unmarshal(data, &pkg); err != nil {
		return manifest{}, false
	}
	return pkg, true
}

// hasDep reports whether name appears in dependencies or devDependencies.
func (m manifest) hasDep(name string) bool {
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// dep returns the declared range for name from either dependency block.
func (m manifest) dep(name string) string {
	if v, ok := m.Dependencies[name]; ok {
		return v
	}
	return m.DevDependencies[name]
}

// fileExists returns true if path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// dirExists returns true if path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// readFile reads path, returning an empty string when it cannot be read.
func readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
