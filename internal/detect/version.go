package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// versionUnknown is reported when no source yields a version.
const versionUnknown = "unknown"

// versionSources is the fixed priority order: lockfiles pin resolved
// versions exactly, so they outrank the manifest's declared range.
var versionSources = []func(dir string) string{
	versionFromNpmLock,
	versionFromYarnLock,
	versionFromPnpmLock,
	versionFromManifest,
}

// DetectVersion resolves the declared next version for an app directory
// as "major.minor", or "unknown" when no source matches.
func DetectVersion(dir string) string {
	for _, source := range versionSources {
		if v := source(dir); v != "" {
			return majorMinor(v)
		}
	}
	return versionUnknown
}

// isLatest reports whether a "major.minor" version is on the newest
// major release line.
func isLatest(version string) bool {
	major, _, ok := strings.Cut(version, ".")
	if !ok {
		return false
	}
	n, err := strconv.Atoi(major)
	if err != nil {
		return false
	}
	return n >= latestMajor
}

// npmLock is the subset of package-lock.json we read. The packages map
// covers lockfile v2/v3; the dependencies map covers v1.
type npmLock struct {
	Packages map[string]struct {
		Version string `json:"version"`
	} `json:"packages"`
	Dependencies map[string]struct {
		Version string `json:"version"`
	} `json:"dependencies"`
}

func versionFromNpmLock(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "package-lock.json"))
	if err != nil {
		return ""
	}
	var lock npmLock
	if err := json.Unmarshal(data, &lock); err != nil {
		return ""
	}
	if pkg, ok := lock.Packages["node_modules/next"]; ok {
		return pkg.Version
	}
	if dep, ok := lock.Dependencies["next"]; ok {
		return dep.Version
	}
	return ""
}

// yarnVersionLine matches the pinned version line inside a yarn.lock block.
var yarnVersionLine = regexp.MustCompile(`^\s+version\s+"?([0-9][^"\s]*)"?`)

// versionFromYarnLock scans the line-oriented yarn.lock for the block
// headed by a next@ specifier and returns the version pinned inside it.
func versionFromYarnLock(dir string) string {
	content := readFile(filepath.Join(dir, "yarn.lock"))
	if content == "" {
		return ""
	}

	inBlock := false
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, " ") && strings.TrimSpace(line) != "" {
			inBlock = yarnHeaderDeclaresNext(line)
			continue
		}
		if !inBlock {
			continue
		}
		if m := yarnVersionLine.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

// yarnHeaderDeclaresNext reports whether a yarn.lock block header line
// (e.g. `next@^15.2.3:` or `"next@npm:^15.2.3":`) is for next itself.
func yarnHeaderDeclaresNext(line string) bool {
	for _, spec := range strings.Split(strings.TrimSuffix(strings.TrimSpace(line), ":"), ",") {
		spec = strings.Trim(strings.TrimSpace(spec), `"`)
		if strings.HasPrefix(spec, "next@") {
			return true
		}
	}
	return false
}

// pnpmPackageKey matches resolved package keys like /next@15.2.3 or
// /next/15.2.3 in the packages section of pnpm-lock.yaml.
var pnpmPackageKey = regexp.MustCompile(`^\s*/?next[@/]([0-9][^:(\s]*)`)

// pnpmDepVersion matches the version line of an indented next: block in
// the importers/dependencies section.
var pnpmDepVersion = regexp.MustCompile(`^\s+version:\s*([0-9][^:(\s]*)`)

// versionFromPnpmLock extracts the next version from pnpm-lock.yaml.
// Both the resolved-package key form and the indented dependency block
// form are recognized; full YAML parsing is deliberately avoided since
// a pattern miss just falls through to the manifest.
func versionFromPnpmLock(dir string) string {
	content := readFile(filepath.Join(dir, "pnpm-lock.yaml"))
	if content == "" {
		return ""
	}

	inNextBlock := false
	blockIndent := 0
	for _, line := range strings.Split(content, "\n") {
		if m := pnpmPackageKey.FindStringSubmatch(line); m != nil {
			return m[1]
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "next:" {
			inNextBlock = true
			blockIndent = indentOf(line)
			continue
		}
		if inNextBlock && trimmed != "" {
			if indentOf(line) <= blockIndent {
				inNextBlock = false
				continue
			}
			if m := pnpmDepVersion.FindStringSubmatch(line); m != nil {
				return m[1]
			}
		}
	}
	return ""
}

// versionFromManifest falls back to the declared semver range in
// package.json with range prefixes (^, ~, >=) stripped.
func versionFromManifest(dir string) string {
	pkg, ok := readManifest(dir)
	if !ok {
		return ""
	}
	declared := strings.TrimSpace(pkg.dep("next"))
	declared = strings.TrimLeft(declared, "^~>=<")
	if declared == "" || !isDigit(declared[0]) {
		return ""
	}
	return declared
}

// majorMinor reduces a semver string to its first two components.
func majorMinor(v string) string {
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return v
	}
	return parts[0] + "." + parts[1]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// indentOf counts leading spaces.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
