package detect

import (
	"testing"
)

const manifestNext = `{"dependencies": {"next": "^15.2.3"}}`

func TestDetectVersionFromManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     string
	}{
		{"caret range", `{"dependencies": {"next": "^15.2.3"}}`, "15.2"},
		{"tilde range", `{"dependencies": {"next": "~14.1.0"}}`, "14.1"},
		{"exact version", `{"dependencies": {"next": "13.4.19"}}`, "13.4"},
		{"devDependencies", `{"devDependencies": {"next": "^15.0.0"}}`, "15.0"},
		{"non-numeric range", `{"dependencies": {"next": "latest"}}`, "unknown"},
		{"no next dep", `{"dependencies": {"react": "^19.0.0"}}`, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "package.json", tt.manifest)
			if got := DetectVersion(dir); got != tt.want {
				t.Errorf("DetectVersion = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectVersionFromNpmLock(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", manifestNext)
	writeFile(t, dir, "package-lock.json", `{
  "lockfileVersion": 3,
  "packages": {
    "": {"dependencies": {"next": "^15.2.3"}},
    "node_modules/next": {"version": "15.2.4"}
  }
}`)

	if got := DetectVersion(dir); got != "15.2" {
		t.Errorf("DetectVersion = %q, want 15.2", got)
	}
}

func TestDetectVersionFromNpmLockV1(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", manifestNext)
	writeFile(t, dir, "package-lock.json", `{
  "lockfileVersion": 1,
  "dependencies": {"next": {"version": "14.2.1"}}
}`)

	if got := DetectVersion(dir); got != "14.2" {
		t.Errorf("DetectVersion = %q, want 14.2", got)
	}
}

func TestDetectVersionFromYarnLock(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", manifestNext)
	writeFile(t, dir, "yarn.lock", `# yarn lockfile v1

react@^19.0.0:
  version "19.0.0"

next@^15.2.3:
  version "15.2.4"
  resolved "https://registry.yarnpkg.com/next/-/next-15.2.4.tgz"
`)

	if got := DetectVersion(dir); got != "15.2" {
		t.Errorf("DetectVersion = %q, want 15.2", got)
	}
}

func TestDetectVersionYarnLockDoesNotMatchOtherPackages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", manifestNext)
	// next-auth's block must not satisfy the next lookup.
	writeFile(t, dir, "yarn.lock", `next-auth@^4.24.0:
  version "4.24.5"
`)

	// Falls through to the manifest source.
	if got := DetectVersion(dir); got != "15.2" {
		t.Errorf("DetectVersion = %q, want 15.2 (manifest fallback)", got)
	}
}

func TestDetectVersionFromPnpmLock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"package key form",
			"packages:\n\n  /next@15.2.4:\n    resolution: {integrity: sha512}\n",
			"15.2",
		},
		{
			"dependency block form",
			"dependencies:\n  next:\n    specifier: ^14.0.0\n    version: 14.0.4\n",
			"14.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "package.json", manifestNext)
			writeFile(t, dir, "pnpm-lock.yaml", tt.content)
			if got := DetectVersion(dir); got != tt.want {
				t.Errorf("DetectVersion = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectVersionLockfilePriority(t *testing.T) {
	// package-lock.json outranks yarn.lock, which outranks the manifest.
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"dependencies": {"next": "^13.0.0"}}`)
	writeFile(t, dir, "yarn.lock", "next@^13.0.0:\n  version \"13.5.6\"\n")
	writeFile(t, dir, "package-lock.json",
		`{"packages": {"node_modules/next": {"version": "14.1.0"}}}`)

	if got := DetectVersion(dir); got != "14.1" {
		t.Errorf("DetectVersion = %q, want 14.1", got)
	}
}

func TestDetectVersionMalformedLockfilesFallThrough(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", manifestNext)
	writeFile(t, dir, "package-lock.json", "{broken")
	writeFile(t, dir, "yarn.lock", "no blocks here")

	if got := DetectVersion(dir); got != "15.2" {
		t.Errorf("DetectVersion = %q, want 15.2", got)
	}
}

func TestIsLatest(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"15.2", true},
		{"16.0", true},
		{"14.2", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		if got := isLatest(tt.version); got != tt.want {
			t.Errorf("isLatest(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}
