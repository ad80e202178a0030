package detect

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file (and parent dirs) under root.
func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// writeApp creates a minimal Next.js app manifest under root/rel.
func writeApp(t *testing.T, root, rel string) string {
	t.Helper()
	writeFile(t, root, filepath.Join(rel, "package.json"),
		`{"dependencies": {"next": "^15.2.3", "react": "^19.0.0"}}`)
	return filepath.Join(root, rel)
}

func TestLocateAppsEmptyTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "# nothing here")

	if apps := LocateApps(root); len(apps) != 0 {
		t.Fatalf("expected no apps, got %v", apps)
	}
}

func TestLocateAppsIgnoresNonNextManifests(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^19.0.0"}}`)

	if apps := LocateApps(root); len(apps) != 0 {
		t.Fatalf("expected no apps for non-next manifest, got %v", apps)
	}
}

func TestLocateAppsFindsNestedApps(t *testing.T) {
	root := t.TempDir()
	web := writeApp(t, root, filepath.Join("apps", "web"))
	docs := writeApp(t, root, filepath.Join("apps", "docs"))

	apps := LocateApps(root)
	if len(apps) != 2 {
		t.Fatalf("expected 2 apps, got %v", apps)
	}
	// WalkDir is lexical: docs sorts before web.
	if apps[0] != docs || apps[1] != web {
		t.Errorf("unexpected order: %v", apps)
	}
}

func TestLocateAppsSkipsNodeModules(t *testing.T) {
	root := t.TempDir()
	writeApp(t, root, ".")
	writeFile(t, root, filepath.Join("node_modules", "next", "package.json"),
		`{"dependencies": {"next": "15.0.0"}}`)
	writeFile(t, root, filepath.Join(".git", "package.json"),
		`{"dependencies": {"next": "15.0.0"}}`)

	apps := LocateApps(root)
	if len(apps) != 1 {
		t.Fatalf("expected 1 app, got %v", apps)
	}
}

func TestLocateAppsMalformedManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{not json`)

	if apps := LocateApps(root); len(apps) != 0 {
		t.Fatalf("malformed manifest should be skipped, got %v", apps)
	}
}

func TestActiveApp(t *testing.T) {
	root := t.TempDir()
	web := writeApp(t, root, filepath.Join("apps", "web"))
	docs := writeApp(t, root, filepath.Join("apps", "docs"))
	apps := []string{docs, web}

	tests := []struct {
		name string
		cwd  string
		want string
	}{
		{"cwd inside second app", filepath.Join(web, "src", "app"), web},
		{"cwd equals app root", docs, docs},
		{"cwd outside all apps falls back to first", root, docs},
		{"sibling name prefix is not a match", docs + "2", docs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActiveApp(apps, tt.cwd); got != tt.want {
				t.Errorf("ActiveApp(%q) = %q, want %q", tt.cwd, got, tt.want)
			}
		})
	}
}
