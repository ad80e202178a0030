package detect

import "path/filepath"

// PackageManager identifies the package manager and its invocation command.
type PackageManager struct {
	Name    string `json:"name"`
	Command string `json:"command"`
}

// pmLockfiles maps lockfile names to package managers, evaluated in
// order; first lockfile present wins. bun has carried two lockfile
// names across releases, so both are listed.
var pmLockfiles = []struct {
	file string
	pm   PackageManager
}{
	{"bun.lock", PackageManager{Name: "bun", Command: "bun"}},
	{"bun.lockb", PackageManager{Name: "bun", Command: "bun"}},
	{"pnpm-lock.yaml", PackageManager{Name: "pnpm", Command: "pnpm"}},
	{"yarn.lock", PackageManager{Name: "yarn", Command: "yarn"}},
	{"package-lock.json", PackageManager{Name: "npm", Command: "npm"}},
}

// DetectPackageManager inspects dir for manager-specific lockfiles,
// defaulting to npm when none is present.
func DetectPackageManager(dir string) PackageManager {
	for _, entry := range pmLockfiles {
		if fileExists(filepath.Join(dir, entry.file)) {
			return entry.pm
		}
	}
	return PackageManager{Name: "npm", Command: "npm"}
}

// Commands derives the shell commands for the app's package scripts.
// bun invokes scripts directly ("bun dev"); every other manager goes
// through its run subcommand.
func (pm PackageManager) Commands() Commands {
	return Commands{
		Dev:   pm.script("dev"),
		Build: pm.script("build"),
		Test:  pm.script("test"),
		Lint:  pm.script("lint"),
	}
}

func (pm PackageManager) script(name string) string {
	if pm.Name == "bun" {
		return "bun " + name
	}
	return pm.Command + " run " + name
}
