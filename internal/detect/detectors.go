// detectors.go holds the leaf detectors: router mode, TypeScript,
// devtools MCP, test framework, and styling. Each is a stateless lookup
// against one app directory.
package detect

import (
	"path/filepath"
	"strings"
)

// DetectRouter classifies the routing convention by the presence of the
// app/ and pages/ directories, at the app root or under src/.
func DetectRouter(dir string) Router {
	hasApp := dirExists(filepath.Join(dir, "app")) || dirExists(filepath.Join(dir, "src", "app"))
	hasPages := dirExists(filepath.Join(dir, "pages")) || dirExists(filepath.Join(dir, "src", "pages"))

	switch {
	case hasApp && hasPages:
		return RouterHybrid
	case hasApp:
		return RouterApp
	case hasPages:
		return RouterPages
	default:
		return RouterUnknown
	}
}

// DetectTypeScript checks for tsconfig.json and whether strict checking
// is enabled inside it. The strict flag is a substring match; tsconfig
// files are JSONC and a full parse buys nothing here.
func DetectTypeScript(dir string) TypeScriptInfo {
	content := readFile(filepath.Join(dir, "tsconfig.json"))
	if content == "" {
		return TypeScriptInfo{}
	}
	return TypeScriptInfo{
		Enabled: true,
		Strict:  strings.Contains(content, `"strict": true`) || strings.Contains(content, `"strict":true`),
	}
}

// devtoolsMarker is the string that signals the next-devtools MCP server
// is wired into a config file.
const devtoolsMarker = "next-devtools"

// devtoolsConfigFiles are the locations checked for the marker: the two
// MCP registration files, then the framework config itself.
var devtoolsConfigFiles = []string{
	".mcp.json",
	filepath.Join(".cursor", "mcp.json"),
	"next.config.ts",
	"next.config.mjs",
}

// DetectDevtoolsMCP reports whether the next-devtools integration is
// configured for the app. Purely a textual presence check; any single
// match short-circuits to true.
func DetectDevtoolsMCP(dir string) bool {
	for _, name := range devtoolsConfigFiles {
		if strings.Contains(readFile(filepath.Join(dir, name)), devtoolsMarker) {
			return true
		}
	}
	return false
}

// DetectTestFramework inspects manifest dependencies for known test
// libraries. At most one unit framework is primary; a Playwright
// dependency composes onto it ("jest+playwright") or stands alone.
func DetectTestFramework(dir string) string {
	pkg, ok := readManifest(dir)
	if !ok {
		return "none"
	}

	primary := ""
	switch {
	case pkg.hasDep("jest"):
		primary = "jest"
	case pkg.hasDep("vitest"):
		primary = "vitest"
	}

	if pkg.hasDep("@playwright/test") || pkg.hasDep("playwright") {
		if primary == "" {
			return "playwright"
		}
		return primary + "+playwright"
	}
	if primary == "" {
		return "none"
	}
	return primary
}

// tailwindConfigs are the recognized utility-CSS config filenames.
var tailwindConfigs = []string{
	"tailwind.config.js",
	"tailwind.config.ts",
	"tailwind.config.mjs",
}

// DetectStyling identifies the styling system: a tailwind config file
// wins, then known CSS-in-JS dependencies, defaulting to plain css.
func DetectStyling(dir string) string {
	for _, name := range tailwindConfigs {
		if fileExists(filepath.Join(dir, name)) {
			return "tailwind"
		}
	}

	pkg, ok := readManifest(dir)
	if !ok {
		return "css"
	}
	switch {
	case pkg.hasDep("tailwindcss"):
		return "tailwind"
	case pkg.hasDep("styled-components"):
		return "styled-components"
	case pkg.hasDep("@emotion/react") || pkg.hasDep("@emotion/styled"):
		return "emotion"
	default:
		return "css"
	}
}
