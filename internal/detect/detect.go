// Package detect inspects a working tree for Next.js applications and
// assembles the session context object that nextskill emits at session
// start. Every detector is best-effort: a missing file or a pattern miss
// yields the documented default, never an error.
package detect

// PluginName is the plugin identifier carried in the context object.
const PluginName = "nextjs-skills"

// latestMajor is the newest Next.js major release line. Versions at or
// above it report is_latest in the context object.
const latestMajor = 15

// Context is the session context object printed as JSON at session start.
// It is assembled fresh on every invocation and never persisted.
type Context struct {
	Plugin         string         `json:"plugin"`
	DetectedApps   int            `json:"detected_apps"`
	ActiveApp      string         `json:"active_app"`
	NextJS         NextJSInfo     `json:"nextjs"`
	TypeScript     TypeScriptInfo `json:"typescript"`
	PackageManager PackageManager `json:"package_manager"`
	DevtoolsMCP    DevtoolsMCP    `json:"devtools_mcp"`
	TestFramework  string         `json:"test_framework"`
	Styling        string         `json:"styling"`
	Commands       Commands       `json:"commands"`
	Guidance       *string        `json:"guidance"`
}

// NextJSInfo describes the detected framework version and router mode.
type NextJSInfo struct {
	Version  string `json:"version"`
	Router   Router `json:"router"`
	IsLatest bool   `json:"is_latest"`
}

// TypeScriptInfo describes the project's TypeScript configuration.
type TypeScriptInfo struct {
	Enabled bool `json:"enabled"`
	Strict  bool `json:"strict"`
}

// DevtoolsMCP reports whether the next-devtools MCP server is wired in.
type DevtoolsMCP struct {
	Configured bool `json:"configured"`
}

// Commands are the package-manager-specific shell commands for the app.
type Commands struct {
	Dev   string `json:"dev"`
	Build string `json:"build"`
	Test  string `json:"test"`
	Lint  string `json:"lint"`
}

// Router identifies the file-system routing convention in use.
type Router string

// Router values. Hybrid means both app/ and pages/ coexist.
const (
	RouterApp     Router = "app"
	RouterPages   Router = "pages"
	RouterHybrid  Router = "hybrid"
	RouterUnknown Router = "unknown"
)

// Detect locates Next.js apps under root and assembles the context for
// the active one. cwd selects the active app when it sits inside one of
// the located directories. Returns (nil, 0) when no app is found; the
// caller emits nothing in that case.
func Detect(root, cwd string) (*Context, int) {
	apps := LocateApps(root)
	if len(apps) == 0 {
		return nil, 0
	}

	active := ActiveApp(apps, cwd)
	ctx := inspect(active)
	ctx.DetectedApps = len(apps)
	return ctx, len(apps)
}

// inspect runs every detector against one app directory and assembles
// the context. The detectors are independent leaves; only the guidance
// policy reads other fields.
func inspect(dir string) *Context {
	version := DetectVersion(dir)
	router := DetectRouter(dir)
	pm := DetectPackageManager(dir)

	ctx := &Context{
		Plugin:    PluginName,
		ActiveApp: dir,
		NextJS: NextJSInfo{
			Version:  version,
			Router:   router,
			IsLatest: isLatest(version),
		},
		TypeScript:     DetectTypeScript(dir),
		PackageManager: pm,
		DevtoolsMCP:    DevtoolsMCP{Configured: DetectDevtoolsMCP(dir)},
		TestFramework:  DetectTestFramework(dir),
		Styling:        DetectStyling(dir),
		Commands:       pm.Commands(),
	}
	ctx.Guidance = Guidance(ctx)
	return ctx
}
