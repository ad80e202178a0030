package detect

// Guidance texts. Pages-router migration advice always wins; the
// devtools suggestion only applies to current-major apps that have not
// wired the MCP server in yet.
const (
	guidancePagesMigration = "This app uses the Pages Router. Consider the App Router for new routes; " +
		"see the routing skill for the incremental migration path."
	guidanceEnableDevtools = "This app is on the latest Next.js but the next-devtools MCP server is not " +
		"configured. Run 'nextskill setup --project' to enable it."
)

// Guidance applies the two-branch guidance policy to an assembled
// context. Returns nil when neither branch applies.
func Guidance(ctx *Context) *string {
	if ctx.NextJS.Router == RouterPages {
		s := guidancePagesMigration
		return &s
	}
	if ctx.NextJS.IsLatest && !ctx.DevtoolsMCP.Configured {
		s := guidanceEnableDevtools
		return &s
	}
	return nil
}
