// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Site Defaults - these keys seed new projects and fill gaps left by site.yml.
const (
	SiteTitle       = "site.title"
	SiteDescription = "site.description"
	SiteBaseURL     = "site.base_url"
)

// Build Pipeline - these keys govern how the content tree is rendered into the output directory.
const (
	BuildMinify         = "build.minify"
	BuildDrafts         = "build.drafts"
	BuildCache          = "build.cache"
	BuildHighlightStyle = "build.highlight_style"
	BuildCleanOutput    = "build.clean_output"
)

// Development Server - these keys configure the local preview server.
const (
	ServeHost       = "serve.host"
	ServePort       = "serve.port"
	ServeLiveReload = "serve.livereload"
	ServeOpen       = "serve.open_browser"
)

// Search Interaction - these keys define the UI/UX parameters for page search.
const (
	SearchLimit                = "search.limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Link Checking - these keys configure the dead-link scanner.
const (
	CheckExternal    = "check.external"
	CheckConcurrency = "check.concurrency"
	CheckTimeout     = "check.timeout_seconds"
)

// Deploy Targets - these keys configure publishing of the built site.
const (
	DeployTarget   = "deploy.target"
	DeployS3Bucket = "deploy.s3.bucket"
	DeployS3Region = "deploy.s3.region"
	DeployS3Prefix = "deploy.s3.prefix"
	DeployEndpoint = "deploy.endpoint.url"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Browse TUI - these keys define the interactive page browser's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowRoutes         = "tui.show_routes"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
