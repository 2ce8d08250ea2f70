package env

// AppName is the command name users invoke.
const AppName = "gpt"

// Build-time metadata, overridden via -ldflags.
var (
	Version    = "dev"
	CommitHash = "n/a"
	BuildTime  = "n/a"
)
