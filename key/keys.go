// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Platform Selection - these keys govern which adapter is used when none is given.
const (
	PlatformDefault = "platform.default"
)

// Network Layer - these keys tune the shared HTTP client used by every adapter.
const (
	NetworkTimeout     = "network.timeout"
	NetworkUserAgent   = "network.user_agent"
	NetworkFingerprint = "network.fingerprint"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Media Playback - these keys configure the external player launched by "get --play".
const (
	Player = "player.default"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the command-line behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
