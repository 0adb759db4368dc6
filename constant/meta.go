// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Seam is the canonical application identifier used for filesystem paths and CLI branding.
	Seam = "seam"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is the default desktop User-Agent sent to upstream platforms.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MobileUserAgent is used by adapters that scrape mobile pages.
	MobileUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
