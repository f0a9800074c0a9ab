package app

import "time"

// Defaults shared between flag registration and file-config overlay.
const (
	DefaultListingURL = "https://ads.vk.com/cases"
	DefaultBaseURL    = "https://ads.vk.com"
	DefaultOutputPath = "cases.json"
	DefaultUserAgent  = "vkcases/1.0"
	DefaultTimeout    = 15 * time.Second
)

// Config carries one run's settings. It is assembled in main from flags, env
// defaults, and an optional config file, then passed down explicitly; nothing
// reads global state after startup.
type Config struct {
	// InputPath, when set, reads the listing from a saved HTML file instead
	// of fetching URL.
	InputPath string
	// URL is the live listing page fetched when InputPath is empty.
	URL string
	// BaseURL overrides base-URL derivation for resolving relative links.
	BaseURL string
	// OutputPath receives the JSON array; the payload is also mirrored to
	// stdout.
	OutputPath string
	UserAgent  string
	Timeout    time.Duration
	Verbose    bool
}
