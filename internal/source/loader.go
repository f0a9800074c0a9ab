// Package source supplies the raw listing HTML and the base URL used to
// resolve relative links, either from a saved file or from the live site.
package source

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"vkcases/internal/fetch"
)

// Request names one document to load. Path wins over URL when both are set.
// BaseURL, when non-empty, overrides base-URL derivation entirely.
type Request struct {
	Path    string
	URL     string
	BaseURL string
}

// Loader reads the listing page. DefaultBaseURL is used for file input when
// no override is given, since a saved file carries no origin of its own.
type Loader struct {
	Client         *fetch.Client
	DefaultBaseURL string
}

// Load returns the raw HTML and the effective base URL. File and network
// failures are fatal for the run and reported as wrapped errors.
func (l *Loader) Load(ctx context.Context, req Request) ([]byte, string, error) {
	if req.Path != "" {
		html, err := os.ReadFile(req.Path)
		if err != nil {
			return nil, "", fmt.Errorf("read input file: %w", err)
		}
		base := req.BaseURL
		if base == "" {
			base = l.DefaultBaseURL
		}
		return html, base, nil
	}

	res, err := l.Client.Get(ctx, req.URL)
	if err != nil {
		return nil, "", err
	}
	base := req.BaseURL
	if base == "" {
		// Derive from the final response URL so relative links resolve
		// correctly even after a redirect to another host.
		if derived := deriveBaseURL(res.FinalURL); derived != "" {
			base = derived
		} else {
			base = l.DefaultBaseURL
		}
	}
	return res.Body, base, nil
}

// deriveBaseURL reduces a full URL to its scheme+host origin. It returns ""
// for values that do not carry both.
func deriveBaseURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
