// Package cases extracts advertising case-study records from the VK Ads
// listing page markup.
package cases

// Case is one case-study entry from the listing. PublishedAt is nil when the
// card carried no recognizable date; it serializes as JSON null.
type Case struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	PublishedAt *string `json:"published_at"`
}
