package cases

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"vkcases/internal/dates"
)

// cardSelectors locate case cards on the listing page. The markup has changed
// across site revisions, so the selectors run in order from most to least
// specific and the first one with any matches wins.
var cardSelectors = []string{
	`[data-testid="case-card"]`,
	`.CaseCard`,
	`a[href*="/cases/"]`,
}

// titleSelectors locate the card heading, again most specific first. The
// link's own text is the final fallback.
var titleSelectors = []string{
	`[data-testid="case-card-title"]`,
	`.CaseCard__title`,
	`.vkuiHeadline`,
	`h3`,
	`h2`,
	`span`,
	`div`,
}

// Extract parses the listing HTML and returns case records in document order,
// deduplicated by absolute URL (first occurrence wins). Cards without a
// usable link or title are skipped; a card whose date cannot be normalized
// still yields a record with a nil PublishedAt. An empty result is valid.
func Extract(html []byte, baseURL string) ([]Case, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}

	out := make([]Case, 0)
	seen := make(map[string]bool)

	findCards(doc).Each(func(_ int, card *goquery.Selection) {
		link := cardLink(card)
		if link == nil {
			log.Debug().Msg("skip card: no link")
			return
		}
		href, _ := link.Attr("href")
		absolute := resolveURL(base, href)
		if absolute == "" {
			log.Debug().Str("href", href).Msg("skip card: unresolvable href")
			return
		}
		if seen[absolute] {
			return
		}

		title := extractTitle(card, link)
		if title == "" {
			log.Debug().Str("url", absolute).Msg("skip card: no title")
			return
		}

		seen[absolute] = true
		out = append(out, Case{
			Title:       title,
			URL:         absolute,
			PublishedAt: extractDate(card),
		})
	})

	return out, nil
}

func findCards(doc *goquery.Document) *goquery.Selection {
	for _, selector := range cardSelectors {
		if nodes := doc.Find(selector); nodes.Length() > 0 {
			return nodes
		}
	}
	return doc.Find(cardSelectors[0]) // empty selection
}

// cardLink returns the card itself when the card is an anchor, otherwise the
// first descendant anchor carrying an href.
func cardLink(card *goquery.Selection) *goquery.Selection {
	if goquery.NodeName(card) == "a" {
		if href, ok := card.Attr("href"); ok && strings.TrimSpace(href) != "" {
			return card
		}
	}
	link := card.Find("a[href]").First()
	if link.Length() == 0 {
		return nil
	}
	if href, ok := link.Attr("href"); !ok || strings.TrimSpace(href) == "" {
		return nil
	}
	return link
}

func extractTitle(card, link *goquery.Selection) string {
	for _, selector := range titleSelectors {
		if title := strings.TrimSpace(card.Find(selector).First().Text()); title != "" {
			return title
		}
	}
	return strings.Join(strings.Fields(link.Text()), " ")
}

// extractDate walks the card's date candidates in order and returns the first
// one that normalizes. Candidates are each <time> element's datetime attribute
// then its text, followed by the text of any element whose class or
// data-testid mentions "date".
func extractDate(card *goquery.Selection) *string {
	for _, raw := range dateCandidates(card) {
		if normalized, ok := dates.Normalize(raw); ok {
			return &normalized
		}
	}
	return nil
}

func dateCandidates(card *goquery.Selection) []string {
	var candidates []string
	card.Find("time").Each(func(_ int, t *goquery.Selection) {
		if attr, ok := t.Attr("datetime"); ok && strings.TrimSpace(attr) != "" {
			candidates = append(candidates, attr)
		}
		if text := strings.TrimSpace(t.Text()); text != "" {
			candidates = append(candidates, text)
		}
	})
	card.Find("*").Each(func(_ int, el *goquery.Selection) {
		class, _ := el.Attr("class")
		testID, _ := el.Attr("data-testid")
		if !strings.Contains(strings.ToLower(class), "date") &&
			!strings.Contains(strings.ToLower(testID), "date") {
			return
		}
		if text := strings.TrimSpace(el.Text()); text != "" {
			candidates = append(candidates, text)
		}
	})
	return candidates
}

// resolveURL resolves a possibly-relative href against the page base. It
// returns "" when the href is empty or unparsable; absolute hrefs pass
// through untouched.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
