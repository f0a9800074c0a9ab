// Package dates normalizes the free-form publish dates found on the VK Ads
// case listing into ISO YYYY-MM-DD strings. The page mixes machine-readable
// attributes with human-readable Russian text, so normalization is an ordered
// list of pattern matchers tried until one produces a date.
package dates

import (
	"fmt"
	"regexp"
	"strings"
)

// monthsRU maps genitive Russian month names to month numbers. Abbreviated
// forms like "сент." are resolved by prefix; the first three letters are
// unique across the twelve months.
var monthsRU = map[string]int{
	"января":   1,
	"февраля":  2,
	"марта":    3,
	"апреля":   4,
	"мая":      5,
	"июня":     6,
	"июля":     7,
	"августа":  8,
	"сентября": 9,
	"октября":  10,
	"ноября":   11,
	"декабря":  12,
}

var (
	isoDateRe  = regexp.MustCompile(`^(\d{4})[-.](\d{2})[-.](\d{2})`)
	dayFirstRe = regexp.MustCompile(`^(\d{1,2})[./](\d{1,2})[./](\d{4})`)
	textualRe  = regexp.MustCompile(`^(\d{1,2})\s+([а-яА-ЯёЁ]+)\.?\s+(\d{4})`)
)

type matcher func(string) (year, month, day int, ok bool)

var matchers = []matcher{matchISO, matchDayFirst, matchTextual}

// Normalize converts a raw date string to YYYY-MM-DD. It reports ok=false for
// empty input and for strings no matcher recognizes; it never panics on
// malformed input.
func Normalize(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	for _, m := range matchers {
		if year, month, day, ok := m(value); ok {
			if month < 1 || month > 12 || day < 1 || day > 31 {
				return "", false
			}
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
		}
	}
	return "", false
}

func matchISO(value string) (int, int, int, bool) {
	m := isoDateRe.FindStringSubmatch(value)
	if m == nil {
		return 0, 0, 0, false
	}
	return atoi(m[1]), atoi(m[2]), atoi(m[3]), true
}

func matchDayFirst(value string) (int, int, int, bool) {
	m := dayFirstRe.FindStringSubmatch(value)
	if m == nil {
		return 0, 0, 0, false
	}
	return atoi(m[3]), atoi(m[2]), atoi(m[1]), true
}

// matchTextual handles "21 сентября 2024" as well as abbreviated and suffixed
// variants such as "12 сент. 2024 г." and "8 февраля 2023 года".
func matchTextual(value string) (int, int, int, bool) {
	m := textualRe.FindStringSubmatch(value)
	if m == nil {
		return 0, 0, 0, false
	}
	month, ok := monthRU(m[2])
	if !ok {
		return 0, 0, 0, false
	}
	return atoi(m[3]), month, atoi(m[1]), true
}

func monthRU(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSuffix(name, "."))
	if n, ok := monthsRU[name]; ok {
		return n, true
	}
	// Abbreviation: match by prefix against the full genitive names.
	runes := []rune(name)
	if len(runes) < 3 {
		return 0, false
	}
	for full, n := range monthsRU {
		if strings.HasPrefix(full, name) {
			return n, true
		}
	}
	return 0, false
}

// atoi parses strings already constrained to digits by the regexps above.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
