package signals

import (
	"regexp"
	"sort"
	"strings"
)

// lotLookback is how far before a keyword occurrence lot numbers are sought.
const lotLookback = 1000

// Lot number forms: "lot: 123", "Lot 123", "123 - Lot", "LOT A123".
var lotPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)lot\s*[:\-\s]*\s*(\d+[-\w]*)`),
	regexp.MustCompile(`(?i)(lot\s*\d+)`),
	regexp.MustCompile(`(?i)\b(\d+)\s*-\s*Lot`),
	regexp.MustCompile(`(?i)\b(LOT\s*[A-Z]*\d+)`),
}

var leadingLotRe = regexp.MustCompile(`(?i)^lot\s*`)

// FindLotNumbers scans backward from every case-insensitive occurrence of
// each anchor keyword, collecting lot identifiers from the preceding window.
// Distinct normalized tokens are unioned across all occurrences, rendered as
// "lot-<n>" and returned lexicographically sorted.
func FindLotNumbers(text string, keywords []string) []string {
	found := make(map[string]bool)

	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(kw))
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllStringIndex(text, -1) {
			start := loc[0] - lotLookback
			if start < 0 {
				start = 0
			}
			window := text[start:loc[0]]
			for _, token := range lotTokens(window) {
				found[token] = true
			}
		}
	}

	if len(found) == 0 {
		return nil
	}
	out := make([]string, 0, len(found))
	for token := range found {
		out = append(out, "lot-"+token)
	}
	sort.Strings(out)
	return out
}

// lotTokens extracts normalized lot identifiers from a text window.
func lotTokens(window string) []string {
	var tokens []string
	seen := make(map[string]bool)
	for _, re := range lotPatterns {
		for _, m := range re.FindAllStringSubmatch(window, -1) {
			token := m[len(m)-1]
			token = leadingLotRe.ReplaceAllString(token, "")
			token = strings.Trim(token, " :-\t")
			if token != "" && !seen[token] {
				seen[token] = true
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}
