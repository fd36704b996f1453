package pdfdoc

import (
	"regexp"
	"strings"
)

// PDF text extraction frequently splits a URL across two lines; naive
// pattern search then misses it. ReconstructText repairs those splits before
// any signal extraction runs.

var (
	urlIndicators = []string{"http", "https", "www.", ".com", ".fr", ".gouv", ".org", "/"}
	pathPrefixes  = []string{"/", "ent_", "gen", "detail", "do?"}

	schemeGapRe = regexp.MustCompile(`(https?://[^\s<>"']+)\s+(/[^\s<>"']*)`)
	wwwGapRe    = regexp.MustCompile(`(www\.[^\s<>"']+)\s+(/[^\s<>"']*)`)
)

// ReconstructText joins lines that are clearly two halves of one URL, then
// re-concatenates everything with single spaces and closes any residual
// "scheme://host <whitespace> /path" gaps. Applying it twice yields the same
// output as applying it once.
func ReconstructText(text string) string {
	lines := strings.Split(text, "\n")
	var processed []string

	i := 0
	for i < len(lines) {
		cur := strings.TrimSpace(lines[i])

		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if cur != "" && next != "" {
				if looksLikeURLFragment(cur) && startsWithPath(next) {
					processed = append(processed, strings.TrimRight(cur, " ")+strings.TrimLeft(next, " "))
					i += 2
					continue
				}
				if (strings.HasPrefix(cur, "http://") || strings.HasPrefix(cur, "https://")) &&
					strings.HasPrefix(next, "/") {
					processed = append(processed, cur+next)
					i += 2
					continue
				}
			}
		}

		processed = append(processed, cur)
		i++
	}

	result := strings.Join(processed, " ")
	// A URL split across several lines leaves several gaps; each replacement
	// pass closes one gap per URL, so iterate to a fixed point.
	for {
		next := schemeGapRe.ReplaceAllString(result, "${1}${2}")
		next = wwwGapRe.ReplaceAllString(next, "${1}${2}")
		if next == result {
			return result
		}
		result = next
	}
}

// looksLikeURLFragment reports whether a line plausibly ends mid-URL: it
// contains a URL-indicating token and does not end in terminal punctuation.
func looksLikeURLFragment(line string) bool {
	lower := strings.ToLower(line)
	found := false
	for _, ind := range urlIndicators {
		if strings.Contains(lower, ind) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	switch {
	case strings.HasSuffix(line, "."),
		strings.HasSuffix(line, "!"),
		strings.HasSuffix(line, "?"),
		strings.HasSuffix(line, ":"),
		strings.HasSuffix(line, ";"):
		return false
	}
	return true
}

func startsWithPath(line string) bool {
	for _, p := range pathPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
