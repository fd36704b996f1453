// Package signals implements the heuristic extractors that mine notice
// document text for document-access links, lot numbers and the mandatory
// site-visit flag. All extractors are pure functions over text.
package signals

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

const platformDomain = "achatpublic.com"

// Anchor phrases that introduce a document-access link in BOAMP notices.
var anchorPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Adresse des documents de marché\s*[:;]\s*(https?://[^\s<>"']+)`),
	regexp.MustCompile(`(?i)Documents de marché\s*[:;]\s*(https?://[^\s<>"']+)`),
	regexp.MustCompile(`(?i)consultation des documents\s*[:;]\s*(https?://[^\s<>"']+)`),
	regexp.MustCompile(`(?i)accès aux documents\s*[:;]\s*(https?://[^\s<>"']+)`),
	regexp.MustCompile(`(?i)documents\s*[:;]\s*(https?://[^\s<>"']+)`),
}

// Known-platform URL shapes, with and without scheme/prefix.
var platformPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://www\.achatpublic\.com/[^\s<>"']+`),
	regexp.MustCompile(`(?i)www\.achatpublic\.com/[^\s<>"']+`),
	regexp.MustCompile(`(?i)achatpublic\.com(/[^\s<>"']+)`),
}

var bareURLRe = regexp.MustCompile(`(?i)https?://[^\s<>"']+`)

// URL-shaped substring families for the whole-text fallback.
var fallbackURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://(?:[-\w.]|(?:%[\da-fA-F]{2}))+(?:/[-\w.~!$&'()*+,;=:@%]*)*`),
	regexp.MustCompile(`(?i)www\.(?:[-\w.]|(?:%[\da-fA-F]{2}))+(?:/[-\w.~!$&'()*+,;=:@%]*)*`),
	regexp.MustCompile(`(?i)(?:[-\w.]|(?:%[\da-fA-F]{2}))+\.(?:achatpublic|marches-publics|boamp|plateforme)\.(?:fr|com)(?:/[-\w.~!$&'()*+,;=:@%]*)*`),
	regexp.MustCompile(`(?:/[-\w.~!$&'()*+,;=:@%]+)+`),
}

var procurementKeywords = []string{
	"marche", "appel", "offre", "soumission", "avis",
	"procedure", "consultation", "tender", "bid",
	"commande", "achat", "public", "boamp", "plateforme",
	"demat", "candidature", "dossier", "documents",
}

var procurementDomains = []string{
	"achatpublic.com",
	"marches-publics.gouv.fr",
	"boamp.fr",
	"plateforme.economie.gouv.fr",
	"centraledesmarches.com",
	"demarches-simplifiees.fr",
	"e-marchespublics.gouv.fr",
}

var (
	trailingPunctRe = regexp.MustCompile(`[.,;:!?)\]}]+$`)
	leadingPunctRe  = regexp.MustCompile(`^[(\[{]+`)
)

// ExtractLinks mines reconstructed text for document-access URLs. Strategies
// are tiered; the first tier producing candidates wins:
//  1. anchor-phrase search ("Documents de marché : <url>")
//  2. known-platform search (achatpublic.com with or without scheme)
//  3. proximity search (URLs within 3 lines of a "marche" mention)
//  4. whole-text URL harvest filtered and ranked by procurement relevance
//
// Results are normalized, de-duplicated and ordered; the first entry is the
// primary link.
func ExtractLinks(text string) []string {
	if urls := anchorPhraseURLs(text); len(urls) > 0 {
		return urls
	}
	if urls := platformURLs(text); len(urls) > 0 {
		return urls
	}
	if urls := proximityURLs(text); len(urls) > 0 {
		return urls
	}
	return rankRelevantURLs(harvestURLs(text))
}

func anchorPhraseURLs(text string) []string {
	var urls []string
	for _, re := range anchorPhrasePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			u := NormalizeURL(m[1])
			if u != "" && strings.HasPrefix(u, "http") {
				urls = append(urls, u)
			}
		}
	}
	return dedupe(urls)
}

func platformURLs(text string) []string {
	var urls []string
	for _, re := range platformPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			raw := m[0]
			if len(m) > 1 && !strings.Contains(strings.ToLower(raw), "http") && !strings.HasPrefix(strings.ToLower(raw), "www.") {
				// Bare "achatpublic.com/path" match: rebuild fully qualified.
				raw = "https://www." + platformDomain + m[1]
			}
			if u := NormalizeURL(raw); u != "" {
				urls = append(urls, u)
			}
		}
	}
	return dedupe(urls)
}

func proximityURLs(text string) []string {
	var urls []string
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), "marche") {
			continue
		}
		end := i + 3
		if end > len(lines) {
			end = len(lines)
		}
		window := strings.Join(lines[i:end], " ")
		for _, raw := range bareURLRe.FindAllString(window, -1) {
			u := NormalizeURL(raw)
			if u == "" {
				continue
			}
			lower := strings.ToLower(u)
			if strings.Contains(lower, "achatpublic") || strings.Contains(lower, "marche") {
				urls = append(urls, u)
			}
		}
	}
	return dedupe(urls)
}

func harvestURLs(text string) []string {
	var urls []string
	for _, re := range fallbackURLPatterns {
		for _, raw := range re.FindAllString(text, -1) {
			if u := NormalizeURL(raw); u != "" {
				urls = append(urls, u)
			}
		}
	}
	return urls
}

// rankRelevantURLs keeps procurement-relevant URLs and orders them by
// known-domain membership, then descending length.
func rankRelevantURLs(urls []string) []string {
	var relevant []string
	for _, u := range urls {
		lower := strings.ToLower(u)
		parsed, err := url.Parse(u)
		if err != nil {
			continue
		}
		domain := strings.ToLower(parsed.Host)

		switch {
		case containsAny(domain, procurementDomains):
			relevant = append(relevant, u)
		case containsAny(lower, procurementKeywords):
			relevant = append(relevant, u)
		case strings.Contains(domain, ".gouv.fr") || strings.Contains(domain, ".gouv."):
			relevant = append(relevant, u)
		}
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		a, b := relevant[i], relevant[j]
		for _, dom := range []string{"achatpublic.com", "marches-publics", "boamp"} {
			ai, bi := strings.Contains(a, dom), strings.Contains(b, dom)
			if ai != bi {
				return ai
			}
		}
		return len(a) > len(b)
	})

	return dedupe(relevant)
}

// NormalizeURL cleans an extracted URL candidate: strips surrounding
// punctuation, qualifies known path-only and scheme-less forms, then
// validates scheme and host. Returns empty string when the candidate cannot
// be made well-formed. Normalizing an already-normalized URL returns it
// unchanged.
func NormalizeURL(raw string) string {
	u := trailingPunctRe.ReplaceAllString(raw, "")
	u = leadingPunctRe.ReplaceAllString(u, "")
	if u == "" {
		return ""
	}

	if strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") {
		if strings.Contains(u, "/sdm/") || strings.Contains(u, "/ent/") {
			u = "https://www." + platformDomain + u
		}
	}

	if strings.HasPrefix(u, "www.") {
		u = "https://" + u
	} else if strings.HasPrefix(u, platformDomain) {
		u = "https://www." + u
	}

	parsed, err := url.Parse(u)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	return u
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	var out []string
	for _, u := range urls {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}
