package signals

import (
	"regexp"
	"strings"
)

// visitLookback is how far before an anchor keyword the word "visite" is
// sought.
const visitLookback = 500

var visitRe = regexp.MustCompile(`(?i)visites?`)

// VisitAnchors are the default anchor keywords for visit detection:
// singular and plural forms of "mandatory".
var VisitAnchors = []string{"obligatoires", "obligatoire"}

// VisitMandatory reports "yes" when any occurrence of any anchor keyword is
// preceded, within the lookback window, by either form of "visite";
// otherwise "no".
func VisitMandatory(text string, anchors []string) string {
	for _, anchor := range anchors {
		anchor = strings.TrimSpace(anchor)
		if anchor == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(anchor))
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllStringIndex(text, -1) {
			start := loc[0] - visitLookback
			if start < 0 {
				start = 0
			}
			if visitRe.MatchString(text[start:loc[0]]) {
				return "yes"
			}
		}
	}
	return "no"
}
