package records

import "strings"

// FilterByKeywords tests every field of every record, case-insensitively,
// against each keyword. A record matching a keyword is emitted tagged with
// that keyword; a record matching N keywords appears N times, once per
// keyword. Keyword order determines emission order.
func FilterByKeywords(recs []Record, keywords []string) []Record {
	var out []Record
	for _, kw := range keywords {
		needle := strings.ToLower(kw)
		if needle == "" {
			continue
		}
		for _, rec := range recs {
			if recordContains(rec, needle) {
				tagged := rec.Clone()
				tagged[FieldKeyword] = kw
				out = append(out, tagged)
			}
		}
	}
	return out
}

// recordContains reports whether any field's textual rendering contains
// needle. needle must already be lowercased.
func recordContains(rec Record, needle string) bool {
	for _, v := range rec {
		if strings.Contains(strings.ToLower(fieldText(v)), needle) {
			return true
		}
	}
	return false
}
