package records

import "strings"

// Deduplicate collapses repeated emissions of the same identifier into one
// record whose keyword field is the semicolon-joined, order-preserving union
// of all keywords seen for that identifier. The first-seen record's field
// values win. Blank keyword values are skipped when joining.
func Deduplicate(recs []Record, idField, keywordField string) []Record {
	type group struct {
		first    Record
		keywords []string
		seen     map[string]bool
	}

	groups := make(map[string]*group)
	var order []string

	for _, rec := range recs {
		id := rec.String(idField)
		g, ok := groups[id]
		if !ok {
			g = &group{first: rec.Clone(), seen: make(map[string]bool)}
			groups[id] = g
			order = append(order, id)
		}
		kw := strings.TrimSpace(rec.String(keywordField))
		if kw != "" && !g.seen[kw] {
			g.seen[kw] = true
			g.keywords = append(g.keywords, kw)
		}
	}

	out := make([]Record, 0, len(order))
	for _, id := range order {
		g := groups[id]
		if len(g.keywords) > 0 {
			g.first[keywordField] = strings.Join(g.keywords, "; ")
		}
		out = append(out, g.first)
	}
	return out
}
