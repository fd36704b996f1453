package records

import "strings"

// FilterByDepartments retains only records whose department-code list
// intersects the target set. The first code found in the target set wins and
// is attached under FieldResolvedDepartment. Records without an intersection
// are dropped. Output preserves input order. An empty target set keeps
// everything unchanged.
func FilterByDepartments(recs []Record, targets []string) []Record {
	if len(targets) == 0 {
		return recs
	}

	targetSet := make(map[string]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	var out []Record
	for _, rec := range recs {
		codes := departmentCodes(rec[FieldDepartmentCode])
		for _, code := range codes {
			if targetSet[code] {
				kept := rec.Clone()
				kept[FieldResolvedDepartment] = code
				out = append(out, kept)
				break
			}
		}
	}
	return out
}

// departmentCodes normalizes a department-code field into a list of codes.
// The catalog returns either a literal list or a list rendered as text
// (bracket-and-quote-delimited). Any other shape yields nil.
func departmentCodes(v any) []string {
	switch t := v.(type) {
	case []any:
		codes := make([]string, 0, len(t))
		for _, e := range t {
			if s := strings.TrimSpace(fieldText(e)); s != "" {
				codes = append(codes, s)
			}
		}
		return codes
	case string:
		s := strings.Trim(t, "[]")
		s = strings.ReplaceAll(s, `"`, "")
		s = strings.ReplaceAll(s, "'", "")
		if s == "" {
			return nil
		}
		var codes []string
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				codes = append(codes, p)
			}
		}
		return codes
	default:
		return nil
	}
}
