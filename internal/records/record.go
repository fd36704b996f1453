// Package records implements the in-memory filtering stages of the
// extraction pipeline: keyword matching, deduplication and department
// resolution over raw catalog records.
package records

import (
	"encoding/json"
	"fmt"
)

// Well-known catalog field names.
const (
	FieldID                 = "idweb"
	FieldKeyword            = "keyword"
	FieldPublishDate        = "dateparution"
	FieldDepartmentCode     = "code_departement"
	FieldResolvedDepartment = "code_departement_trouve"
	FieldBuyer              = "nomacheteur"
	FieldSubject            = "objet"
	FieldDeadline           = "datelimitereponse"
)

// Record is one procurement notice as returned by the catalog: an open
// mapping of field name to value. No field is required to be present.
type Record map[string]any

// Clone returns a shallow copy of the record. Stage outputs are copies so
// later mutation never aliases earlier stage results.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String returns the textual value of a field, or empty string if absent.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	return fieldText(v)
}

// ID returns the record's catalog identifier, or empty string if absent.
func (r Record) ID() string {
	return r.String(FieldID)
}

// fieldText renders any field value to text. Non-scalar values (lists,
// nested objects) render as their JSON form, matching how they appear in
// the exported tables.
func fieldText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case []any, map[string]any:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", t)
	}
}
