package records

import "testing"

func TestDeduplicate(t *testing.T) {
	recs := []Record{
		{"idweb": "A1", "objet": "first", "keyword": "serrurerie"},
		{"idweb": "A1", "objet": "second", "keyword": "menuiserie"},
		{"idweb": "B2", "objet": "other", "keyword": "serrurerie"},
		{"idweb": "A1", "objet": "third", "keyword": "serrurerie"},
	}

	got := Deduplicate(recs, FieldID, FieldKeyword)

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	byID := make(map[string]Record)
	for _, rec := range got {
		byID[rec.ID()] = rec
	}

	a1 := byID["A1"]
	if a1 == nil {
		t.Fatal("missing record A1")
	}
	// First-seen field values win; keywords are the order-preserving union.
	if a1.String("objet") != "first" {
		t.Errorf("got objet %q, want first-seen value", a1.String("objet"))
	}
	if a1.String(FieldKeyword) != "serrurerie; menuiserie" {
		t.Errorf("got keyword %q, want %q", a1.String(FieldKeyword), "serrurerie; menuiserie")
	}

	b2 := byID["B2"]
	if b2 == nil {
		t.Fatal("missing record B2")
	}
	if b2.String(FieldKeyword) != "serrurerie" {
		t.Errorf("got keyword %q, want %q", b2.String(FieldKeyword), "serrurerie")
	}
}

func TestDeduplicateSkipsBlankKeywords(t *testing.T) {
	recs := []Record{
		{"idweb": "A1", "keyword": "serrurerie"},
		{"idweb": "A1", "keyword": "   "},
		{"idweb": "A1", "keyword": "clôtures"},
	}

	got := Deduplicate(recs, FieldID, FieldKeyword)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if kw := got[0].String(FieldKeyword); kw != "serrurerie; clôtures" {
		t.Errorf("got keyword %q, want %q", kw, "serrurerie; clôtures")
	}
}

func TestDeduplicateSingleGroupPassesThrough(t *testing.T) {
	recs := []Record{{"idweb": "A1", "objet": "x", "keyword": "serrurerie"}}
	got := Deduplicate(recs, FieldID, FieldKeyword)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].String(FieldKeyword) != "serrurerie" {
		t.Errorf("keyword changed on pass-through: %q", got[0].String(FieldKeyword))
	}
}
